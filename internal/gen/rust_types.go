package gen

import (
	"qt-binding-generator/internal/schema"
)

const rustInterfaceImports = `use libc::{c_char, c_ushort, c_int};
use std::slice;
use std::char::decode_utf16;

use std::sync::Arc;
use std::sync::atomic::{AtomicPtr, Ordering};
use std::ptr::null;
`

const rustCOption = `

#[repr(C)]
pub struct COption<T> {
    data: T,
    some: bool,
}

impl<T> COption<T> {
    #![allow(dead_code)]
    fn into(self) -> Option<T> {
        if self.some {
            Some(self.data)
        } else {
            None
        }
    }
}

impl<T> From<Option<T>> for COption<T>
where
    T: Default,
{
    fn from(t: Option<T>) -> COption<T> {
        if let Some(v) = t {
            COption {
                data: v,
                some: true,
            }
        } else {
            COption {
                data: T::default(),
                some: false,
            }
        }
    }
}
`

const rustQString = `

pub enum QString {}

fn set_string_from_utf16(s: &mut String, str: *const c_ushort, len: c_int) {
    let utf16 = unsafe { slice::from_raw_parts(str, to_usize(len)) };
    let characters = decode_utf16(utf16.iter().cloned())
        .map(|r| r.unwrap());
    s.clear();
    s.extend(characters);
}

`

const rustQByteArray = `

pub enum QByteArray {}
`

const rustModelTypes = `

#[repr(C)]
#[derive(PartialEq, Eq, Debug)]
pub enum SortOrder {
    Ascending = 0,
    Descending = 1,
}

#[repr(C)]
pub struct QModelIndex {
    row: c_int,
    internal_id: usize,
}
`

const rustIntConversions = `

fn to_usize(n: c_int) -> usize {
    if n < 0 {
        panic!("Cannot cast {} to usize", n);
    }
    n as usize
}


fn to_c_int(n: usize) -> c_int {
    if n > c_int::max_value() as usize {
        panic!("Cannot cast {} to c_int", n);
    }
    n as c_int
}

`

// writeRustTypes emits the shared helper types the objects of cfg need.
func writeRustTypes(c *code, cfg *schema.Config) {
	hasString := cfg.HasType("QString")
	hasByteArray := cfg.HasType("QByteArray")
	hasModel := cfg.HasListOrTree()

	// models always need COption<usize> for row ids
	if len(cfg.OptionalTypes()) > 0 {
		c.text(rustCOption)
	}

	if hasString {
		c.text(rustQString)
	}

	if hasByteArray {
		c.text(rustQByteArray)
	}

	if hasModel {
		c.text(rustModelTypes)
	}

	if hasString || hasByteArray || hasModel {
		c.text(rustIntConversions)
	}
}
