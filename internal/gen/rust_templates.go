package gen

import (
	"text/template"

	"qt-binding-generator/internal/config"
	"qt-binding-generator/internal/schema"
)

// rustModelData parameterizes the model handle shared by lists and trees.
// Tree handles carry the parent item through every row operation.
type rustModelData struct {
	Name       string
	Lc         string
	Type       string
	IndexDecl  string
	Index      string
	IndexCDecl string
	DestDecl   string
	Dest       string
	DestCDecl  string
}

func newRustModelData(o *schema.Object) rustModelData {
	d := rustModelData{Name: o.Name, Lc: lc(o.Name), Type: modelSuffix(o)}

	if o.Kind == config.KindTree {
		d.IndexDecl = " index: Option<usize>,"
		d.IndexCDecl = " index: COption<usize>,"
		d.Index = " index.into(),"
		d.DestDecl = " dest: Option<usize>,"
		d.DestCDecl = " dest: COption<usize>,"
		d.Dest = " dest.into(),"
	}

	return d
}

var rustModelStructTemplate = template.Must(template.New("rustModelStruct").Parse(`}

#[derive(Clone)]
pub struct {{.Name}}{{.Type}} {
    qobject: *mut {{.Name}}QObject,
    layout_about_to_be_changed: fn(*mut {{.Name}}QObject),
    layout_changed: fn(*mut {{.Name}}QObject),
    data_changed: fn(*mut {{.Name}}QObject, usize, usize),
    begin_reset_model: fn(*mut {{.Name}}QObject),
    end_reset_model: fn(*mut {{.Name}}QObject),
    begin_insert_rows: fn(*mut {{.Name}}QObject,{{.IndexCDecl}} usize, usize),
    end_insert_rows: fn(*mut {{.Name}}QObject),
    begin_move_rows: fn(*mut {{.Name}}QObject,{{.IndexCDecl}} usize, usize,{{.DestCDecl}} usize),
    end_move_rows: fn(*mut {{.Name}}QObject),
    begin_remove_rows: fn(*mut {{.Name}}QObject,{{.IndexCDecl}} usize, usize),
    end_remove_rows: fn(*mut {{.Name}}QObject),
}

impl {{.Name}}{{.Type}} {
    pub fn layout_about_to_be_changed(&mut self) {
        (self.layout_about_to_be_changed)(self.qobject);
    }
    pub fn layout_changed(&mut self) {
        (self.layout_changed)(self.qobject);
    }
    pub fn data_changed(&mut self, first: usize, last: usize) {
        (self.data_changed)(self.qobject, first, last);
    }
    pub fn begin_reset_model(&mut self) {
        (self.begin_reset_model)(self.qobject);
    }
    pub fn end_reset_model(&mut self) {
        (self.end_reset_model)(self.qobject);
    }
    pub fn begin_insert_rows(&mut self,{{.IndexDecl}} first: usize, last: usize) {
        (self.begin_insert_rows)(self.qobject,{{.Index}} first, last);
    }
    pub fn end_insert_rows(&mut self) {
        (self.end_insert_rows)(self.qobject);
    }
    pub fn begin_move_rows(&mut self,{{.IndexDecl}} first: usize, last: usize,{{.DestDecl}} destination: usize) {
        (self.begin_move_rows)(self.qobject,{{.Index}} first, last,{{.Dest}} destination);
    }
    pub fn end_move_rows(&mut self) {
        (self.end_move_rows)(self.qobject);
    }
    pub fn begin_remove_rows(&mut self,{{.IndexDecl}} first: usize, last: usize) {
        (self.begin_remove_rows)(self.qobject,{{.Index}} first, last);
    }
    pub fn end_remove_rows(&mut self) {
        (self.end_remove_rows)(self.qobject);
    }
`))

// rustModelArgsDeclTemplate continues the parameter list of <object>_new.
// Lc is the parameter prefix, which differs from the object for nested models.
var rustModelArgsDeclTemplate = template.Must(template.New("rustModelArgsDecl").Parse(`,
    {{.Lc}}_layout_about_to_be_changed: fn(*mut {{.Name}}QObject),
    {{.Lc}}_layout_changed: fn(*mut {{.Name}}QObject),
    {{.Lc}}_data_changed: fn(*mut {{.Name}}QObject, usize, usize),
    {{.Lc}}_begin_reset_model: fn(*mut {{.Name}}QObject),
    {{.Lc}}_end_reset_model: fn(*mut {{.Name}}QObject),
    {{.Lc}}_begin_insert_rows: fn(*mut {{.Name}}QObject,{{.IndexCDecl}} usize, usize),
    {{.Lc}}_end_insert_rows: fn(*mut {{.Name}}QObject),
    {{.Lc}}_begin_move_rows: fn(*mut {{.Name}}QObject,{{.IndexCDecl}} usize, usize,{{.DestCDecl}} usize),
    {{.Lc}}_end_move_rows: fn(*mut {{.Name}}QObject),
    {{.Lc}}_begin_remove_rows: fn(*mut {{.Name}}QObject,{{.IndexCDecl}} usize, usize),
    {{.Lc}}_end_remove_rows: fn(*mut {{.Name}}QObject)`))

var rustModelArgsTemplate = template.Must(template.New("rustModelArgs").Parse(`    };
    let model = {{.Name}}{{.Type}} {
        qobject: {{.Lc}},
        layout_about_to_be_changed: {{.Lc}}_layout_about_to_be_changed,
        layout_changed: {{.Lc}}_layout_changed,
        data_changed: {{.Lc}}_data_changed,
        begin_reset_model: {{.Lc}}_begin_reset_model,
        end_reset_model: {{.Lc}}_end_reset_model,
        begin_insert_rows: {{.Lc}}_begin_insert_rows,
        end_insert_rows: {{.Lc}}_end_insert_rows,
        begin_move_rows: {{.Lc}}_begin_move_rows,
        end_move_rows: {{.Lc}}_end_move_rows,
        begin_remove_rows: {{.Lc}}_begin_remove_rows,
        end_remove_rows: {{.Lc}}_end_remove_rows,
`))

const rustListTrait = `    fn row_count(&self) -> usize;
    fn insert_rows(&mut self, _row: usize, _count: usize) -> bool { false }
    fn remove_rows(&mut self, _row: usize, _count: usize) -> bool { false }
    fn can_fetch_more(&self) -> bool {
        false
    }
    fn fetch_more(&mut self) {}
    fn sort(&mut self, _: u8, _: SortOrder) {}
`

const rustTreeTrait = `    fn row_count(&self, _: Option<usize>) -> usize;
    fn insert_rows(&mut self, _: Option<usize>, _row: usize, _count: usize) -> bool { false }
    fn remove_rows(&mut self, _: Option<usize>, _row: usize, _count: usize) -> bool { false }
    fn can_fetch_more(&self, _: Option<usize>) -> bool {
        false
    }
    fn fetch_more(&mut self, _: Option<usize>) {}
    fn sort(&mut self, _: u8, _: SortOrder) {}
    fn check_row(&self, index: usize, row: usize) -> Option<usize>;
    fn index(&self, item: Option<usize>, row: usize) -> usize;
    fn parent(&self, index: usize) -> Option<usize>;
    fn row(&self, index: usize) -> usize;
`

var rustListThunksTemplate = template.Must(template.New("rustListThunks").Parse(`
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_row_count(ptr: *const {{.Name}}) -> c_int {
    to_c_int((&*ptr).row_count())
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_insert_rows(ptr: *mut {{.Name}}, row: c_int, count: c_int) -> bool {
    (&mut *ptr).insert_rows(to_usize(row), to_usize(count))
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_remove_rows(ptr: *mut {{.Name}}, row: c_int, count: c_int) -> bool {
    (&mut *ptr).remove_rows(to_usize(row), to_usize(count))
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_can_fetch_more(ptr: *const {{.Name}}) -> bool {
    (&*ptr).can_fetch_more()
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_fetch_more(ptr: *mut {{.Name}}) {
    (&mut *ptr).fetch_more()
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_sort(
    ptr: *mut {{.Name}},
    column: u8,
    order: SortOrder,
) {
    (&mut *ptr).sort(column, order)
}
`))

var rustTreeThunksTemplate = template.Must(template.New("rustTreeThunks").Parse(`
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_row_count(
    ptr: *const {{.Name}},
    index: COption<usize>,
) -> c_int {
    to_c_int((&*ptr).row_count(index.into()))
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_insert_rows(
    ptr: *mut {{.Name}},
    index: COption<usize>,
    row: c_int,
    count: c_int,
) -> bool {
    (&mut *ptr).insert_rows(index.into(), to_usize(row), to_usize(count))
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_remove_rows(
    ptr: *mut {{.Name}},
    index: COption<usize>,
    row: c_int,
    count: c_int,
) -> bool {
    (&mut *ptr).remove_rows(index.into(), to_usize(row), to_usize(count))
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_can_fetch_more(
    ptr: *const {{.Name}},
    index: COption<usize>,
) -> bool {
    (&*ptr).can_fetch_more(index.into())
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_fetch_more(ptr: *mut {{.Name}}, index: COption<usize>) {
    (&mut *ptr).fetch_more(index.into())
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_sort(
    ptr: *mut {{.Name}},
    column: u8,
    order: SortOrder
) {
    (&mut *ptr).sort(column, order)
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_check_row(
    ptr: *const {{.Name}},
    index: usize,
    row: c_int,
) -> COption<usize> {
    (&*ptr).check_row(index, to_usize(row)).into()
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_index(
    ptr: *const {{.Name}},
    index: COption<usize>,
    row: c_int,
) -> usize {
    (&*ptr).index(index.into(), to_usize(row))
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_parent(ptr: *const {{.Name}}, index: usize) -> QModelIndex {
    if let Some(parent) = (&*ptr).parent(index) {
        QModelIndex {
            row: to_c_int((&*ptr).row(parent)),
            internal_id: parent,
        }
    } else {
        QModelIndex {
            row: -1,
            internal_id: 0,
        }
    }
}
#[no_mangle]
pub unsafe extern "C" fn {{.Lc}}_row(ptr: *const {{.Name}}, index: usize) -> c_int {
    to_c_int((&*ptr).row(index))
}
`))

const rustTreeImplementation = `    fn row_count(&self, item: Option<usize>) -> usize {
        self.list.len()
    }
    fn index(&self, item: Option<usize>, row: usize) -> usize {
        0
    }
    fn parent(&self, index: usize) -> Option<usize> {
        None
    }
    fn row(&self, index: usize) -> usize {
        index
    }
    fn check_row(&self, index: usize, _row: usize) -> Option<usize> {
        if index < self.list.len() {
            Some(index)
        } else {
            None
        }
    }
`
