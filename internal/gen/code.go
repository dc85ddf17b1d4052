package gen

import (
	"bytes"
	"fmt"
	"text/template"
)

// code accumulates generated source. Template errors are sticky: after the
// first one every call is a no-op and bytes reports it.
type code struct {
	buf bytes.Buffer
	err error
}

// line writes a formatted line followed by a newline.
func (c *code) line(format string, args ...any) {
	fmt.Fprintf(&c.buf, format, args...)
	c.buf.WriteByte('\n')
}

// printf writes formatted text without a trailing newline.
func (c *code) printf(format string, args ...any) {
	fmt.Fprintf(&c.buf, format, args...)
}

// text writes s verbatim.
func (c *code) text(s string) {
	c.buf.WriteString(s)
}

// exec renders t with data into the buffer.
func (c *code) exec(t *template.Template, data any) {
	if c.err != nil {
		return
	}

	if err := t.Execute(&c.buf, data); err != nil {
		c.err = fmt.Errorf("executing template %s: %w", t.Name(), err)
	}
}

func (c *code) bytes() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}

	return c.buf.Bytes(), nil
}
