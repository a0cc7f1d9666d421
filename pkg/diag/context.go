package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Context is a range of text in a source code. It is typically used for
// errors that can be associated with a part of the source code, like syntax
// errors and a traceback entry.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Variables controlling the style of the caret line and the culprit.
var (
	culpritStart = "\033[1;4m"
	culpritEnd   = "\033[m"
	caretStart   = "\033[32;1m"
	caretEnd     = "\033[m"
)

// Position returns the position of the start of the range.
func (c *Context) Position() Position {
	return PositionOf(c.Source, c.From)
}

// Describe returns "name:line:col", or "name" when the position is unknown.
func (c *Context) Describe() string {
	if !c.known() {
		return c.Name
	}
	pos := c.Position()
	return fmt.Sprintf("%s:%d:%d", c.Name, pos.Line, pos.Column)
}

// LineText returns the full text of the line the range starts on, without the
// trailing newline.
func (c *Context) LineText() string {
	if !c.known() {
		return ""
	}
	from := c.From
	if from > len(c.Source) {
		from = len(c.Source)
	}
	return lastLine(c.Source[:from]) + firstLine(c.Source[from:])
}

func (c *Context) known() bool {
	return c.From >= 0 && c.From <= len(c.Source)
}

// Show shows the context as the position description on one line, followed by
// the offending source line and a caret under the starting column. Every line
// after the first is prefixed with indent.
func (c *Context) Show(indent string) string {
	if !c.known() {
		return c.Name + ", unknown position"
	}
	pos := c.Position()
	line := c.LineText()
	head := c.Source[strings.LastIndexByte(c.Source[:c.From], '\n')+1 : c.From]

	var sb strings.Builder
	sb.WriteString(c.Describe())
	sb.WriteString("\n" + indent)
	sb.WriteString(c.highlight(line, len(head)))
	sb.WriteString("\n" + indent)
	sb.WriteString(strings.Repeat(" ", pos.Column-1))
	sb.WriteString(caretStart + "^" + caretEnd)
	return sb.String()
}

// ShowCompact shows the context on a single line: the position description
// followed by the culprit text.
func (c *Context) ShowCompact() string {
	if !c.known() {
		return c.Name + ", unknown position"
	}
	return c.Describe() + ": " + c.highlight(c.LineText(), len(lastLine(c.Source[:c.From])))
}

// Highlights the culprit part within line, where head is the byte offset of
// the culprit within the line. The culprit never extends past the line.
func (c *Context) highlight(line string, head int) string {
	n := c.To - c.From
	if n < 0 {
		n = 0
	}
	if head+n > len(line) {
		n = len(line) - head
	}
	if n <= 0 || !utf8.ValidString(line[head:head+n]) {
		return line
	}
	return line[:head] + culpritStart + line[head:head+n] + culpritEnd + line[head+n:]
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// When s does not contain '\n', LastIndexByte returns -1, which happens to
	// be what we want.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
