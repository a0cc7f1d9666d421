package diag

import (
	"fmt"
	"io"
)

// Shower wraps the Show function.
type Shower interface {
	// Show takes an indentation string and shows.
	Show(indent string) string
}

// Variables controlling the style of error messages.
var (
	messageStart = "\033[31;1m"
	messageEnd   = "\033[m"
)

// SetStyled turns ANSI styling of errors and source excerpts on or off. It is
// typically called once at startup, depending on whether the error output is a
// terminal.
func SetStyled(styled bool) {
	if styled {
		culpritStart, culpritEnd = "\033[1;4m", "\033[m"
		caretStart, caretEnd = "\033[32;1m", "\033[m"
		messageStart, messageEnd = "\033[31;1m", "\033[m"
	} else {
		culpritStart, culpritEnd = "", ""
		caretStart, caretEnd = "", ""
		messageStart, messageEnd = "", ""
	}
}

// ShowMessage shows a message preceded by a type, styled like the first line of
// [Error.Show].
func ShowMessage(typ, msg string) string {
	return typ + ": " + messageStart + msg + messageEnd
}

// ShowError shows an error. It uses the Show method if the error
// implements Shower, and uses Complain to print the error message otherwise.
func ShowError(w io.Writer, err error) {
	if shower, ok := err.(Shower); ok {
		fmt.Fprintln(w, shower.Show(""))
	} else {
		Complain(w, err.Error())
	}
}

// Complain prints a message to w in bold and red, adding a trailing newline.
func Complain(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s%s%s\n", messageStart, msg, messageEnd)
}

// Complainf is like Complain, but accepts a format string and arguments.
func Complainf(w io.Writer, format string, args ...any) {
	Complain(w, fmt.Sprintf(format, args...))
}
