package diag

import (
	"fmt"
)

// Error represents an error with context that can be showed.
type Error struct {
	Type    string
	Message string
	Context Context
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Type, e.Context.Describe(), e.Message)
}

// Range returns the range of the error.
func (e *Error) Range() Ranging {
	return e.Context.Range()
}

// Position returns the position of the start of the error.
func (e *Error) Position() Position {
	return e.Context.Position()
}

// Show shows the error.
func (e *Error) Show(indent string) string {
	return ShowMessage(e.Type, e.Message) + "\n" + indent + "  " + e.Context.Show(indent+"  ")
}
