// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingCmd is the error returned when a Cmd query completes with no
// result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// ErrNoKey is returned by Store.Get when there is no such key.
var ErrNoKey = errors.New("no such key")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	DelCmd(seq int) error
	Cmd(seq int) (string, error)
	CmdsWithSeq(from, upto int) ([]Cmd, error)

	Get(key string) (string, error)
	Put(key, value string) error
	Del(key string) error
	Keys() ([]string, error)
}

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}
