package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// The interface the line editor has to satisfy.
type editor interface {
	// ReadLine shows the prompt and reads one line, without the line ending.
	// It returns errInterrupted when the user aborts the line and io.EOF when
	// there is no more input.
	ReadLine(prompt string) (string, error)
	AddHistory(code string)
	Close() error
}

var errInterrupted = errors.New("interrupted")

// A line editor used when the terminal is not interactive. It writes prompts
// to out and has no history. It reads from the session's input buffer, so that
// input read by code and input read as code come from the same stream.
type minEditor struct {
	in  *bufio.Reader
	out io.Writer
}

func newMinEditor(in *bufio.Reader, out io.Writer) *minEditor {
	return &minEditor{in, out}
}

func (ed *minEditor) ReadLine(prompt string) (string, error) {
	fmt.Fprint(ed.out, prompt)
	line, err := ed.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

func (ed *minEditor) AddHistory(string) {}

func (ed *minEditor) Close() error { return nil }

// A line editor backed by liner. It always uses the process's stdin and
// stdout.
type linerEditor struct {
	state *liner.State
}

func newLinerEditor(history []string) *linerEditor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	for _, code := range history {
		state.AppendHistory(code)
	}
	return &linerEditor{state}
}

func (ed *linerEditor) ReadLine(prompt string) (string, error) {
	line, err := ed.state.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", errInterrupted
	}
	return line, err
}

func (ed *linerEditor) AddHistory(code string) { ed.state.AppendHistory(code) }

func (ed *linerEditor) Close() error { return ed.state.Close() }

// Whether the liner editor can be used with the given files.
func canUseLiner(fds [3]*os.File, isATTY func(*os.File) bool) bool {
	return fds[0] == os.Stdin && fds[1] == os.Stdout &&
		isATTY(fds[0]) && isATTY(fds[1]) && liner.TerminalSupported()
}
