package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Bryantad/Sona-sub001/pkg/eval"
	"github.com/Bryantad/Sona-sub001/pkg/parse"
	"github.com/Bryantad/Sona-sub001/pkg/prog"
	"github.com/Bryantad/Sona-sub001/pkg/store/storedefs"
	"github.com/Bryantad/Sona-sub001/pkg/sys"
)

const (
	promptMain = "sona> "
	promptCont = "....> "

	// Number of the most recent history entries loaded into the editor.
	historyLimit = 1000
)

// Runs an interactive session. All the code read shares one session, so
// bindings, functions and imported modules persist between entries.
func interact(fds [3]*os.File, ev *eval.Evaler, st storedefs.Store) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(fds[2], sys.DumpStack())
			fmt.Fprintln(fds[2], r)
			err = prog.Exit(2)
		}
	}()

	var ed editor
	if canUseLiner(fds, sys.IsATTY) {
		ed = newLinerEditor(loadHistory(st))
	} else {
		ed = newMinEditor(ev.Stdin(), fds[2])
	}
	defer func() { ed.Close() }()

	cmdNum := 0
	for {
		code, err := readCode(ev, ed)
		if err == io.EOF {
			break
		} else if err == errInterrupted {
			continue
		} else if err != nil {
			fmt.Fprintln(fds[2], "Editor error:", err)
			if _, isMinEditor := ed.(*minEditor); isMinEditor {
				return prog.Exit(2)
			}
			fmt.Fprintln(fds[2], "Falling back to basic line editor")
			ed.Close()
			ed = newMinEditor(ev.Stdin(), fds[2])
			continue
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		cmdNum++
		ed.AddHistory(code)
		saveHistory(st, code)
		outcome := ev.Run(parse.Source{Name: fmt.Sprintf("[repl %d]", cmdNum), Code: code})
		if !outcome.OK() {
			fmt.Fprintln(fds[2], outcome.Show())
		}
	}
	return nil
}

// Reads lines until they form code that is either complete or has a syntax
// error before its end.
func readCode(ev *eval.Evaler, ed editor) (string, error) {
	var sb strings.Builder
	prompt := promptMain
	for {
		line, err := ed.ReadLine(prompt)
		if err == io.EOF && sb.Len() > 0 {
			return sb.String(), nil
		} else if err != nil {
			return "", err
		}
		sb.WriteString(line)
		code := sb.String()
		if !parse.IsIncomplete(ev.Check(parse.Source{Name: "[repl]", Code: code})) {
			return code, nil
		}
		sb.WriteByte('\n')
		prompt = promptCont
	}
}

func loadHistory(st storedefs.Store) []string {
	if st == nil {
		return nil
	}
	upto, err := st.NextCmdSeq()
	if err != nil {
		logger.Warn().Err(err).Msg("reading history")
		return nil
	}
	cmds, err := st.CmdsWithSeq(max(0, upto-historyLimit), upto)
	if err != nil {
		logger.Warn().Err(err).Msg("reading history")
		return nil
	}
	history := make([]string, len(cmds))
	for i, cmd := range cmds {
		history[i] = cmd.Text
	}
	return history
}

func saveHistory(st storedefs.Store, code string) {
	if st == nil {
		return
	}
	if _, err := st.AddCmd(code); err != nil {
		logger.Warn().Err(err).Msg("saving history")
	}
}
