package repl

import (
	"context"
	"errors"
	"io"

	"fortio.org/log"
	"fortio.org/terminal"
)

// Interactive runs commands typed in the terminal until EOF (^D) or interrupt (^C).
// Returns the exit code.
func Interactive(st Store, options Options) int {
	t, err := terminal.Open(context.Background())
	if err != nil {
		return log.FErrf("Error opening terminal: %v", err)
	}
	defer t.Close()
	t.SetPrompt(PROMPT)
	t.SetAutoCompleteCallback(NewCompletion(st).AutoComplete())
	log.Infof("%s - type help for the list of commands, tab to complete", st.Describe())
	for {
		l, err := t.ReadLine()
		switch {
		case errors.Is(err, io.EOF):
			log.Infof("EOF received, exiting.")
			return 0
		case errors.Is(err, terminal.ErrUserInterrupt):
			log.Infof("Interrupted, exiting.")
			return 0
		case err != nil:
			return log.FErrf("Error reading line: %v", err)
		}
		errs := EvalOne(st, l, t.Out, options)
		if len(errs) > 0 {
			log.LogVf("%d error(s) in %q", len(errs), l)
		}
	}
}
