package cli

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/peterh/liner"
)

// prompter reads one line of user input. Implementations return io.EOF when
// the user aborts (ctrl-c, ctrl-d) or input runs out.
type prompter interface {
	Prompt(text string) (string, error)
	Close() error
}

// newPrompter picks a line editor for interactive terminals and a plain
// reader for pipes and tests.
func newPrompter(in io.Reader, o *IO) prompter {
	if f, ok := in.(*os.File); ok && f == os.Stdin && liner.TerminalSupported() {
		return newLinerPrompter()
	}
	return &readerPrompter{o: o, scanner: bufio.NewScanner(in)}
}

// linerPrompter wraps peterh/liner for terminal sessions.
type linerPrompter struct {
	state *liner.State
}

func newLinerPrompter() *linerPrompter {
	s := liner.NewLiner()
	s.SetCtrlCAborts(true)
	return &linerPrompter{state: s}
}

func (p *linerPrompter) Prompt(text string) (string, error) {
	line, err := p.state.Prompt(text)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

func (p *linerPrompter) Close() error {
	return p.state.Close()
}

// readerPrompter reads lines from a plain reader, echoing the prompt text to
// stdout.
type readerPrompter struct {
	o       *IO
	scanner *bufio.Scanner
}

func (p *readerPrompter) Prompt(text string) (string, error) {
	p.o.Printf("%s", text)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

func (p *readerPrompter) Close() error {
	return nil
}
