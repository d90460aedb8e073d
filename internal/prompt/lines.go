package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Lines asks questions over plain line-oriented I/O. It is used when stdin is
// not a terminal, so answers can be piped in.
type Lines struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLines creates a Lines prompter reading answers from in and writing questions to out.
func NewLines(in io.Reader, out io.Writer) *Lines {
	return &Lines{reader: bufio.NewReader(in), out: out}
}

// New returns a Survey prompter when stdin is a terminal, and a Lines prompter otherwise.
func New(stdin *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(stdin.Fd())) {
		return NewSurvey()
	}
	return NewLines(stdin, out)
}

// AskText reads lines until one satisfies c. Rejected answers are reported and asked again.
func (l *Lines) AskText(message string, c TextConstraints) (string, error) {
	for {
		fmt.Fprintf(l.out, "%s: ", message)
		input, err := l.readLine()
		if err != nil {
			return "", err
		}
		if err := c.Validate(input); err != nil {
			fmt.Fprintf(l.out, "%v\n", err)
			continue
		}
		return input, nil
	}
}

// AskConfirm reads one line. Only "y" or "yes" confirm.
func (l *Lines) AskConfirm(message string) (bool, error) {
	fmt.Fprintf(l.out, "%s [y/N]: ", message)
	input, err := l.readLine()
	if err != nil {
		return false, err
	}
	input = strings.ToLower(input)
	return input == "y" || input == "yes", nil
}

// readLine returns the next trimmed line. A final line without newline still counts.
func (l *Lines) readLine() (string, error) {
	input, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		return "", askError(err)
	}
	return strings.TrimSpace(input), nil
}
