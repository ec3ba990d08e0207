// Package console reads user input line by line and writes prompts and
// messages. It is the only input channel the phonebook operations use.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MsgInvalidFormat is printed when a validated prompt rejects its input.
const MsgInvalidFormat = "Invalid format. Try again."

// Prompter writes prompts to out and reads answers from in, one line each.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Println writes a line of output.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted output.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Ask writes prompt and returns the next input line without its line ending.
// Other whitespace is preserved. A final line without a newline is returned
// normally; io.EOF is returned only when no input is left.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// AskValid asks until check accepts the answer, printing MsgInvalidFormat
// after each rejection.
func (p *Prompter) AskValid(prompt string, check func(string) error) (string, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return "", err
		}
		if check(answer) == nil {
			return answer, nil
		}
		p.Println(MsgInvalidFormat)
	}
}

// SelectionStatus is the outcome of parsing a 1-based selection.
type SelectionStatus int

const (
	SelectionOK SelectionStatus = iota
	SelectionNotNumber
	SelectionOutOfRange
)

// Selection is the parse result for a 1-based choice among Count items.
type Selection struct {
	Index  int // 0-based, valid only when Status is SelectionOK
	Status SelectionStatus
}

// ParseSelection parses input as a number in 1..count. Surrounding whitespace
// is ignored.
func ParseSelection(input string, count int) Selection {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return Selection{Status: SelectionNotNumber}
	}
	if n < 1 || n > count {
		return Selection{Status: SelectionOutOfRange}
	}
	return Selection{Index: n - 1, Status: SelectionOK}
}

// Messages printed by Select on rejected input.
const (
	MsgSelectionNotNumber  = "Enter the record number using digits."
	MsgSelectionOutOfRange = "Invalid record number. Try again."
)

// Select asks until the answer is a valid 1-based choice among count items
// and returns its 0-based index.
func (p *Prompter) Select(prompt string, count int) (int, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return 0, err
		}
		sel := ParseSelection(answer, count)
		switch sel.Status {
		case SelectionOK:
			return sel.Index, nil
		case SelectionNotNumber:
			p.Println(MsgSelectionNotNumber)
		case SelectionOutOfRange:
			p.Println(MsgSelectionOutOfRange)
		}
	}
}
