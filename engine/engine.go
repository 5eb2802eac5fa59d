package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter reads one answer per line.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// line prints question and returns the next input line, trimmed. It returns
// io.EOF once the input is exhausted.
func (p *prompter) line(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// number asks until the answer is an integer.
func (p *prompter) number(question string) (int, error) {
	for {
		answer, err := p.line(question)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(p.out, "[ERROR] %q is not a number.\n", answer)
	}
}
