package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kjstillabower/ornithologist/internal/present"
)

// ErrInput is wrapped when standard input cannot be read. It is the only
// error that ends a session early.
var ErrInput = errors.New("failed to read input")

// Prompter writes a question and reads the answer from one line of input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// PromptLine prints msg and returns the next input line with surrounding
// whitespace removed. End of input yields whatever was read, possibly "".
func (p *Prompter) PromptLine(msg string) (string, error) {
	if _, err := fmt.Fprintln(p.out, present.Prompt(msg)); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", ErrInput, err)
	}
	return strings.TrimSpace(line), nil
}
