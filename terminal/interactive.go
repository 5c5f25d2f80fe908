package terminal

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

// InteractiveReader reads from a terminal with line editing.
type InteractiveReader struct {
	readline *readline.Instance
}

// NewInteractiveReader creates a readline instance on the process terminal.
// No history is kept since a run reads a single line.
func NewInteractiveReader() (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		DisableAutoSaveHistory: true,
		HistoryLimit:           -1,
	})
	if err != nil {
		return nil, errors.Wrap(err, "init readline")
	}

	return &InteractiveReader{readline: rl}, nil
}

// ReadLine shows prompt and reads a line. Ctrl-C and Ctrl-D both end the
// read with io.EOF.
func (r *InteractiveReader) ReadLine(prompt string) (string, error) {
	r.readline.SetPrompt(prompt)

	line, err := r.readline.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		return "", err
	}

	return line, nil
}

// Close releases the terminal.
func (r *InteractiveReader) Close() error {
	if r.readline != nil {
		return r.readline.Close()
	}
	return nil
}
