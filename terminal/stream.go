package terminal

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// StreamReader reads lines from a plain stream such as a pipe or a file.
type StreamReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStreamReader writes prompts to out and reads lines from in.
func NewStreamReader(in io.Reader, out io.Writer) *StreamReader {
	return &StreamReader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine writes the prompt and returns the next line. A last line without
// a trailing newline is still returned; an exhausted stream gives io.EOF.
func (s *StreamReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return "", errors.Wrap(err, "write prompt")
	}

	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}

	return line, nil
}

// Close is a no-op; the stream belongs to the caller.
func (s *StreamReader) Close() error {
	return nil
}
