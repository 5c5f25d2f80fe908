package terminal

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/faktorial/core/query"
)

//go:generate mockgen -source=reader.go -destination=mocks/mock_line_reader.go -package=mocks

// LineReader shows a prompt and reads one line of user input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// ReadInt makes a single attempt to read a signed integer from r.
// Surrounding whitespace is ignored. Any failure yields an absent input.
func ReadInt(r LineReader, prompt string) query.Input {
	line, err := r.ReadLine(prompt)
	if err != nil {
		return query.None(errors.Wrap(err, "read line"))
	}

	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return query.None(errors.Wrap(err, "parse integer"))
	}

	return query.Some(v)
}
