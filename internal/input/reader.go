// Package input reads answers to interactive prompts.
package input

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Reader reads one answer up to and including delim.
type Reader interface {
	ReadString(delim byte) (string, error)
}

// NewLineReader buffers r for line-at-a-time reads.
func NewLineReader(r io.Reader) Reader {
	return bufio.NewReader(r)
}

// lazyStdin defers buffering os.Stdin until the first prompt.
type lazyStdin struct {
	r *bufio.Reader
}

// Stdin returns a Reader over os.Stdin.
func Stdin() Reader {
	return &lazyStdin{}
}

func (s *lazyStdin) ReadString(delim byte) (string, error) {
	if s.r == nil {
		s.r = bufio.NewReader(os.Stdin)
	}
	return s.r.ReadString(delim)
}

// Answers replays canned answers, one per ReadString call, then io.EOF.
type Answers []string

func (a *Answers) ReadString(delim byte) (string, error) {
	if len(*a) == 0 {
		return "", io.EOF
	}
	next := (*a)[0]
	*a = (*a)[1:]
	return next, nil
}

// Confirm reads one line from r and reports whether it is "y" or "yes".
// Read errors and empty answers count as no.
func Confirm(r Reader) bool {
	answer, err := r.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}
