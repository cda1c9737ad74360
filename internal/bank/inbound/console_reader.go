package inbound

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// tokenReader splits console input on whitespace the way a terminal user
// expects: several values may share a line, and blank lines are skipped.
type tokenReader struct {
	r *bufio.Reader
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r)}
}

// Token returns the next whitespace-delimited word. The delimiter is left
// unread so the rest of the line stays available to skipLine.
func (t *tokenReader) Token() (string, error) {
	var b strings.Builder
	for {
		c, err := t.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}

		if isSpace(c) {
			if b.Len() == 0 {
				continue
			}
			_ = t.r.UnreadByte()
			return b.String(), nil
		}
		b.WriteByte(c)
	}
}

// skipLine discards input up to and including the next newline.
func (t *tokenReader) skipLine() error {
	_, err := t.r.ReadString('\n')
	return err
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
