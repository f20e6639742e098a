package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err so that errors.Is(err, markErr) holds while keeping err's message.
// A nil err yields markErr itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	marked := cr.Mark(err, markErr)
	// Marks are compared by type and message only, so a sentinel's kind must be marked as well.
	var ke *kindError
	if cr.As(markErr, &ke) {
		marked = cr.Mark(marked, ke.kind)
	}
	return marked
}

// Sentinel builds a named error that also matches kind under Is.
// Each sentinel keeps its own identity, so two sentinels of one kind never match each other.
func Sentinel(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// Kind returns the taxonomy error err was tagged with, or nil.
func Kind(err error) error {
	for _, k := range []error{ErrInvalidInput, ErrNotFound, ErrConflict, ErrUnavailable} {
		if Is(err, k) {
			return k
		}
	}
	return nil
}

// Is reports whether err matches target, including marks added by Mark.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
