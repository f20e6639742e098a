//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"hotel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var (
	errAlpha = errs.Sentinel("alpha failed", errs.ErrNotFound)
	errBeta  = errs.Sentinel("beta failed", errs.ErrNotFound)
)

func TestSentinel(t *testing.T) {
	assert.Equal(t, "alpha failed", errAlpha.Error())
	assert.True(t, errs.Is(errAlpha, errs.ErrNotFound))
	assert.False(t, errs.Is(errAlpha, errs.ErrConflict))
	assert.False(t, errs.Is(errAlpha, errBeta), "sentinels of one kind stay distinct")
}

func TestMark(t *testing.T) {
	t.Run("nil error yields the mark", func(t *testing.T) {
		assert.Same(t, errAlpha, errs.Mark(nil, errAlpha))
	})

	t.Run("marked error matches sentinel and its kind but keeps its message", func(t *testing.T) {
		cause := errors.New("no rows in result set")
		err := errs.Mark(cause, errAlpha)

		assert.Equal(t, "no rows in result set", err.Error())
		assert.True(t, errs.Is(err, errAlpha))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.True(t, errs.Is(err, cause))
		assert.False(t, errs.Is(err, errBeta))
	})

	t.Run("plain kind mark", func(t *testing.T) {
		err := errs.Mark(errors.New("bad"), errs.ErrInvalidInput)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})
}

func TestKind(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect error
	}{
		{name: "sentinel", err: errAlpha, expect: errs.ErrNotFound},
		{name: "marked with sentinel", err: errs.Mark(errors.New("x"), errs.Sentinel("busy", errs.ErrUnavailable)), expect: errs.ErrUnavailable},
		{name: "marked with kind", err: errs.Mark(errors.New("x"), errs.ErrConflict), expect: errs.ErrConflict},
		{name: "wrapped", err: errs.Wrap(errs.Mark(errors.New("x"), errs.ErrInvalidInput), "ctx"), expect: errs.ErrInvalidInput},
		{name: "untagged", err: errors.New("boom"), expect: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, errs.Kind(tc.err))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "msg"))
	assert.Nil(t, errs.Wrapf(nil, "msg %d", 1))

	err := errs.Wrapf(errors.New("inner"), "outer %d", 2)
	assert.Equal(t, "outer 2: inner", err.Error())
	assert.NotEmpty(t, errs.ExtractStackLines(err, 3))
	assert.LessOrEqual(t, len(errs.ExtractStackLines(err, 3)), 3)
}
