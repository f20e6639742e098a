//go:build unit

package request_test

import (
	"testing"
	"time"

	reqdto "hotel-booking/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2030, time.March, 10, 10, 0, 0, 0, time.UTC)

	accepted := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "rfc3339 utc", input: "2030-03-10T10:00:00Z", want: want},
		{name: "rfc3339 offset normalised to utc", input: "2030-03-10T15:30:00+05:30", want: want},
		{name: "fractional seconds", input: "2030-03-10T10:00:00.000Z", want: want},
		{name: "datetime-local with seconds", input: "2030-03-10T10:00:00", want: want},
		{name: "datetime-local", input: "2030-03-10T10:00", want: want},
		{name: "space separated", input: "2030-03-10 10:00", want: want},
		{name: "surrounding whitespace", input: "  2030-03-10T10:00Z ", want: want},
		{name: "date only", input: "2030-03-10", want: time.Date(2030, time.March, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range accepted {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reqdto.ParseTimestamp(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %v got %v", tc.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	for _, input := range []string{"", "   ", "tomorrow", "2030-13-10T10:00", "10/03/2030"} {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := reqdto.ParseTimestamp(input)
			assert.Error(t, err)
		})
	}
}
