package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminalConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "yes\n", want: true},
		{name: "y", input: "y\n", want: true},
		{name: "uppercase yes", input: "YES\n", want: true},
		{name: "no", input: "no\n", want: false},
		{name: "n", input: "n\n", want: false},
		{name: "empty line declines", input: "\n", want: false},
		{name: "eof declines", input: "", want: false},
		{name: "garbage declines", input: "sure whatever\n", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			c := TerminalConfirmer{In: strings.NewReader(tt.input), Out: &out}

			got, err := c.Confirm([]string{"gps_time", "red"})
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Contains(t, out.String(), "gps_time, red")
			require.Contains(t, out.String(), "Continue?")
		})
	}
}
