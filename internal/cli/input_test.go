package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string

		want      string
		wantError bool
	}{
		{
			name:  "trims the trailing newline",
			input: "hello world\n",
			want:  "hello world",
		},
		{
			name:  "trims surrounding spaces",
			input: "  spaced  \n",
			want:  "spaced",
		},
		{
			name:  "partial line at EOF is returned",
			input: "no newline",
			want:  "no newline",
		},
		{
			name:      "empty input at EOF",
			input:     "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, gotErr := GetSimpleText(bufio.NewReader(strings.NewReader(tt.input)), "you", &out)

			if tt.wantError {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "you: ", out.String())
		})
	}
}

func TestGetConfirmation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "yes\n", want: true},
		{name: "y", input: "y\n", want: true},
		{name: "Y uppercase", input: "Y\n", want: true},
		{name: "no", input: "no\n", want: false},
		{name: "empty defaults to no", input: "\n", want: false},
		{name: "anything else is no", input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetConfirmation(bufio.NewReader(strings.NewReader(tt.input)), "Delete?", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}

func TestGetPassword(t *testing.T) {
	original := readPassword
	defer func() { readPassword = original }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("secret"), nil
	}

	var out bytes.Buffer
	got, err := GetPassword("Password", &out)
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
	assert.Contains(t, out.String(), "Password: ")
}
