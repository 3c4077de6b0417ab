package size

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileSize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"512", "512"},
		{"0", "0"},
		{"007", "7"},
		{"000", "0"},
		{"100B", "100"},
		{"100b", "100"},
		{"1K", "(1 * 1024)"},
		{"1KB", "(1 * 1024)"},
		{"4kb", "(4 * 1024)"},
		{"4Kb", "(4 * 1024)"},
		{"4kB", "(4 * 1024)"},
		{"10MB", "(10 * 1024 * 1024)"},
		{"10m", "(10 * 1024 * 1024)"},
		{"2g", "(2 * 1024 * 1024 * 1024)"},
		{"2GB", "(2 * 1024 * 1024 * 1024)"},
		{"  10MB\t", "(10 * 1024 * 1024)"},
		{"99999999999999999999999", "99999999999999999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFileSize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFileSizeInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "10XY", "10X", "10 MB", "MB", "-1", "1.5M", "10KBB", "10BK", "0x10"} {
		t.Run(in, func(t *testing.T) {
			got, err := ParseFileSize(in)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, ErrInvalidSizeFormat))

			var target *InvalidSizeFormatError
			require.ErrorAs(t, err, &target)
		})
	}
}

func TestInvalidSizeFormatMessage(t *testing.T) {
	_, err := ParseFileSize(" 10XY ")
	require.Error(t, err)
	assert.Equal(t, "Invalid FILE_SIZE format: '10XY'", err.Error())
}
