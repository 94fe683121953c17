package soundtrack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderFor(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"entry.wav", true},
		{"ENTRY.WAV", true},
		{"music/track.mp3", true},
		{"track.Flac", true},
		{"track.ogg", false},
		{"track", false},
	}

	for _, tt := range tests {
		decode, err := decoderFor(tt.path)
		if tt.ok {
			require.NoError(t, err, tt.path)
			assert.NotNil(t, decode, tt.path)
		} else {
			assert.ErrorIs(t, err, ErrUnsupportedFormat, tt.path)
		}
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("soundtrack.ogg")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Open(filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(t.TempDir(), "garbage.wav")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not RIFF"), 0644))
	_, err = Open(garbage)
	assert.Error(t, err)
}
