package assets

import (
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionName(t *testing.T) {
	assert.Equal(t, "expl01.wav", InstructionName(1))
	assert.Equal(t, "expl15.wav", InstructionName(15))
}

func TestOpenInstruction(t *testing.T) {
	fsys := fstest.MapFS{
		"expl02.wav": {Data: []byte("RIFF")},
	}

	f, err := OpenInstruction(fsys, 2)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data))

	_, err = OpenInstruction(fsys, 3)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = OpenInstruction(nil, 1)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestFontTTF(t *testing.T) {
	assert.NotEmpty(t, FontTTF(false))
	assert.NotEmpty(t, FontTTF(true))
	assert.NotEqual(t, FontTTF(false), FontTTF(true))
}
