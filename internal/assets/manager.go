package assets

import (
	"fmt"
	"io/fs"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontTTF returns the embedded Go font used for all UI text.
func FontTTF(bold bool) []byte {
	if bold {
		return gobold.TTF
	}
	return goregular.TTF
}

// InstructionName is the clip file a level looks for, e.g. "expl03.wav".
func InstructionName(level int) string {
	return fmt.Sprintf("expl%02d.wav", level)
}

// OpenInstruction opens the spoken instruction clip for a level.
// A nil fsys means no clip directory was configured.
func OpenInstruction(fsys fs.FS, level int) (fs.File, error) {
	if fsys == nil {
		return nil, fs.ErrNotExist
	}
	f, err := fsys.Open(InstructionName(level))
	if err != nil {
		return nil, fmt.Errorf("open instruction for level %d: %w", level, err)
	}
	return f, nil
}
