package token

import (
	"fmt"
	"os"

	"github.com/jesperkha/holy/holy/util"
)

type File struct {
	Name  string
	Src   []byte // File source
	Lines []int  // Offsets of beginning of each line, starting at 0.
	Err   error  // Error set on creation. Not returned by contructor for convenience.
}

// NewFile reads the source for filename. If src is not nil it is used as the
// source instead, and must be a string or []byte.
func NewFile(filename string, src any) *File {
	file := &File{
		Name: filename,
	}

	srcBytes, err := readSource(filename, src)
	if err != nil {
		srcBytes = []byte{}
		file.Err = err
	}

	file.Src = srcBytes
	file.Lines = getLines(srcBytes)
	return file
}

func readSource(filename string, src any) ([]byte, error) {
	if src != nil {
		switch src := src.(type) {
		case string:
			return []byte(src), nil

		case []byte:
			return src, nil

		default:
			return nil, fmt.Errorf("invalid src type %T", src)
		}
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return b, nil
}

// Line returns the source at the given row (line number -1), without the
// trailing newline. Returns an empty string for rows out of range, which
// happens for positions synthesized outside the file, eg. builtins.
func (f *File) Line(row int) string {
	if row < 0 || row >= len(f.Lines) {
		return ""
	}

	offset := f.Lines[row]
	end := util.FindEndOfLine(f.Src, offset)
	return string(f.Src[offset : end+1])
}

func getLines(src []byte) []int {
	lines := []int{}
	if len(src) == 0 {
		return lines
	}

	lines = append(lines, 0)
	for i, c := range src {
		if c == '\n' && i+1 < len(src) {
			lines = append(lines, i+1)
		}
	}

	return lines
}
