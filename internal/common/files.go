package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yegorkir/jpegcli/internal/switches"
)

// FileNames picks the input and output file names out of args. fileIndex
// is the index of the first file name reported by the resolver and outfile
// the -outfile value, if any. Without -outfile exactly two names must
// remain; with it exactly one.
func FileNames(args []string, fileIndex int, outfile string) (string, string, error) {
	if fileIndex < 0 || fileIndex >= len(args) {
		return "", "", switches.ErrFileNameCount
	}
	if outfile == "" {
		if fileIndex != len(args)-2 {
			return "", "", fmt.Errorf("%w: got %d file names", switches.ErrFileNameCount, len(args)-fileIndex)
		}
		return args[fileIndex], args[fileIndex+1], nil
	}
	if fileIndex != len(args)-1 {
		return "", "", fmt.Errorf("%w: -outfile given with %d file names", switches.ErrFileNameCount, len(args)-fileIndex)
	}
	return args[fileIndex], outfile, nil
}

// OpenInput opens the input file for reading.
func OpenInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, switches.IOError("open", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, switches.IOError("stat", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, switches.IOError("read", path, fmt.Errorf("%s is a directory", path))
	}
	return f, nil
}

// CreateOutput creates or truncates the output file, making its directory
// if needed.
func CreateOutput(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, switches.IOError("create", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, switches.IOError("create", path, err)
	}
	return f, nil
}

// WriteFile runs fn against a temporary file next to dest and renames it
// into place once fn and the close succeed, so a failed run leaves no
// partial output. It returns the size of the written file.
func WriteFile(dest string, fn func(w io.Writer) error) (int64, error) {
	tmp := dest + ".tmp"
	defer os.Remove(tmp)

	out, err := CreateOutput(tmp)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	if err := fn(out); err != nil {
		return 0, err
	}
	if err := out.Close(); err != nil {
		return 0, switches.IOError("write", dest, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return 0, switches.IOError("rename", dest, err)
	}
	info, err := os.Stat(dest)
	if err != nil {
		return 0, switches.IOError("stat", dest, err)
	}
	return info.Size(), nil
}
