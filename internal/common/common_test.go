package common

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yegorkir/jpegcli/internal/switches"
)

func TestFileNames(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		index   int
		outfile string
		in, out string
		ok      bool
	}{
		{"two names", []string{"-q", "50", "a", "b"}, 2, "", "a", "b", true},
		{"outfile", []string{"-outfile", "o", "a"}, 2, "o", "a", "o", true},
		{"one name", []string{"a"}, 0, "", "", "", false},
		{"three names", []string{"a", "b", "c"}, 0, "", "", "", false},
		{"outfile and two names", []string{"-outfile", "o", "a", "b"}, 2, "o", "", "", false},
		{"no names", []string{"-v"}, switches.NoFile, "", "", "", false},
		{"no names with outfile", []string{"-outfile", "o"}, switches.NoFile, "o", "", "", false},
	}
	for _, tt := range tests {
		in, out, err := FileNames(tt.args, tt.index, tt.outfile)
		if !tt.ok {
			if !errors.Is(err, switches.ErrFileNameCount) {
				t.Errorf("%s: err = %v, want ErrFileNameCount", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if in != tt.in || out != tt.out {
			t.Errorf("%s: got %q, %q", tt.name, in, out)
		}
	}
}

func TestOpenInput(t *testing.T) {
	dir := t.TempDir()
	if _, err := OpenInput(filepath.Join(dir, "missing")); switches.KindOf(err) != switches.KindIOError || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := OpenInput(dir); switches.KindOf(err) != switches.KindIOError {
		t.Errorf("directory: %v", err)
	}

	path := filepath.Join(dir, "in")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := OpenInput(path)
	if err != nil {
		t.Fatalf("OpenInput failed: %v", err)
	}
	f.Close()
}

func TestWriteFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "out.bin")
	size, err := WriteFile(dest, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if size != 5 {
		t.Errorf("size = %d, want 5", size)
	}

	boom := errors.New("boom")
	_, err = WriteFile(dest, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil || string(data) != "hello" {
		t.Errorf("failed write replaced the output: %q, %v", data, err)
	}
	if _, err := os.Stat(dest + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

func TestBanner(t *testing.T) {
	b := Banner("decompress")
	if !strings.Contains(b, "decompress") || !strings.HasSuffix(b, Version) {
		t.Errorf("Banner = %q", b)
	}
}
