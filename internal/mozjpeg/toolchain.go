package mozjpeg

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Version names the cache directory extracted toolchains live in.
const Version = "mozjpeg-4.1.4"

var ErrNotFound = errors.New("mozjpeg: toolchain not found")

// Toolchain holds the paths of the external codec binaries.
type Toolchain struct {
	CJPEG    string
	DJPEG    string
	JPEGTran string
}

// Locate finds cjpeg and djpeg. JPEGCLI_MOZJPEG_DIR names a directory that
// holds them; JPEGCLI_MOZJPEG_ARCHIVE names a .tar.gz that is unpacked
// into the user cache once; otherwise both are looked up on $PATH.
func Locate(ctx context.Context) (*Toolchain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if dir := os.Getenv("JPEGCLI_MOZJPEG_DIR"); dir != "" {
		return fromDir(dir)
	}

	if archive := os.Getenv("JPEGCLI_MOZJPEG_ARCHIVE"); archive != "" {
		data, err := os.ReadFile(archive)
		if err != nil {
			return nil, fmt.Errorf("read toolchain archive: %w", err)
		}
		cacheRoot, err := cacheDir()
		if err != nil {
			return nil, err
		}
		target := filepath.Join(cacheRoot, Version, runtime.GOOS+"-"+runtime.GOARCH)
		if err := ensureExtracted(target, data); err != nil {
			return nil, err
		}
		return fromDir(target)
	}

	cjpeg, err := exec.LookPath("cjpeg")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	djpeg, err := exec.LookPath("djpeg")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	tc := &Toolchain{CJPEG: cjpeg, DJPEG: djpeg}
	if p, err := exec.LookPath("jpegtran"); err == nil {
		tc.JPEGTran = p
	}
	return tc, nil
}

func fromDir(dir string) (*Toolchain, error) {
	tc := &Toolchain{
		CJPEG:    filepath.Join(dir, "cjpeg"),
		DJPEG:    filepath.Join(dir, "djpeg"),
		JPEGTran: filepath.Join(dir, "jpegtran"),
	}
	for _, p := range []string{tc.CJPEG, tc.DJPEG} {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
	}
	return tc, nil
}

func cacheDir() (string, error) {
	if dir := os.Getenv("JPEGCLI_CACHE_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "jpegcli"), nil
}

func ensureExtracted(dest string, archive []byte) error {
	if stat, err := os.Stat(filepath.Join(dest, ".ready")); err == nil && !stat.IsDir() {
		return nil
	}

	if err := os.RemoveAll(dest); err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}

	if err := untar(bytes.NewReader(archive), dest); err != nil {
		return err
	}

	sentinel := filepath.Join(dest, ".ready")
	return os.WriteFile(sentinel, []byte("ok"), 0o644)
}

func untar(r io.Reader, dest string) error {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("init gzip: %w", err)
	}
	defer gr.Close()

	tr := tar.NewReader(gr)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read tar: %w", err)
		}

		name := filepath.Clean(hdr.Name)
		if strings.Contains(name, "..") {
			return fmt.Errorf("unsafe path in archive: %q", hdr.Name)
		}
		target := filepath.Join(dest, name)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(hdr.Mode)); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(hdr.Mode))
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return err
			}
			out.Close()
		default:
			continue
		}
	}
	return nil
}
