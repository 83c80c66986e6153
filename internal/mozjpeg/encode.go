package mozjpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
)

// Compress pipes in through cjpeg with the given switches into out.
func Compress(ctx context.Context, tc *Toolchain, args []string, in io.Reader, out io.Writer) error {
	if tc == nil {
		return fmt.Errorf("toolchain is nil")
	}
	return run(ctx, tc.CJPEG, args, in, out)
}

// Decompress pipes in through djpeg with the given switches into out.
func Decompress(ctx context.Context, tc *Toolchain, args []string, in io.Reader, out io.Writer) error {
	if tc == nil {
		return fmt.Errorf("toolchain is nil")
	}
	return run(ctx, tc.DJPEG, args, in, out)
}

func run(ctx context.Context, bin string, args []string, in io.Reader, out io.Writer) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = in
	cmd.Stdout = out
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w (%s)", filepath.Base(bin), err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}
