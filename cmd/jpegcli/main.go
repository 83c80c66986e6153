package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/retroenv/retrogolib/log"

	"github.com/yegorkir/jpegcli/internal/common"
	"github.com/yegorkir/jpegcli/internal/compress"
	"github.com/yegorkir/jpegcli/internal/decompress"
)

type cli struct {
	Backend  string           `enum:"native,mozjpeg" default:"native" help:"Codec backend (${enum})."`
	LogLevel string           `enum:"info,debug" default:"info" name:"log-level" help:"Log level (${enum})."`
	Version  kong.VersionFlag `help:"Print version and exit."`

	Compress struct {
		Args []string `arg:"" optional:"" passthrough:"" help:"cjpeg switches followed by the input and output files."`
	} `cmd:"" aliases:"c" passthrough:"" help:"Compress an image file to JPEG."`

	Decompress struct {
		Args []string `arg:"" optional:"" passthrough:"" help:"djpeg switches followed by the input and output files."`
	} `cmd:"" aliases:"d" passthrough:"" help:"Decompress a JPEG file to BMP, GIF or PNM."`
}

func main() {
	var (
		c    cli
		errS string
		kctx = kong.Parse(&c,
			kong.Name("jpegcli"),
			kong.Description("Portable JPEG compress/decompress front end."),
			kong.Vars{"version": common.Version},
		)
	)

	cfg := log.DefaultConfig()
	if c.LogLevel == "debug" {
		cfg.Level = log.DebugLevel
	}
	logger := log.NewWithConfig(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch kctx.Command() {
	case "compress", "compress <args>":
		opt := compress.Options{Backend: compress.Backend(c.Backend), Logger: logger}
		if err := compress.Run(ctx, c.Compress.Args, opt); err != nil {
			errS = err.Error()
		}
	case "decompress", "decompress <args>":
		opt := decompress.Options{Backend: decompress.Backend(c.Backend), Logger: logger}
		if err := decompress.Run(ctx, c.Decompress.Args, opt); err != nil {
			errS = err.Error()
		}
	default:
		errS = fmt.Sprintf("unknown command '%s'", kctx.Command())
	}

	if errS != "" {
		stop()
		fmt.Fprintf(os.Stderr, "jpegcli: %s\n", errS)
		os.Exit(1)
	}
}
