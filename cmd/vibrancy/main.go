// Command vibrancy extracts a color palette from an image and classifies
// it into the six vibrancy roles (primary, light/dark vibrant,
// muted/light-muted/dark-muted), printing the result to stdout.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
	"github.com/willibrandon/mtlog/sinks"
	"github.com/willibrandon/vibrant-go/pkg/config"
	"github.com/willibrandon/vibrant-go/vibrant"
)

func main() {
	var (
		colors    = flag.Int("colors", 0, "number of palette colors to extract before classification (default from config, typically 64)")
		quality   = flag.Int("quality", 0, "downscale quality factor, 1 = exact, higher = faster (default from config, typically 10)")
		debugMode = flag.Bool("debug", false, "enable debug logging")
		fillEmpty = flag.Bool("fill-empty", false, "synthesize missing roles from related ones already found")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vibrancy [-colors N] [-quality Q] [-debug] [-fill-empty] <image-path>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *debugMode {
		cfg.LogLevel = "debug"
	}
	if *colors > 0 {
		cfg.Colors = *colors
	}
	if *quality > 0 {
		cfg.Quality = *quality
	}

	logger := createLogger(cfg.LogLevel)

	path := flag.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		logger.Fatal("Failed to open image {Path}: {Error}", path, err)
		os.Exit(1)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		logger.Fatal("Failed to decode image {Path}: {Error}", path, err)
		os.Exit(1)
	}
	logger.Debug("Decoded {Format} image {Path} ({Width}x{Height})", format, path, img.Bounds().Dx(), img.Bounds().Dy())

	pal, err := vibrant.FromImage(img, cfg.Colors, cfg.Quality, nil)
	if err != nil {
		logger.Fatal("Failed to extract palette: {Error}", err)
		os.Exit(1)
	}
	logger.Information("Extracted {Count} colors from {Path}", len(pal.Swatches), path)

	v := vibrant.NewVibrancy(pal)
	if *fillEmpty {
		v.FillEmpty()
	}

	fmt.Println(v.String())
}

func createLogger(logLevel string) core.Logger {
	sink := sinks.NewConsoleSink()

	var opts []mtlog.Option
	opts = append(opts, mtlog.WithSink(sink))

	switch logLevel {
	case "debug":
		opts = append(opts, mtlog.WithMinimumLevel(core.DebugLevel))
	case "info":
		opts = append(opts, mtlog.WithMinimumLevel(core.InformationLevel))
	case "warn":
		opts = append(opts, mtlog.WithMinimumLevel(core.WarningLevel))
	case "error":
		opts = append(opts, mtlog.WithMinimumLevel(core.ErrorLevel))
	default:
		opts = append(opts, mtlog.WithMinimumLevel(core.InformationLevel))
	}

	return mtlog.New(opts...)
}
