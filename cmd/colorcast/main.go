package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/disintegration/imaging"
	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"

	"go.afab.re/colorcast"
	"go.afab.re/colorcast/glyph"
	"go.afab.re/colorcast/monochrome"
)

type flags struct {
	text     string
	font     string
	size     float64
	dpi      float64
	color    string
	at       string
	center   string
	out      string
	width    int
	height   int
	bg       string
	debug    bool
	logLevel slog.Level
}

func main() {
	var f flags

	root := &cobra.Command{
		Use:   "colorcast [flags] [image]",
		Short: "Draw a two color image or text in a single color",
		Long: `Draw a two color image or text in a single color.

The image (PNG/GIF/JPEG/BMP) is thresholded to black and white, black pixels are drawn in
--color and white pixels are left untouched.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if f.debug || os.Getenv("COLORCAST_LOG_LEVEL") == "debug" {
				f.logLevel = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: f.logLevel})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 1 && f.text != "":
				return fmt.Errorf("can't draw both an image and --text")
			case len(args) == 0 && f.text == "":
				return fmt.Errorf("expected an image or --text")
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return run(path, f)
		},
	}

	root.PersistentFlags().BoolVar(&f.debug, "debug", false, "Debug logging, and stack traces on errors.")

	fl := root.Flags()
	fl.StringVar(&f.text, "text", "", "Draw text instead of an image.")
	fl.StringVar(&f.font, "font", "", "TrueType / OpenType font for --text (default Go Regular).")
	fl.Float64Var(&f.size, "size", 12, "Font size in points.")
	fl.Float64Var(&f.dpi, "dpi", 72, "Font DPI.")
	fl.StringVar(&f.color, "color", "#ffffff", "Color to draw with, as #rrggbb.")
	fl.StringVar(&f.at, "at", "0,0", "Position of the top left corner, as x,y.")
	fl.StringVar(&f.center, "center", "", "Center the image on x,y instead of using --at.")
	fl.StringVar(&f.out, "out", "png:preview.png", "Where to draw: "+outputKinds()+".")
	fl.IntVar(&f.width, "width", 128, "Width of the png output.")
	fl.IntVar(&f.height, "height", 64, "Height of the png output.")
	fl.StringVar(&f.bg, "background", "#000000", "Background of the png output, as #rrggbb.")

	root.AddCommand(&cobra.Command{
		Use:   "outputs",
		Short: "List output kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, kind := range slices.Sorted(maps.Keys(outputs)) {
				fmt.Printf("%s:\t%s\n", kind, outputs[kind].help)
			}
		},
	})

	if err := root.Execute(); err != nil {
		var stack *errors.Error
		if f.debug && errors.As(err, &stack) {
			fmt.Fprintln(os.Stderr, stack.ErrorStack())
		}
		os.Exit(1)
	}
}

func run(path string, f flags) error {
	src, err := source(path, f)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	slog.Debug("source", "size", src.Size())

	c, err := parseColor(f.color)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	pos, err := position(src, f)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	out, err := openOutput(f.out, f)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	defer out.Close()

	slog.Debug("drawing", "out", f.out, "pos", pos, "color", c.Hex())
	if err := out.Draw(src, pos, c); err != nil {
		return errors.WrapPrefix(err, f.out, 0)
	}

	return nil
}

// position of the top left corner of src.
func position(src colorcast.Source, f flags) (image.Point, error) {
	if f.center == "" {
		return parsePoint(f.at)
	}

	center, err := parsePoint(f.center)
	if err != nil {
		return image.Point{}, err
	}
	return colorcast.CenteredRect(center, src.Size()).Min, nil
}

func source(path string, f flags) (colorcast.Source, error) {
	if path != "" {
		img, err := imaging.Open(path, imaging.AutoOrientation(true))
		if err != nil {
			return nil, err
		}
		return monochrome.From(img), nil
	}

	ttf := goregular.TTF
	if f.font != "" {
		var err error
		if ttf, err = os.ReadFile(f.font); err != nil {
			return nil, err
		}
	}

	face, err := glyph.Face(ttf, f.size, f.dpi)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	defer face.Close()

	return glyph.Render(face, f.text), nil
}
