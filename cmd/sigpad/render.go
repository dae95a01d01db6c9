package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/sigpad"
	"github.com/gogpu/sigpad/config"
	"github.com/gogpu/sigpad/imageio"
	"github.com/gogpu/sigpad/surface"
)

const (
	defaultWidth  = 600
	defaultHeight = 200
	defaultPen    = "black"
	defaultBg     = "white"
)

type renderFlags struct {
	output     string
	format     string
	width      int
	height     int
	backend    string
	minWidth   float64
	maxWidth   float64
	dotSize    float64
	weight     float64
	pen        string
	background string
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render [samples]",
		Short: "Render a sample file (or stdin) to an image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			f.applyConfig(cmd, fileCfg)
			return runRender(cmd, args, f)
		},
	}
	f.addFlags(cmd)
	return cmd
}

func (f *renderFlags) addFlags(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "output file (default: signature-<uuid>.<ext>)")
	fl.StringVarP(&f.format, "format", "f", "", "output format (default: from output extension, else png)")
	fl.IntVar(&f.width, "width", defaultWidth, "surface width in pixels")
	fl.IntVar(&f.height, "height", defaultHeight, "surface height in pixels")
	fl.StringVar(&f.backend, "backend", "", "surface backend (default: highest priority)")
	fl.Float64Var(&f.minWidth, "min-width", sigpad.DefaultMinWidth, "minimum stroke width")
	fl.Float64Var(&f.maxWidth, "max-width", sigpad.DefaultMaxWidth, "maximum stroke width")
	fl.Float64Var(&f.dotSize, "dot-size", 0, "tap dot radius (0: midpoint of widths)")
	fl.Float64Var(&f.weight, "weight", sigpad.DefaultVelocityFilterWeight, "velocity filter weight (0-1)")
	fl.StringVar(&f.pen, "pen", defaultPen, "pen color")
	fl.StringVar(&f.background, "background", defaultBg, "background color")
}

func (f *renderFlags) applyConfig(cmd *cobra.Command, cfg config.FileConfig) {
	applyFloatConfig(cmd, "min-width", &f.minWidth, cfg.Pen.MinWidth)
	applyFloatConfig(cmd, "max-width", &f.maxWidth, cfg.Pen.MaxWidth)
	applyFloatConfig(cmd, "dot-size", &f.dotSize, cfg.Pen.DotSize)
	applyFloatConfig(cmd, "weight", &f.weight, cfg.Pen.Weight)
	applyStringConfig(cmd, "pen", &f.pen, cfg.Pen.Color)
	applyStringConfig(cmd, "background", &f.background, cfg.Pen.Background)
	applyIntConfig(cmd, "width", &f.width, cfg.Output.Width)
	applyIntConfig(cmd, "height", &f.height, cfg.Output.Height)
	applyStringConfig(cmd, "format", &f.format, cfg.Output.Format)
	applyStringConfig(cmd, "backend", &f.backend, cfg.Output.Backend)
}

// options converts the flag values to pad options.
func (f *renderFlags) options() ([]sigpad.Option, error) {
	pen, err := sigpad.ParseColor(f.pen)
	if err != nil {
		return nil, fmt.Errorf("--pen: %w", err)
	}
	bg, err := sigpad.ParseColor(f.background)
	if err != nil {
		return nil, fmt.Errorf("--background: %w", err)
	}
	opts := []sigpad.Option{
		sigpad.WithMinWidth(f.minWidth),
		sigpad.WithMaxWidth(f.maxWidth),
		sigpad.WithVelocityFilterWeight(f.weight),
		sigpad.WithPenColor(pen),
		sigpad.WithBackgroundColor(bg),
	}
	if f.dotSize > 0 {
		opts = append(opts, sigpad.WithDotSize(sigpad.FixedDotSize(f.dotSize)))
	}
	return opts, nil
}

// resolveOutput picks the output path and format. An explicit format wins
// over the output extension; a missing output gets a unique name.
func (f *renderFlags) resolveOutput() (string, imageio.Format, error) {
	format := imageio.PNG
	switch {
	case f.format != "":
		v, err := imageio.ParseFormat(f.format)
		if err != nil {
			return "", 0, err
		}
		format = v
	case f.output != "":
		if v, err := imageio.FormatFromPath(f.output); err == nil {
			format = v
		}
	}
	out := f.output
	if out == "" {
		out = "signature-" + uuid.NewString() + format.Extension()
	}
	return out, format, nil
}

func runRender(cmd *cobra.Command, args []string, f renderFlags) (err error) {
	opts, err := f.options()
	if err != nil {
		return err
	}
	out, format, err := f.resolveOutput()
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}
	strokes, err := parseStrokes(in)
	if err != nil {
		return fmt.Errorf("failed to read samples: %w", err)
	}

	var s surface.Surface
	if f.backend == "" {
		s, err = surface.Default(f.width, f.height)
	} else {
		s, err = surface.New(f.backend, f.width, f.height)
	}
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.Close())
	}()

	pad, err := sigpad.New(s, opts...)
	if err != nil {
		return err
	}
	if err := replay(pad, strokes); err != nil {
		return err
	}

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := pad.Export(w, format); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	st := pad.Stats()
	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %dx%d): %d strokes, %d points, %d curves, %d stamps, %d dots\n",
		out, format, f.width, f.height,
		len(strokes), countPoints(strokes), st.Curves, st.Stamps, st.Dots)
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
