// Command sigpad renders recorded pointer samples as a smoothed signature.
//
// Usage:
//
//	sigpad render samples.txt -o signature.png
//	sigpad render --backend gg --pen navy --format pdf < samples.txt
//	sigpad backends
//	sigpad formats
//	sigpad config
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/sigpad"
	"github.com/gogpu/sigpad/config"
	"github.com/gogpu/sigpad/imageio"
	_ "github.com/gogpu/sigpad/recording"         // "record" backend
	"github.com/gogpu/sigpad/surface"
	_ "github.com/gogpu/sigpad/surface/ggsurface" // "gg" backend
)

var verbose bool

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sigpad",
		Short:         "Smooth pointer samples into signature images",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log stroke and curve events to stderr")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newBackendsCmd())
	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sigpad.SetLogger(l)
	gg.SetLogger(l)
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List drawing surface backends by priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range surface.Backends() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List export formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range imageio.Formats() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-5s %-16s %s\n", f, f.MIME(), f.Extension())
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the config file path, creating a template if missing",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# sigpad configuration
# Uncomment a value to enable it. CLI flags override config values.

[pen]
# min-width = %.1f                # Thinnest line, reached at high speed
# max-width = %.1f                # Widest line, reached when slow
# dot-size = 1.5                 # Radius of tap dots (default: midpoint of widths)
# velocity-filter-weight = %.1f   # Weight of the newest velocity sample (0-1)
# color = "black"                # Pen color: name, #rrggbb or rgba(...)
# background = "transparent"     # Background color

[output]
# width = %d
# height = %d
# format = "png"                 # png, jpeg, bmp, tiff or pdf
# backend = ""                   # Surface backend (default: highest priority)
`,
		sigpad.DefaultMinWidth,
		sigpad.DefaultMaxWidth,
		sigpad.DefaultVelocityFilterWeight,
		defaultWidth,
		defaultHeight,
	)
}
