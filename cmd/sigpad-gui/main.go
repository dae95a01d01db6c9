// Command sigpad-gui is an interactive signature pad.
//
// Draw with the primary mouse button. The toolbar clears the pad, opens an
// image onto it, and saves it; the save format follows the file extension.
// Pen settings are read from the sigpad config file.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sigpad"
	"github.com/gogpu/sigpad/config"
	"github.com/gogpu/sigpad/imageio"
)

func main() {
	var (
		width   = flag.Int("width", 600, "pad width")
		height  = flag.Int("height", 200, "pad height")
		verbose = flag.Bool("verbose", false, "log stroke events")
	)
	flag.Parse()

	if *verbose {
		sigpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	penOpts, err := fileCfg.Pen.Options()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	opts := append([]sigpad.Option{sigpad.WithBackgroundColor(color.White)}, penOpts...)

	pad, err := newPadWidget(*width, *height, opts...)
	if err != nil {
		log.Fatalf("failed to create pad: %v", err)
	}

	a := app.New()
	win := a.NewWindow("Signature Pad")

	statusBar := widget.NewLabel("Ready")
	pad.OnStatus = statusBar.SetText

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentClearIcon(), pad.Clear),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
				if err != nil || rc == nil {
					return
				}
				if err := pad.Load(rc); err != nil {
					dialog.ShowError(err, win)
					return
				}
				statusBar.SetText("opened " + rc.URI().Name())
			}, win)
		}),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
				if err != nil || wc == nil {
					return
				}
				f, ferr := imageio.FormatFromPath(wc.URI().Name())
				if ferr != nil {
					f = imageio.PNG
				}
				if err := pad.Save(wc, f); err != nil {
					dialog.ShowError(err, win)
					return
				}
				statusBar.SetText("saved " + wc.URI().Name())
			}, win)
			d.SetFileName("signature.png")
			d.Show()
		}),
	)

	win.SetContent(container.NewBorder(tb, statusBar, nil, nil, pad))
	win.Resize(fyne.NewSize(float32(*width)+40, float32(*height)+100))
	win.ShowAndRun()
}
