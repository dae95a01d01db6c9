package imageio

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFDPI is the resolution at which images are placed on PDF pages.
const PDFDPI = 96

// encodePDF writes a single-page PDF whose page is exactly the size of img
// at PDFDPI, with img embedded as a lossless PNG.
func encodePDF(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	b := img.Bounds()
	wd := float64(b.Dx()) * 72 / PDFDPI
	ht := float64(b.Dy()) * 72 / PDFDPI

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("sigpad", true)
	pdf.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("signature", opt, &buf)
	pdf.ImageOptions("signature", 0, 0, wd, ht, false, opt, 0, "")
	return pdf.Output(w)
}
