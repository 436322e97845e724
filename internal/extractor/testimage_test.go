package extractor

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// writeTextPNG renders text in black on white, scaled up so the bitmap
// font is large enough for tesseract, and returns the file path.
func writeTextPNG(t *testing.T, text string) string {
	t.Helper()

	small := image.NewRGBA(image.Rect(0, 0, 12+7*len(text), 24))
	xdraw.Draw(small, small.Bounds(), &image.Uniform{C: color.White}, image.Point{}, xdraw.Src)

	d := &font.Drawer{
		Dst:  small,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, 17),
	}
	d.DrawString(text)

	const scale = 4
	big := image.NewRGBA(image.Rect(0, 0, small.Bounds().Dx()*scale, small.Bounds().Dy()*scale))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), xdraw.Src, nil)

	path := filepath.Join(t.TempDir(), "text.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, big))

	return path
}

// writeBlankPNG writes an all-white image with nothing to recognize.
func writeBlankPNG(t *testing.T) string {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 120, 60))
	xdraw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, xdraw.Src)

	path := filepath.Join(t.TempDir(), "blank.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))

	return path
}
