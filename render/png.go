package render

import (
	"io"
	"os"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/domino14/crossfill/solver"
	"github.com/domino14/crossfill/xword"
)

const (
	cellSize   = 100
	cellBorder = 2
	fontSize   = 80
)

var (
	fontOnce sync.Once
	fontFace font.Face
	fontErr  error
)

// regularFace parses the embedded Go Regular font once. Shipping the font
// in the binary means there is no asset to locate at run time.
func regularFace() (font.Face, error) {
	fontOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			fontErr = err
			return
		}
		fontFace = truetype.NewFace(f, &truetype.Options{Size: fontSize})
	})
	return fontFace, fontErr
}

// WritePNG draws the filled grid as a PNG image: white cells with black
// letters, separated by a black border, on a black canvas. Every cell is
// cellSize pixels square.
func WritePNG(xw *xword.Crossword, a solver.Assignment, w io.Writer) error {
	face, err := regularFace()
	if err != nil {
		return err
	}
	letters := Letters(xw, a)
	dc := gg.NewContext(xw.Width()*cellSize, xw.Height()*cellSize)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetFontFace(face)
	for i := 0; i < xw.Height(); i++ {
		for j := 0; j < xw.Width(); j++ {
			if !xw.Open(i, j) {
				continue
			}
			dc.SetRGB(1, 1, 1)
			dc.DrawRectangle(
				float64(j*cellSize+cellBorder),
				float64(i*cellSize+cellBorder),
				cellSize-2*cellBorder,
				cellSize-2*cellBorder)
			dc.Fill()
			if letters[i][j] != 0 {
				dc.SetRGB(0, 0, 0)
				dc.DrawStringAnchored(string(letters[i][j]),
					float64(j*cellSize)+cellSize/2,
					float64(i*cellSize)+cellSize/2,
					0.5, 0.5)
			}
		}
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the image to a file.
func SavePNG(xw *xword.Crossword, a solver.Assignment, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(xw, a, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
