package svg2png

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/esimov/svg2png/utils"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// userUnitDPI is the resolution of one SVG user unit (CSS pixel).
const userUnitDPI = 96.0

// maxPixels caps the size of the raster canvas allocated by Native.
const maxPixels = 1 << 28

// errEmptyDrawing is returned when an SVG has nothing visible to crop to.
var errEmptyDrawing = errors.New("the drawing has no visible content")

// Native renders in process using oksvg and rasterx. It covers the SVG
// subset supported by oksvg (no text, no filters), which makes it a
// fallback for machines where Inkscape is not installed. Only the viewBox
// is rasterized: content drawn outside of it is clipped, whereas Inkscape
// exports the whole drawing.
type Native struct{}

var _ Renderer = Native{}

// Render rasterizes the SVG viewBox at dpi, crops the result to the
// bounding box of the non-transparent pixels and saves it as PNG.
func (Native) Render(ctx context.Context, in, out, dpi string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := ParseDPI(dpi)
	if err != nil {
		return err
	}

	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("unable to open the source file: %w", err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return fmt.Errorf("unable to parse %s: %w", in, err)
	}

	img, err := rasterize(icon, res/userUnitDPI)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	rect := drawingBounds(img)
	if rect.Empty() {
		return fmt.Errorf("%s: %w", in, errEmptyDrawing)
	}

	if err := imaging.Save(imaging.Crop(img, rect), out); err != nil {
		return fmt.Errorf("unable to save the destination file: %w", err)
	}
	return nil
}

// rasterize draws the icon on a transparent canvas scaled by scale.
func rasterize(icon *oksvg.SvgIcon, scale float64) (*image.RGBA, error) {
	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		return nil, fmt.Errorf("invalid viewBox size %vx%v", vw, vh)
	}
	fw, fh := math.Ceil(vw*scale), math.Ceil(vh*scale)
	// Both sides are bounded before the int conversion so the product can't overflow.
	if !(fw >= 1 && fh >= 1 && fw <= maxPixels && fh <= maxPixels) {
		return nil, fmt.Errorf("unsupported raster size %vx%v", fw, fh)
	}
	w, h := int(fw), int(fh)
	if w > maxPixels/h {
		return nil, fmt.Errorf("unsupported raster size %dx%d", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)

	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(raster, 1.0)

	return img, nil
}

// drawingBounds returns the smallest rectangle holding every pixel with a
// non-zero alpha. The rectangle is empty if the image is fully transparent.
func drawingBounds(img *image.RGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y
	found := false

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// alpha is the last byte of each RGBA quadruplet
			if img.Pix[img.PixOffset(x, y)+3] == 0 {
				continue
			}
			found = true
			minX, minY = utils.Min(minX, x), utils.Min(minY, y)
			maxX, maxY = utils.Max(maxX, x+1), utils.Max(maxY, y+1)
		}
	}
	if !found {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}
