package svg2png

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleSVG draws a 30x40 rectangle at (10, 20) on a 100x100 page.
const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100">
  <rect x="10" y="20" width="30" height="40" fill="#ff0000"/>
</svg>`

const emptySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="50" height="50" viewBox="0 0 50 50"></svg>`

func writeSVG(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNative_ShouldCropToDrawing(t *testing.T) {
	dir := t.TempDir()
	in := writeSVG(t, dir, "rect.svg", sampleSVG)
	out := filepath.Join(dir, "rect.png")

	require.NoError(t, Native{}.Render(context.Background(), in, out, "96"))

	img, err := imaging.Open(out)
	require.NoError(t, err)
	assert.InDelta(t, 30, img.Bounds().Dx(), 2)
	assert.InDelta(t, 40, img.Bounds().Dy(), 2)
}

func TestNative_ShouldScaleWithDPI(t *testing.T) {
	dir := t.TempDir()
	in := writeSVG(t, dir, "rect.svg", sampleSVG)
	out := filepath.Join(dir, "rect.png")

	require.NoError(t, Native{}.Render(context.Background(), in, out, "192"))

	img, err := imaging.Open(out)
	require.NoError(t, err)
	assert.InDelta(t, 60, img.Bounds().Dx(), 2)
	assert.InDelta(t, 80, img.Bounds().Dy(), 2)
}

func TestNative_EmptyDrawingFails(t *testing.T) {
	dir := t.TempDir()
	in := writeSVG(t, dir, "empty.svg", emptySVG)

	err := Native{}.Render(context.Background(), in, filepath.Join(dir, "empty.png"), "96")
	assert.ErrorIs(t, err, errEmptyDrawing)
}

func TestNative_MissingInputFails(t *testing.T) {
	dir := t.TempDir()
	err := Native{}.Render(context.Background(), filepath.Join(dir, "nope.svg"), filepath.Join(dir, "nope.png"), "96")
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "nope.png"))
}

func TestNative_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	in := writeSVG(t, dir, "rect.svg", sampleSVG)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Native{}.Render(ctx, in, filepath.Join(dir, "rect.png"), "96")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNative_HugeDPIFails(t *testing.T) {
	dir := t.TempDir()
	in := writeSVG(t, dir, "rect.svg", sampleSVG)
	out := filepath.Join(dir, "rect.png")

	for _, dpi := range []string{"3840000000", "1e300"} {
		var err error
		assert.NotPanics(t, func() {
			err = Native{}.Render(context.Background(), in, out, dpi)
		}, dpi)
		assert.Error(t, err, dpi)
		assert.NoFileExists(t, out)
	}
}

func TestRasterize_RejectsOverflowingScale(t *testing.T) {
	f, err := os.Open(writeSVG(t, t.TempDir(), "rect.svg", sampleSVG))
	require.NoError(t, err)
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	require.NoError(t, err)

	// Each side fits on its own, the product does not.
	_, err = rasterize(icon, float64(maxPixels)/100)
	assert.Error(t, err)
}
