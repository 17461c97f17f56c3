package window

import (
	"fmt"
	"image/color"
	// register the PNG decoder used by ebitenutil.NewImageFromFile.
	_ "image/png"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const strokeWidth = 8

var (
	gridColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	crossColor  = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	circleColor = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	lineColor   = color.RGBA{R: 250, G: 180, B: 0, A: 220}
)

type textures struct {
	board  *ebiten.Image
	cross  *ebiten.Image
	circle *ebiten.Image
}

// loadTextures - loads and pre-scales the board and mark images. Any image
// that cannot be read is generated instead.
func loadTextures(logger *slog.Logger, opts Options) textures {
	boardW, boardH := opts.Layout.BoardWidth(), opts.Layout.BoardHeight()
	markSize := opts.Layout.MarkSize

	return textures{
		board:  loadOrDraw(logger, opts.BoardImage, boardW, boardH, func() *ebiten.Image { return drawBoard(opts) }),
		cross:  loadOrDraw(logger, opts.CrossImage, markSize, markSize, func() *ebiten.Image { return drawCross(markSize) }),
		circle: loadOrDraw(logger, opts.CircleImage, markSize, markSize, func() *ebiten.Image { return drawCircle(markSize) }),
	}
}

func loadOrDraw(logger *slog.Logger, path string, width, height int, draw func() *ebiten.Image) *ebiten.Image {
	if path == "" {
		return draw()
	}

	img, err := loadScaled(path, width, height)
	if err != nil {
		logger.Warn("using generated texture", "path", path, "error", err)
		return draw()
	}

	return img
}

func loadScaled(path string, width, height int) (*ebiten.Image, error) {
	src, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not load image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("image %s is empty", path)
	}

	dst := ebiten.NewImage(width, height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width)/float64(bounds.Dx()), float64(height)/float64(bounds.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)

	return dst, nil
}

func drawBoard(opts Options) *ebiten.Image {
	layout := opts.Layout
	width, height := layout.BoardWidth(), layout.BoardHeight()
	img := ebiten.NewImage(width, height)

	for i := 1; i < 3; i++ {
		x := float32(i * layout.CellWidth)
		y := float32(i * layout.CellHeight)
		vector.StrokeLine(img, x, 4, x, float32(height-4), 4, gridColor, true)
		vector.StrokeLine(img, 4, y, float32(width-4), y, 4, gridColor, true)
	}

	return img
}

func drawCross(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)

	pad := float32(strokeWidth)
	end := float32(size) - pad
	vector.StrokeLine(img, pad, pad, end, end, strokeWidth, crossColor, true)
	vector.StrokeLine(img, end, pad, pad, end, strokeWidth, crossColor, true)

	return img
}

func drawCircle(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)

	center := float32(size) / 2
	vector.StrokeCircle(img, center, center, center-strokeWidth, strokeWidth, circleColor, true)

	return img
}
