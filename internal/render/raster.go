package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"

	"github.com/AlessandroVioli/WinterOlympics-lib/internal/store"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"
)

const (
	// gridCells is the resolution of the density accumulation grid.
	gridCells = 64

	// kernelRadius is the splat radius in grid cells.
	kernelRadius = 2
)

// DensityImage renders the point density of the store as a WebP raster of
// size x size pixels. Points are splatted onto a coarse grid with a radial
// falloff kernel, then upscaled with CatmullRom interpolation.
func DensityImage(s *store.Store, path string, size int) error {
	if size <= 0 {
		size = 512
	}

	grid := splat(s)

	// Normalize and colorize the grid
	maxVal := 0.0
	for i := range grid {
		if grid[i] > maxVal {
			maxVal = grid[i]
		}
	}

	small := image.NewRGBA(image.Rect(0, 0, gridCells, gridCells))
	if maxVal > 0 {
		for y := 0; y < gridCells; y++ {
			for x := 0; x < gridCells; x++ {
				t := grid[y*gridCells+x] / maxVal
				if t <= 0 {
					continue
				}
				small.SetRGBA(x, y, heatColor(t))
			}
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Over, nil)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := webp.Encode(f, dst, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return err
	}

	log.Info().
		Str("path", path).
		Int("size", size).
		Int("points", s.Len()).
		Msg("Density image saved")

	return nil
}

// splat accumulates per-cell intensity over the store bounding box.
func splat(s *store.Store) []float64 {
	grid := make([]float64, gridCells*gridCells)
	if s.Len() == 0 {
		return grid
	}

	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	for _, f := range s.Features() {
		minLat = math.Min(minLat, f.Lat())
		maxLat = math.Max(maxLat, f.Lat())
		minLon = math.Min(minLon, f.Lon())
		maxLon = math.Max(maxLon, f.Lon())
	}

	// Avoid a degenerate box when all points coincide
	latSpan := maxLat - minLat
	if latSpan == 0 {
		latSpan = 0.01
	}
	lonSpan := maxLon - minLon
	if lonSpan == 0 {
		lonSpan = 0.01
	}

	for _, f := range s.Features() {
		// Raster rows run top-down, latitude runs bottom-up
		cx := int((f.Lon() - minLon) / lonSpan * (gridCells - 1))
		cy := int((maxLat - f.Lat()) / latSpan * (gridCells - 1))

		for dy := -kernelRadius; dy <= kernelRadius; dy++ {
			for dx := -kernelRadius; dx <= kernelRadius; dx++ {
				x, y := cx+dx, cy+dy
				if x < 0 || x >= gridCells || y < 0 || y >= gridCells {
					continue
				}
				d2 := float64(dx*dx + dy*dy)
				grid[y*gridCells+x] += 1.0 / (1.0 + d2)
			}
		}
	}

	return grid
}

// heatColor maps a normalized intensity to a blue-to-red ramp.
func heatColor(t float64) color.RGBA {
	return color.RGBA{
		R: uint8(255 * t),
		G: uint8(64 * t),
		B: uint8(255 * (1 - t)),
		A: uint8(80 + 175*t),
	}
}
