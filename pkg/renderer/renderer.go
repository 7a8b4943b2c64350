// Package renderer drives the per-pixel ray march across an image using a
// tile-based worker pool. Every pixel is an independent pure computation, so
// tiles with disjoint bounds write to the shared image without locking.
package renderer

import (
	"image"
	"image/color"

	"github.com/bpodwinski/go-raymarch/pkg/camera"
	"github.com/bpodwinski/go-raymarch/pkg/core"
)

// ShadeResult is one pixel's contribution from a scene's march
type ShadeResult struct {
	Color core.Vec3
	Steps int
	Hit   bool
}

// Scene interface to avoid circular imports with the scene package
type Scene interface {
	Frame(width, height int, time float64) camera.Frame
	Background(ray core.Ray) core.Vec3
	Shade(base core.Vec3, ray core.Ray, time float64) ShadeResult
}

// Config contains rendering configuration
type Config struct {
	TileSize   int // Size of each tile (64x64 recommended)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0,
	}
}

// Renderer renders frames of a scene at given elapsed times
type Renderer struct {
	scene  Scene
	width  int
	height int
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene and output size
func NewRenderer(scene Scene, width, height int, config Config, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	if logger == nil {
		logger = core.NewStdoutLogger()
	}
	return &Renderer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// RenderFrame renders one frame at the given elapsed time
func (r *Renderer) RenderFrame(time float64) (*image.RGBA, RenderStats) {
	frame := r.scene.Frame(r.width, r.height, time)
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	tiles := NewTileGrid(r.width, r.height, r.config.TileSize)

	pool := NewWorkerPool(r, r.config.NumWorkers, len(tiles))
	pool.Start()

	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Frame: frame, Image: img})
	}

	stats := newRenderStats(r.width * r.height)
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.merge(result.Stats)
	}
	pool.Stop()

	stats.finalize()
	return img, stats
}

// renderBounds marches every pixel within bounds and writes the composited
// colors into the shared image. Bounds of concurrent calls never overlap.
func (r *Renderer) renderBounds(frame camera.Frame, bounds image.Rectangle, img *image.RGBA) RenderStats {
	stats := newRenderStats(bounds.Dx() * bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			u, v := frame.PixelUV(x, y)
			ray := frame.RayAt(u, v)

			base := r.scene.Background(ray)
			result := r.scene.Shade(base, ray, frame.Time)

			img.SetRGBA(x, y, vec3ToColor(result.Color))

			stats.TotalSteps += result.Steps
			stats.MaxStepsUsed = max(stats.MaxStepsUsed, result.Steps)
			if result.Hit {
				stats.HitPixels++
			}
		}
	}
	return stats
}

// vec3ToColor converts a Vec3 color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []Tile {
	var tiles []Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}
