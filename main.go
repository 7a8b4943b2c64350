package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bpodwinski/go-raymarch/pkg/config"
	"github.com/bpodwinski/go-raymarch/pkg/renderer"
	"github.com/bpodwinski/go-raymarch/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "fireball", "Scene type: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 480, "Image height in pixels")
	frames := flag.Int("frames", 1, "Number of frames to render")
	fps := flag.Float64("fps", 24, "Frames per second of scene time")
	start := flag.Float64("start", 0, "Scene time of the first frame in seconds")
	tuningPath := flag.String("config", "", "Optional TOML tuning file overriding scene constants")
	outputBase := flag.String("output", "output", "Base directory for rendered frames")
	collide := flag.Bool("collide", false, "Set the external collision flag (box scene)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ray Marcher")
		fmt.Println("Usage: raymarch [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  box      - Box overlay tinted by the collision flag")
		fmt.Println("  sphere   - Sphere overlay with rim glow")
		fmt.Println("  plasma   - Cellular plasma sphere (volumetric)")
		fmt.Println("  fireball - FBM fireball with blackbody palette (volumetric)")
		fmt.Println()
		fmt.Println("Output is saved to output/<scene_type>/render_<timestamp>_<frame>.png")
		return
	}

	if err := run(*sceneType, *width, *height, *frames, *fps, *start, *tuningPath, *outputBase, *collide); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType string, width, height, frames int, fps, start float64, tuningPath, outputBase string, collide bool) error {
	tuning := config.Default()
	if tuningPath != "" {
		var err error
		tuning, err = config.Load(tuningPath)
		if err != nil {
			return err
		}
	}

	selectedScene, err := scene.CreateScene(sceneType, tuning)
	if err != nil {
		return err
	}
	if hitScene, ok := selectedScene.(*scene.HitScene); ok && collide {
		hitScene.SetColliding(true)
	}

	outputDir := filepath.Join(outputBase, sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	r := renderer.NewRenderer(selectedScene, width, height, renderer.DefaultConfig(), nil)
	timestamp := time.Now().Format("20060102_150405")

	fmt.Printf("Rendering %d frame(s) of %q at %dx%d...\n", frames, sceneType, width, height)

	step := 0.0
	if fps > 0 {
		step = 1.0 / fps
	}

	for i := 0; i < frames; i++ {
		sceneTime := start + float64(i)*step
		renderStart := time.Now()
		img, stats := r.RenderFrame(sceneTime)

		fmt.Printf("Frame %d (t=%.2fs) rendered in %v: %.1f avg steps/pixel, %d hit pixels\n",
			i, sceneTime, time.Since(renderStart), stats.AverageSteps, stats.HitPixels)

		filename := filepath.Join(outputDir, fmt.Sprintf("render_%s_%03d.png", timestamp, i))
		if err := savePNG(filename, img); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", filename)
	}

	return nil
}

func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return nil
}
