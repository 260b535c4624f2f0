package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/display"
	"github.com/df07/go-phong-raytracer/pkg/encoders"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// options holds the command line configuration
type options struct {
	sceneName string
	width     int
	height    int
	format    string
	out       string
	label     string
	intensity bool
	orient    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.sceneName, "scene", "default", "Scene name (see -list)")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.StringVar(&opts.format, "format", "png", "Output format: png, bmp or tiff")
	flag.StringVar(&opts.out, "out", "", "Output file (format taken from the extension)")
	flag.StringVar(&opts.label, "label", "", "Caption drawn along the bottom of the image")
	flag.BoolVar(&opts.intensity, "intensity", false, "Scale diffuse and specular light by light intensity")
	flag.BoolVar(&opts.orient, "orient", false, "Aim the camera at the scene's look-at point")
	help := flag.Bool("help", false, "Show help information")
	list := flag.Bool("list", false, "List available scenes")
	flag.Parse()

	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
		return
	}

	if *list {
		printScenes()
		return
	}

	fmt.Println("Starting Phong Raytracer...")

	filename, err := run(opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// printScenes lists the built-in scenes
func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-8s - %s (%dx%d)\n", info.ID, info.Description, info.Width, info.Height)
	}
}

// run renders the selected scene and writes the image, returning its path
func run(opts options) (string, error) {
	selectedScene, err := createScene(opts.sceneName)
	if err != nil {
		return "", err
	}
	fmt.Printf("Using %s scene...\n", selectedScene.Name)

	if opts.orient {
		selectedScene.Camera.OrientToLookAt = true
	}

	width, height := selectedScene.Width, selectedScene.Height
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}

	filename := opts.out
	if filename == "" {
		format, err := encoders.ParseFormat(opts.format)
		if err != nil {
			return "", err
		}
		outputDir, err := createOutputDir(selectedScene.Name)
		if err != nil {
			return "", err
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, "render_"+timestamp+format.Extension())
	} else if _, err := encoders.FormatFromPath(filename); err != nil {
		return "", err
	}

	raytracer := renderer.NewRaytracer(selectedScene, width, height)
	raytracer.SetLogger(renderer.NewDefaultLogger())
	if opts.intensity {
		raytracer.SetIntegrator(integrator.NewPhongIntegrator(integrator.ShadingConfig{ApplyLightIntensity: true}))
	}

	fb, stats := raytracer.RenderPass()
	fmt.Printf("Hit ratio: %.1f%%, average luminance %.3f\n",
		stats.HitRatio()*100, renderer.CalculateAverageLuminance(fb.Image()))

	if opts.label != "" {
		if err := display.DrawCaption(display.NewFrameDisplay(fb), opts.label); err != nil {
			return "", fmt.Errorf("failed to draw label: %w", err)
		}
	}

	if err := encoders.SaveImage(filename, fb.Image()); err != nil {
		return "", err
	}
	return filename, nil
}

// createScene builds the named scene
func createScene(name string) (*scene.Scene, error) {
	s, err := scene.Create(name)
	if errors.Is(err, scene.ErrUnknownScene) {
		return nil, fmt.Errorf("%w (use -list to see available scenes)", err)
	}
	return s, err
}

// createOutputDir creates output/<scene> and returns its path
func createOutputDir(sceneName string) (string, error) {
	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return outputDir, nil
}
