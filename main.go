package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

// options holds the parsed command line
type options struct {
	saveTo       string
	sceneName    string
	sceneConfig  scene.SceneConfig
	renderConfig renderer.RenderConfig
	listScenes   bool
	help         bool
}

var errMissingOutput = errors.New("missing required flag -save-to")

func parseOptions(args []string, output io.Writer) (options, *flag.FlagSet, error) {
	opts := options{
		sceneConfig:  scene.DefaultSceneConfig(),
		renderConfig: renderer.DefaultRenderConfig(),
	}

	fs := flag.NewFlagSet("raymarcher", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.saveTo, "save-to", "", "Output image path (.bmp or .png)")
	fs.Float64Var(&opts.sceneConfig.CameraDistance, "distance-to-camera", opts.sceneConfig.CameraDistance, "Distance from the camera to the screen")
	fs.Float64Var(&opts.sceneConfig.CameraZ, "camera-position-z", opts.sceneConfig.CameraZ, "Camera position along Z")
	fs.IntVar(&opts.sceneConfig.Width, "image-width", opts.sceneConfig.Width, "Image width in pixels")
	fs.IntVar(&opts.sceneConfig.Height, "image-height", opts.sceneConfig.Height, "Image height in pixels")
	fs.IntVar(&opts.renderConfig.NumWorkers, "threads", opts.renderConfig.NumWorkers, "Number of render workers")
	fs.BoolVar(&opts.renderConfig.Antialiasing, "antialiasing", opts.renderConfig.Antialiasing, "Average four samples per pixel")
	fs.StringVar(&opts.sceneName, "scene", "default", "Scene to render: 'default' or 'sphere'")
	fs.BoolVar(&opts.listScenes, "list-scenes", false, "List the built-in scenes and exit")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	if !opts.help && !opts.listScenes && opts.saveTo == "" {
		return opts, fs, errMissingOutput
	}
	return opts, fs, nil
}

func printHelp(fs *flag.FlagSet, output io.Writer) {
	fmt.Fprintln(output, "SDF Raymarcher")
	fmt.Fprintln(output, "Usage: raymarcher -save-to <file> [options]")
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(output)
	printScenes(output)
}

func printScenes(output io.Writer) {
	fmt.Fprintln(output, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(output, "  %-8s - %s\n", info.ID, info.Description)
	}
}

// run renders the selected scene and writes it to disk
func run(args []string, output io.Writer, logger core.Logger) error {
	opts, fs, err := parseOptions(args, output)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.help {
		printHelp(fs, output)
		return nil
	}
	if opts.listScenes {
		printScenes(output)
		return nil
	}

	s, err := scene.NewSceneByName(opts.sceneName, opts.sceneConfig)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	s.SetLogger(logger)

	startTime := time.Now()
	stats, err := s.Render(opts.renderConfig)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Render completed in %v (%d pixels, %.1f samples per pixel, %d chunks)\n",
		time.Since(startTime), stats.TotalPixels, stats.AverageSamples, stats.Chunks)

	return s.SaveImage(opts.saveTo)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
