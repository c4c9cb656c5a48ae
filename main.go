package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// scenesDir is where YAML scene descriptions are discovered
const scenesDir = "scenes"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "whitted",
		Short:        "Whitted-style recursive ray tracer",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCommand(), newListCommand())
	return root
}

type renderOptions struct {
	scene      string
	output     string
	workers    int
	bandHeight int
	aliasing   int
	reflection int
}

func newRenderCommand() *cobra.Command {
	defaults := renderer.DefaultConfig()
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a built-in scene or a YAML scene description",
		Long: "Render a scene to an image file. The scene is a built-in name, the name of a\n" +
			"YAML file in the scenes/ directory, or a path to a YAML file. The output format\n" +
			"is chosen from the file extension (.png, .jpg, .bmp, .tiff).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runRender(ctx, cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.scene, "scene", "default", "Scene name or path to a YAML scene")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file (default output/<scene>/render_<timestamp>.png)")
	flags.IntVar(&opts.workers, "workers", defaults.NumWorkers, "Number of parallel workers (0 = auto-detect)")
	flags.IntVar(&opts.bandHeight, "band-height", defaults.BandHeight, "Rows per unit of work")
	flags.IntVar(&opts.aliasing, "aliasing", 1, "Override the scene's aliasing limit (samples per pixel axis)")
	flags.IntVar(&opts.reflection, "reflection", 0, "Override the scene's reflection limit (recursion depth)")

	return cmd
}

func runRender(ctx context.Context, cmd *cobra.Command, opts renderOptions) error {
	logger := core.NewDefaultLogger(cmd.ErrOrStderr())

	selected, err := createScene(opts.scene)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("aliasing") || flags.Changed("reflection") {
		settings := selected.Settings()
		aliasing, reflection := settings.AliasingLimit, settings.ReflectionLimit
		if flags.Changed("aliasing") {
			aliasing = opts.aliasing
		}
		if flags.Changed("reflection") {
			reflection = opts.reflection
		}
		if selected, err = selected.WithLimits(aliasing, reflection); err != nil {
			return err
		}
	}

	output := opts.output
	if output == "" {
		timestamp := time.Now().Format("20060102_150405")
		output = filepath.Join("output", sceneSlug(opts.scene), fmt.Sprintf("render_%s.png", timestamp))
	}
	if _, err := renderer.FormatFromPath(output); err != nil {
		return err
	}

	config := renderer.Config{NumWorkers: opts.workers, BandHeight: opts.bandHeight}
	frame, _, err := renderer.Render(ctx, selected, config, logger)
	if err != nil {
		return err
	}

	if err := renderer.SaveImage(output, frame); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Render saved as %s\n", output)
	return nil
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and discovered scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenes, err := scene.ListAllScenes(scenesDir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, info := range scenes {
				fmt.Fprintf(out, "  %-16s %-8s %s", info.ID, info.Type, info.Name)
				if info.Description != "" {
					fmt.Fprintf(out, " - %s", info.Description)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

// createScene resolves a scene by built-in name, discovered YAML name or YAML file path
func createScene(name string) (*scene.Scene, error) {
	switch name {
	case "":
		return nil, fmt.Errorf("scene name is required")
	case "default":
		return scene.NewDefaultScene()
	case "spheregrid":
		return scene.NewSphereGridScene(10)
	}

	if ext := strings.ToLower(filepath.Ext(name)); ext == ".yaml" || ext == ".yml" {
		return loaders.LoadScene(name)
	}

	info, found, err := scene.FindScene(scenesDir, name)
	if err != nil {
		return nil, err
	}
	if !found || info.Type != "yaml" {
		return nil, fmt.Errorf("unknown scene %q (run 'whitted list' to see available scenes)", name)
	}
	return loaders.LoadScene(info.FilePath)
}

// sceneSlug turns a scene name or path into a directory name for default output paths
func sceneSlug(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
