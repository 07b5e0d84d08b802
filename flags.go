package main

import (
	"flag"

	"maze/internal/config"
)

// Command-line flags. Flags that are not given on the command line leave the
// config file value untouched.
var (
	configPathFlag = flag.String("config", "", "path to a TOML config file")

	// fovDegreesFlag adjusts the horizontal field of view.
	fovDegreesFlag = flag.Float64("fov-deg", 60, "horizontal field of view (degrees)")

	fullscreenFlag = flag.Bool("fullscreen", false, "start in fullscreen mode")

	// scaleFlag multiplies the logical screen size to get the window size.
	scaleFlag = flag.Int("scale", 3, "window scale factor")

	// debugFlag enables the FPS and pose overlay.
	debugFlag = flag.Bool("debug", false, "show FPS, pose, and ray overlay")

	minimapFlag = flag.Bool("minimap", false, "draw the map overview in the corner")

	// generateMapFlag replaces the built-in maze with a procedural one.
	generateMapFlag = flag.Bool("generate-map", false, "generate a random enclosed map instead of the built-in maze")

	seedFlag = flag.Int64("seed", 0, "seed for -generate-map (0 picks one from the clock)")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly for 15s while capturing default.pgo")
)

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fov-deg":
			cfg.Camera.FOVDegrees = *fovDegreesFlag
		case "fullscreen":
			cfg.Screen.Fullscreen = *fullscreenFlag
		case "scale":
			cfg.Screen.Scale = *scaleFlag
		case "minimap":
			cfg.Render.Minimap = *minimapFlag
		case "generate-map":
			if *generateMapFlag {
				cfg.Map.Source = config.SourceGenerated
			} else {
				cfg.Map.Source = config.SourceBuiltin
			}
		case "seed":
			cfg.Map.Seed = *seedFlag
		}
	})
}
