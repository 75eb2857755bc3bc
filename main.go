package main

import (
	"fmt"
	"os"

	"github.com/aditiapratama/RadeonProRenderBlenderAddon/config"
	"github.com/aditiapratama/RadeonProRenderBlenderAddon/launch"
)

func main() {
	// Load configuration (defaults are returned if no config file exists)
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The Blender executable comes exclusively from the environment.
	// It is read exactly once, here, and passed in as plain data.
	l := launch.New(launch.Options{
		BlenderExe: os.Getenv(launch.BlenderExeEnvVar),
		Config:     cfg,
	})

	os.Exit(l.Run())
}
