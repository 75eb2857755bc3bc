package launch

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/aditiapratama/RadeonProRenderBlenderAddon/config"
	"github.com/aditiapratama/RadeonProRenderBlenderAddon/local"
	"github.com/aditiapratama/RadeonProRenderBlenderAddon/tui"
	"github.com/aditiapratama/RadeonProRenderBlenderAddon/util"
)

// BlenderExeEnvVar names the environment variable holding the path to the
// Blender executable the test scripts run under. Presence is tested by
// value only; the path is never checked against the filesystem.
const BlenderExeEnvVar = "BLENDER_28_EXE"

// Script names inside the configured scripts directory, passed to Blender
// as its two positional arguments, in this order.
const (
	runnerScriptName = "run_blender.py"
	testScriptName   = "test_rpr.py"
)

// Exit codes returned by Run.
const (
	// ExitOK means the invocation was attempted and the user acknowledged
	// the pause. The child's own exit status does not influence this.
	ExitOK = 0
	// ExitMissingConfig means the environment variable was unset or empty.
	ExitMissingConfig = 1
)

// Runner starts the external executable with the given arguments and
// blocks until it exits. The returned error reports only whether the
// process could be started and waited on; the launcher discards it
// either way (see Launcher.Run).
type Runner interface {
	Run(exe string, args ...string) error
}

// WaitFunc blocks until the user acknowledges the pause, typically by
// pressing a key. Tests substitute a no-op.
type WaitFunc func() error

// Options configures a Launcher. Zero-value capability fields are filled
// with production defaults by New.
type Options struct {
	// BlenderExe is the value of BlenderExeEnvVar, read once at startup.
	// Empty means unset.
	BlenderExe string

	// Config supplies the scripts and builds directories.
	Config config.Config

	// Out receives the launcher's own console output (not the child's).
	Out io.Writer

	// Runner invokes the child process.
	Runner Runner

	// Wait blocks for the user acknowledgment after the invocation.
	Wait WaitFunc
}

// Launcher runs Blender with the bundled runner and test scripts.
type Launcher struct {
	opts Options
}

// New creates a Launcher, filling in production defaults for any
// capability left unset in opts.
func New(opts Options) *Launcher {
	if opts.Config.ScriptsDir == "" {
		opts.Config.ScriptsDir = config.DefaultScriptsDir
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Runner == nil {
		opts.Runner = ConsoleRunner{}
	}
	if opts.Wait == nil {
		opts.Wait = tui.WaitForKey
	}
	return &Launcher{opts: opts}
}

// Run executes the launcher and returns its process exit code.
//
// With the environment variable set, it invokes the executable with the
// runner and test scripts, waits for the child to exit, then blocks for a
// keypress so the console output stays readable. Without it, it prints
// instructions (plus any installed builds it can suggest) and returns
// ExitMissingConfig without spawning anything.
func (l *Launcher) Run() int {
	if l.opts.BlenderExe == "" {
		l.printMissingExe()
		return ExitMissingConfig
	}

	runnerScript := filepath.Join(l.opts.Config.ScriptsDir, runnerScriptName)
	testScript := filepath.Join(l.opts.Config.ScriptsDir, testScriptName)

	// The child's outcome is discarded on purpose. Failures surface
	// through the inherited console streams, and the pause below keeps
	// them on screen for the user to read.
	_ = l.opts.Runner.Run(l.opts.BlenderExe, runnerScript, testScript)

	if err := l.opts.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error waiting for acknowledgment: %v\n", err)
	}

	return ExitOK
}

// printMissingExe writes the missing-variable diagnostic. If installed
// builds can be found under the configured builds directory, their
// executables are listed as candidate values for the variable.
func (l *Launcher) printMissingExe() {
	out := l.opts.Out

	fmt.Fprintf(out, "%s is not set.\n", BlenderExeEnvVar)
	fmt.Fprintf(out, "Set it to the path of the Blender executable to run the tests under, e.g.:\n")
	fmt.Fprintf(out, "    export %s=/path/to/blender\n", BlenderExeEnvVar)

	builds, err := local.ScanLocalBuilds(l.opts.Config.BuildsDir)
	if err != nil || len(builds) == 0 {
		return
	}

	fmt.Fprintf(out, "\nBlender builds found under %s:\n", l.opts.Config.BuildsDir)
	for _, build := range builds {
		if build.Executable == "" {
			continue
		}
		fmt.Fprintf(out, "    %-8s %-10s %10s  %s\n",
			build.Version, build.ReleaseCycle, util.FormatSize(build.Size), build.Executable)
	}
}

// ConsoleRunner invokes the executable in the current console, wiring the
// child to the launcher's own standard streams so tracebacks from the
// scripts land in front of the user.
type ConsoleRunner struct{}

// Run implements Runner.
func (ConsoleRunner) Run(exe string, args ...string) error {
	cmd := exec.Command(exe, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error running %s: %w", exe, err)
	}
	return nil
}
