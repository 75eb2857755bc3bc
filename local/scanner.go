package local

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	version "github.com/hashicorp/go-version"

	"github.com/aditiapratama/RadeonProRenderBlenderAddon/model"
)

const versionMetaFilename = "version.json"

// ReadBuildInfo reads build information from version.json in the given directory.
// Returns nil if version.json does not exist.
func ReadBuildInfo(dirPath string) (*model.BlenderBuild, error) {
	metaPath := filepath.Join(dirPath, versionMetaFilename)
	data, err := os.ReadFile(metaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", metaPath, err)
	}

	var build model.BlenderBuild
	if err := json.Unmarshal(data, &build); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", metaPath, err)
	}
	build.DirName = filepath.Base(dirPath)
	build.Executable = findBlenderExecutable(dirPath)
	return &build, nil
}

// ScanLocalBuilds scans the builds directory for installed Blender builds
// using version.json. Results are sorted newest version first.
func ScanLocalBuilds(buildsDir string) ([]model.BlenderBuild, error) {
	var localBuilds []model.BlenderBuild
	entries, err := os.ReadDir(buildsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return localBuilds, nil
		}
		return nil, fmt.Errorf("failed to read builds directory %s: %w", buildsDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			dirPath := filepath.Join(buildsDir, entry.Name())
			buildInfo, err := ReadBuildInfo(dirPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error processing directory %s: %v\n", dirPath, err)
				continue
			}
			if buildInfo != nil {
				localBuilds = append(localBuilds, *buildInfo)
			}
		}
	}

	sort.Slice(localBuilds, func(i, j int) bool {
		vi, errI := version.NewVersion(localBuilds[i].Version)
		vj, errJ := version.NewVersion(localBuilds[j].Version)
		if errI != nil || errJ != nil {
			// Unparseable versions fall back to a plain string compare
			return localBuilds[i].Version > localBuilds[j].Version
		}
		return vi.GreaterThan(vj)
	})

	return localBuilds, nil
}

// findBlenderExecutable locates the Blender executable in the installation directory.
func findBlenderExecutable(installDir string) string {
	var candidates []string
	switch runtime.GOOS {
	case "windows":
		candidates = []string{
			filepath.Join(installDir, "blender-launcher.exe"),
			filepath.Join(installDir, "blender.exe"),
		}
	case "darwin":
		candidates = []string{
			filepath.Join(installDir, "Blender.app", "Contents", "MacOS", "Blender"),
			filepath.Join(installDir, "blender"),
		}
	default:
		candidates = []string{filepath.Join(installDir, "blender")}
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
