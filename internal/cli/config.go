package cli

import (
	"os"
	"path/filepath"
	"strings"

	kongyaml "github.com/alecthomas/kong-yaml"
)

// ConfigEnv names the environment variable holding a config file path.
const ConfigEnv = "NWBEXT_CONFIG"

var yamlLoader = kongyaml.Loader

// FindUserConfig extracts --config from raw args, falling back to
// NWBEXT_CONFIG. Kong needs config paths before it parses flags.
func FindUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv(ConfigEnv)
}

// ConfigCandidatePaths lists YAML config files in priority order: the user
// path, ./nwbext.yaml, then the per-user config directory.
func ConfigCandidatePaths(userPath string) []string {
	var paths []string
	if userPath != "" {
		paths = append(paths, userPath)
	}
	paths = append(paths, "nwbext.yaml", "nwbext.yml")
	if dir := userConfigDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.yml"))
	}
	return paths
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nwbext")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "nwbext")
	}
	return ""
}
