package container

import (
	"path/filepath"
	"strings"
)

const (
	// InternalConfigDir is where the config file is mounted inside the image.
	InternalConfigDir = "/usr/src/app"

	// ConfigFileEnv tells Renovate which config file to read.
	ConfigFileEnv = "RENOVATE_CONFIG_FILE"

	defaultConfigExt = "json"
)

// RunSpec specifies a single Renovate container run.
type RunSpec struct {
	// ConfigFile is the config path exactly as the user supplied it.
	// Output mentioning the internal path is rewritten to this value.
	ConfigFile string

	// ConfigPath is the absolute host path bind-mounted into the container
	ConfigPath string

	// EnvPath is the absolute host path passed via --env-file
	EnvPath string

	// Image is the container image (e.g., "docker.io/renovate/renovate:full")
	Image string

	// Args are appended after the image and reach Renovate unchanged
	Args []string
}

// InternalConfigPath is the path the config file appears at inside the
// container, e.g. /usr/src/app/config.json5. The extension comes from the
// name the user gave, not from a resolved symlink target.
func (s RunSpec) InternalConfigPath() string {
	if s.ConfigFile != "" {
		return InternalConfigPath(s.ConfigFile)
	}
	return InternalConfigPath(s.ConfigPath)
}

// ConfigExtension returns the text after the last '.' in the base name of
// path, or "json" when the base name has none.
func ConfigExtension(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndex(base, ".")
	if i < 0 || i == len(base)-1 {
		return defaultConfigExt
	}
	return base[i+1:]
}

// InternalConfigPath maps a host config path to its mount point in the container.
func InternalConfigPath(path string) string {
	return InternalConfigDir + "/config." + ConfigExtension(path)
}

// BuildArgs returns the engine arguments for spec, excluding the engine
// binary itself.
func BuildArgs(spec RunSpec) []string {
	internal := spec.InternalConfigPath()

	args := []string{
		"run",
		"--rm",
		"-i",
		"-v", spec.ConfigPath + ":" + internal,
		"-e", ConfigFileEnv + "=" + internal,
		"--env-file", spec.EnvPath,
		spec.Image,
	}

	// Forwarded arguments come last
	return append(args, spec.Args...)
}
