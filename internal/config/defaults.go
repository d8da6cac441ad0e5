package config

const (
	DefaultConfigFile = "renovate.json"
	DefaultEnvFile    = "renovate.env"
	DefaultImage      = "docker.io/renovate/renovate:full"
	DefaultEngine     = "docker"
	DefaultLogLevel   = "warn"
)

// DefaultRunConfig returns a RunConfig with all default values applied.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		ConfigFile: DefaultConfigFile,
		EnvFile:    DefaultEnvFile,
		Image:      DefaultImage,
		Engine:     DefaultEngine,
		LogLevel:   DefaultLogLevel,
	}
}
