package cli

import "fmt"

// versionTemplate renders --version output. Build info is read when the
// template is built, so it must be refreshed after SetVersion.
func versionTemplate(app *App) string {
	version := app.versionInfo.Version
	commit := app.versionInfo.Commit
	date := app.versionInfo.Date

	// Use default values if not set
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if date == "" {
		date = "unknown"
	}

	return fmt.Sprintf("renovate-run version %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}
