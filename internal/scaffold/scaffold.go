// Package scaffold makes sure the files a Renovate run depends on exist,
// writing starter templates for any that are missing.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMissingPath is returned when an ensure operation is called without a path.
var ErrMissingPath = errors.New("path is required")

// ErrIsDirectory is returned when the path names an existing directory.
var ErrIsDirectory = errors.New("path is a directory")

const (
	dirPerm  = 0755
	filePerm = 0644
)

// EnsureConfigFile makes sure the Renovate config file at path exists,
// creating parent directories and writing ConfigTemplate if it does not.
// It returns the canonical absolute path and whether the file was created.
func EnsureConfigFile(path string) (string, bool, error) {
	return ensureFile(path, ConfigTemplate)
}

// EnsureEnvFile makes sure the env file at path exists, creating parent
// directories and writing EnvTemplate if it does not.
// It returns the canonical absolute path and whether the file was created.
func EnsureEnvFile(path string) (string, bool, error) {
	return ensureFile(path, EnvTemplate)
}

func ensureFile(path, template string) (string, bool, error) {
	if path == "" {
		return "", false, ErrMissingPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, fmt.Errorf("resolve %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(abs), dirPerm); err != nil {
		return "", false, fmt.Errorf("create directory for %s: %w", path, err)
	}

	created, err := writeIfAbsent(abs, template)
	if err != nil {
		return "", false, fmt.Errorf("create %s: %w", path, err)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false, fmt.Errorf("resolve %s: %w", path, err)
	}

	return canonical, created, nil
}

// writeIfAbsent creates path with content unless something already exists
// there. O_EXCL keeps an existing file untouched even if it appears between
// the existence check and the write.
func writeIfAbsent(path, content string) (bool, error) {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return false, ErrIsDirectory
		}
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return false, err
	}
	if err := f.Close(); err != nil {
		return false, err
	}

	return true, nil
}
