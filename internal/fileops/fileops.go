// Package fileops owns every filesystem concern of the gitweep CLI:
// reading pattern files, atomic replacement, backups, and resolving the
// user's global gitignore. The core package never touches the filesystem.
package fileops

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Read loads a pattern file. Missing files and permission problems are
// reported with distinct, user-facing messages.
func Read(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, errors.Errorf("file not found: %s", path)
		case os.IsPermission(err):
			return nil, errors.Errorf("permission denied: %s", path)
		default:
			return nil, errors.Wrapf(err, "reading %s", path)
		}
	}
	return content, nil
}

// WriteAtomic replaces path with data. The data is written to a temporary
// file in the same directory and renamed over the target, so readers never
// observe a half-written file.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "creating temp file in %s", dir)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrapf(err, "writing %s", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "closing %s", tmpPath)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "setting permissions on %s", tmpPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "replacing %s", path)
	}
	return nil
}

// Backup copies path to path+".backup" and returns the backup path.
// A missing source is not an error; the returned path is empty.
func Backup(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "reading %s for backup", path)
	}

	backupPath := path + ".backup"
	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", errors.Wrapf(err, "writing backup %s", backupPath)
	}
	return backupPath, nil
}

// GlobalIgnorePath resolves the user's global gitignore file, in order:
//
//  1. git config --global core.excludesFile (if git is available)
//  2. $XDG_CONFIG_HOME/git/ignore (if XDG_CONFIG_HOME is set)
//  3. ~/.config/git/ignore (default fallback)
//
// The file is not required to exist; callers get the resolved path either
// way.
func GlobalIgnorePath() (string, error) {
	if path := gitConfigExcludesFile(); path != "" {
		return expandTilde(path)
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "determining home directory")
	}
	return filepath.Join(home, ".config", "git", "ignore"), nil
}

// gitConfigExcludesFile reads the global core.excludesFile from git
// config. Returns empty if git is not installed or the key is unset.
func gitConfigExcludesFile() string {
	out, err := exec.Command("git", "config", "--global", "core.excludesFile").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// expandTilde expands a leading ~ to the current user's home directory.
func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "expanding ~")
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
