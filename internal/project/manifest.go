// Package project locates and loads the keel.toml manifest that anchors
// a project tree.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the project root is identified by.
const ManifestName = "keel.toml"

// ErrNoManifest is returned when no keel.toml exists in the start
// directory or any of its parents.
var ErrNoManifest = errors.New("no keel.toml found")

// Manifest is a located and parsed project manifest.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the parsed keel.toml content.
type Config struct {
	Package  PackageConfig  `toml:"package"`
	Snapshot SnapshotConfig `toml:"snapshot"`
}

// PackageConfig names the project.
type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// SnapshotConfig points at the type snapshot artifacts.
type SnapshotConfig struct {
	// Path is the snapshot file location relative to the project root.
	// Empty means the default build/types.snap.
	Path string `toml:"path"`
}

// DefaultSnapshotPath is used when the manifest does not set one.
const DefaultSnapshotPath = "build/types.snap"

// Find walks from startDir upwards until it sees a keel.toml.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoManifest
		}
		dir = parent
	}
}

// Load finds and parses the manifest governing startDir.
func Load(startDir string) (*Manifest, error) {
	path, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	cfg, err := parseConfig(path)
	if err != nil {
		return nil, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

func parseConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	return cfg, nil
}

// SnapshotPath resolves the snapshot file location for this project.
func (m *Manifest) SnapshotPath() string {
	p := strings.TrimSpace(m.Config.Snapshot.Path)
	if p == "" {
		p = DefaultSnapshotPath
	}
	return filepath.Join(m.Root, filepath.FromSlash(p))
}
