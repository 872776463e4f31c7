package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/cyberscape/internal/vfs"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type PlayerConfig struct {
	Username string `yaml:"username"`
	Hostname string `yaml:"hostname"`
	Role     string `yaml:"role,omitempty"`
}

// WorldConfig describes changes applied to the default world before play.
type WorldConfig struct {
	Empty     bool              `yaml:"empty,omitempty"`
	Dirs      []string          `yaml:"dirs,omitempty"`
	Files     map[string]string `yaml:"files,omitempty"`
	Corrupted []string          `yaml:"corrupted,omitempty"`
	Clean     []string          `yaml:"clean,omitempty"`
}

type GameConfig struct {
	Player PlayerConfig `yaml:"player"`
	World  WorldConfig  `yaml:"world"`
}

const ConfigFileName = cyberscape.ConfigFileName

// Load reads cyberscape.yaml from dir.
func Load(dir string) (*GameConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a game configuration from an explicit path.
func LoadFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", cyberscape.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// Role parses the configured role. An empty role is RoleNone.
func (c *GameConfig) Role() (cyberscape.Role, error) {
	if c.Player.Role == "" {
		return cyberscape.RoleNone, nil
	}
	return cyberscape.ParseRole(c.Player.Role)
}

// NewFileSystem builds the world described by the configuration.
func (c *GameConfig) NewFileSystem(opts ...vfs.Option) (*vfs.FileSystem, error) {
	if c.World.Empty {
		opts = append([]vfs.Option{vfs.WithEmptyTree()}, opts...)
	}
	fs := vfs.New(opts...)
	if err := c.World.Apply(fs); err != nil {
		return nil, err
	}
	return fs, nil
}

// Apply creates directories, writes files, then sets and clears corruption
// flags, in that order. Paths are resolved from the filesystem's current
// directory. All failures are reported together.
func (w WorldConfig) Apply(fs *vfs.FileSystem) error {
	var errs []error

	for _, dir := range w.Dirs {
		if _, err := fs.MakeDirAll(dir); err != nil {
			errs = append(errs, err)
		}
	}

	paths := make([]string, 0, len(w.Files))
	for p := range w.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		parent := fs.Resolve(p).Parent()
		if len(parent) > 1 {
			if _, err := fs.MakeDirAll(parent.String()); err != nil {
				errs = append(errs, err)
				continue
			}
		}
		if _, err := fs.WriteFile(p, w.Files[p]); err != nil {
			errs = append(errs, err)
		}
	}

	for _, p := range w.Corrupted {
		if _, err := fs.MarkCorrupted(p, true); err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range w.Clean {
		if _, err := fs.MarkCorrupted(p, false); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: world: %w", cyberscape.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
