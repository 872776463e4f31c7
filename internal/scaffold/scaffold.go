package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/cyberscape/internal/logging"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

//go:embed all:templates
var templatesFS embed.FS

const templateSuffix = ".tmpl"

// ErrFileExists is returned when a starter file would overwrite an existing one.
var ErrFileExists = errors.New("file already exists")

// Values are substituted into the templates.
type Values struct {
	Username string
	Hostname string
	// Role is the short role name ("white", "grey", "black") or empty.
	Role string
}

// Scaffolder writes starter configuration files.
type Scaffolder struct {
	logger cyberscape.Logger
}

func NewScaffolder(logger cyberscape.Logger) *Scaffolder {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scaffolder{logger: logger}
}

// Files returns the names of the files WriteConfig creates, sorted.
func Files() ([]string, error) {
	var names []string
	err := fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, strings.TrimSuffix(strings.TrimPrefix(p, "templates/"), templateSuffix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// WriteConfig renders every template into dir and returns the written paths.
// Nothing is written if any target exists and force is false.
func (s *Scaffolder) WriteConfig(dir string, v Values, force bool) ([]string, error) {
	names, err := Files()
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	if !force {
		for _, name := range names {
			target := filepath.Join(dir, filepath.FromSlash(name))
			if _, err := os.Stat(target); err == nil {
				return nil, fmt.Errorf("%w: %s", ErrFileExists, target)
			}
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	written := make([]string, 0, len(names))
	for _, name := range names {
		content, err := templatesFS.ReadFile(path.Join("templates", name+templateSuffix))
		if err != nil {
			return written, fmt.Errorf("failed to read template %s: %w", name, err)
		}

		target := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.WriteFile(target, []byte(render(string(content), v)), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", target, err)
		}
		s.logger.Verbose("scaffold: wrote %s", target)
		written = append(written, target)
	}
	return written, nil
}

func render(content string, v Values) string {
	return strings.NewReplacer(
		"{{USERNAME}}", v.Username,
		"{{HOSTNAME}}", v.Hostname,
		"{{ROLE}}", v.Role,
	).Replace(content)
}
