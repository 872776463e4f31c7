package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/cyberscape/internal/config"
	"github.com/vvka-141/cyberscape/internal/logging"
	"github.com/vvka-141/cyberscape/internal/shell"
	"github.com/vvka-141/cyberscape/internal/vfs"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

// Environment variables that override cyberscape.yaml. Flags override both.
const (
	EnvUser = cyberscape.EnvPrefix + "USER"
	EnvHost = cyberscape.EnvPrefix + "HOST"
	EnvRole = cyberscape.EnvPrefix + "ROLE"
)

// sessionFlags holds the persistent flag values shared by every game command.
var sessionFlags struct {
	configDir string
	logFile   string
	user      string
	host      string
	role      string
}

// gameSession bundles a ready-to-play shell with its logger.
type gameSession struct {
	shell    *shell.Shell
	config   cyberscape.SessionConfig
	logger   cyberscape.Logger
	closeLog func() error
}

func (s *gameSession) Close() error {
	if s.closeLog == nil {
		return nil
	}
	return s.closeLog()
}

// loadGameConfig loads .env and cyberscape.yaml from dir.
// Returns an empty config if cyberscape.yaml does not exist (not an error).
func loadGameConfig(dir string) (*config.GameConfig, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", cyberscape.ErrInvalidConfig, err)
	}

	gameCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return &config.GameConfig{}, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return gameCfg, nil
}

// resolveSessionConfig layers defaults, cyberscape.yaml, environment and
// flags, later sources winning when non-empty.
func resolveSessionConfig(gameCfg *config.GameConfig, verbose bool) (cyberscape.SessionConfig, error) {
	sessionCfg := cyberscape.SessionConfig{
		Username: cyberscape.DefaultUsername,
		Hostname: cyberscape.DefaultHostname,
		Verbose:  verbose,
	}

	overlay(&sessionCfg.Username, gameCfg.Player.Username, os.Getenv(EnvUser), sessionFlags.user)
	overlay(&sessionCfg.Hostname, gameCfg.Player.Hostname, os.Getenv(EnvHost), sessionFlags.host)

	var roleName string
	overlay(&roleName, gameCfg.Player.Role, os.Getenv(EnvRole), sessionFlags.role)
	role, err := cyberscape.ParseRole(roleName)
	if err != nil {
		return sessionCfg, err
	}
	sessionCfg.Role = role

	if err := sessionCfg.Validate(); err != nil {
		return sessionCfg, err
	}
	return sessionCfg, nil
}

func overlay(dst *string, values ...string) {
	for _, v := range values {
		if v != "" {
			*dst = v
		}
	}
}

// newSessionLogger returns a console logger writing to console, fanned out
// to a JSON event file when logFile is set. A nil console drops console
// output. The returned func closes the file.
func newSessionLogger(console io.Writer, verbose bool, logFile, sessionID string) (cyberscape.Logger, func() error, error) {
	var consoleLogger cyberscape.Logger = logging.NewNullLogger()
	if console != nil {
		consoleLogger = logging.NewConsoleLoggerTo(console, verbose)
	}
	if logFile == "" {
		return consoleLogger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: log file: %w", cyberscape.ErrInvalidConfig, err)
	}
	events := logging.NewJSONLogger(f, "cyberscape", verbose).WithSession(sessionID)
	return logging.NewMultiLogger(consoleLogger, events), f.Close, nil
}

// newGameSession builds the world and shell for a command invocation.
// When ownsTerminal is set the full-screen UI is drawing on the terminal,
// so nothing is logged to stderr and only --log-file receives events.
func newGameSession(cmd *cobra.Command, ownsTerminal bool) (*gameSession, error) {
	verbose := getVerboseFlag(cmd)

	gameCfg, err := loadGameConfig(sessionFlags.configDir)
	if err != nil {
		return nil, err
	}
	sessionCfg, err := resolveSessionConfig(gameCfg, verbose)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	var console io.Writer = os.Stderr
	if ownsTerminal {
		console = nil
	}
	logger, closeLog, err := newSessionLogger(console, verbose, sessionFlags.logFile, sessionID)
	if err != nil {
		return nil, err
	}

	world, err := gameCfg.NewFileSystem(vfs.WithLogger(logger))
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	sh := shell.New(world,
		shell.WithUser(sessionCfg.Username),
		shell.WithHost(sessionCfg.Hostname),
		shell.WithRole(sessionCfg.Role),
		shell.WithLogger(logger),
		shell.WithSessionID(sessionID),
	)
	logger.Verbose("session %s: %s@%s role=%q", sessionID, sessionCfg.Username, sessionCfg.Hostname, sessionCfg.Role)

	return &gameSession{
		shell:    sh,
		config:   sessionCfg,
		logger:   logger,
		closeLog: closeLog,
	}, nil
}
