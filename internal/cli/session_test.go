package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/cyberscape/internal/config"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

func TestResolveSessionConfig(t *testing.T) {
	fileCfg := &config.GameConfig{Player: config.PlayerConfig{
		Username: "fileuser",
		Hostname: "filehost",
		Role:     "black",
	}}

	tests := []struct {
		name     string
		cfg      *config.GameConfig
		env      map[string]string
		flags    [3]string // user, host, role
		wantUser string
		wantHost string
		wantRole cyberscape.Role
	}{
		{
			name:     "defaults",
			cfg:      &config.GameConfig{},
			wantUser: cyberscape.DefaultUsername,
			wantHost: cyberscape.DefaultHostname,
			wantRole: cyberscape.RoleNone,
		},
		{
			name:     "file",
			cfg:      fileCfg,
			wantUser: "fileuser",
			wantHost: "filehost",
			wantRole: cyberscape.RoleBlackHat,
		},
		{
			name:     "env overrides file",
			cfg:      fileCfg,
			env:      map[string]string{EnvUser: "envuser", EnvRole: "white-hat"},
			wantUser: "envuser",
			wantHost: "filehost",
			wantRole: cyberscape.RoleWhiteHat,
		},
		{
			name:     "flags override env",
			cfg:      fileCfg,
			env:      map[string]string{EnvUser: "envuser", EnvHost: "envhost"},
			flags:    [3]string{"flaguser", "", "GREY"},
			wantUser: "flaguser",
			wantHost: "envhost",
			wantRole: cyberscape.RoleGreyHat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetSessionFlags(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			sessionFlags.user, sessionFlags.host, sessionFlags.role = tt.flags[0], tt.flags[1], tt.flags[2]

			got, err := resolveSessionConfig(tt.cfg, true)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, got.Username)
			assert.Equal(t, tt.wantHost, got.Hostname)
			assert.Equal(t, tt.wantRole, got.Role)
			assert.True(t, got.Verbose)
		})
	}
}

func TestResolveSessionConfig_Invalid(t *testing.T) {
	t.Run("role", func(t *testing.T) {
		resetSessionFlags(t)
		t.Setenv(EnvRole, "rainbow")
		_, err := resolveSessionConfig(&config.GameConfig{}, false)
		assert.ErrorIs(t, err, cyberscape.ErrInvalidRole)
	})

	t.Run("username", func(t *testing.T) {
		resetSessionFlags(t)
		sessionFlags.user = "root@box"
		_, err := resolveSessionConfig(&config.GameConfig{}, false)
		assert.ErrorIs(t, err, cyberscape.ErrInvalidConfig)
	})
}

func TestLoadGameConfig(t *testing.T) {
	t.Run("missing file yields empty config", func(t *testing.T) {
		cfg, err := loadGameConfig(t.TempDir())
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Empty(t, cfg.Player.Username)
	})

	t.Run("dotenv feeds environment", func(t *testing.T) {
		resetSessionFlags(t)
		require.NoError(t, os.Unsetenv(EnvHost))

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvHost+"=dotenvhost\n"), 0644))

		cfg, err := loadGameConfig(dir)
		require.NoError(t, err)
		got, err := resolveSessionConfig(cfg, false)
		require.NoError(t, err)
		assert.Equal(t, "dotenvhost", got.Hostname)
	})

	t.Run("dotenv does not override environment", func(t *testing.T) {
		resetSessionFlags(t)
		t.Setenv(EnvHost, "shellhost")

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvHost+"=dotenvhost\n"), 0644))

		_, err := loadGameConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "shellhost", os.Getenv(EnvHost))
	})
}

func TestNewSessionLogger_WritesJSONEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")

	logger, closeLog, err := newSessionLogger(nil, false, path, "sess-1")
	require.NoError(t, err)
	logger.Info("mounted %d items", 3)
	logger.Verbose("dropped")
	require.NoError(t, closeLog())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &event))
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "sess-1", event["session"])
	assert.Equal(t, "cyberscape", event["component"])
	assert.Equal(t, "mounted 3 items", event["message"])
}

func TestNewSessionLogger_ConsoleTarget(t *testing.T) {
	var console bytes.Buffer
	logger, closeLog, err := newSessionLogger(&console, false, "", "s")
	require.NoError(t, err)
	logger.Info("visible")
	logger.Verbose("hidden")
	require.NoError(t, closeLog())
	assert.Equal(t, "visible\n", console.String())

	path := filepath.Join(t.TempDir(), "quiet.jsonl")
	logger, closeLog, err = newSessionLogger(nil, true, path, "s")
	require.NoError(t, err)
	logger.Info("file only")
	require.NoError(t, closeLog())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "file only")
}

func TestNewSessionLogger_BadPath(t *testing.T) {
	_, _, err := newSessionLogger(nil, false, filepath.Join(t.TempDir(), "missing", "log.jsonl"), "s")
	require.Error(t, err)
	assert.Equal(t, cyberscape.ExitConfigError, cyberscape.ExitCodeForError(err))
}

func TestExec_LogFileRecordsSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")

	_, _, err := executeCommand(t, "", "exec", "--verbose", "--log-file", path, "mkdir loot")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"level":"debug"`)
	assert.Contains(t, string(raw), "Directory 'loot' created.")
}
