package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/cyberscape/internal/vfs"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

func TestProcesses(t *testing.T) {
	sh := newTestShell(WithUser("neo"))

	out := sh.Execute("processes")
	assert.Equal(t, []string{
		"PID   USER      COMMAND",
		"1     root      /sbin/init",
		"45    system    aether_core_monitor",
		"101   neo       /bin/bash",
		"105   neo       python main.py",
		"666   unknown   ???",
	}, out.Texts())
	assert.True(t, out.Lines[5].Glitch)
	assert.False(t, out.Failed())
}

func TestKill(t *testing.T) {
	tests := []struct {
		line string
		want []string
		fail bool
	}{
		{"kill", []string{"kill: missing operand", "Usage: kill <pid>"}, true},
		{"kill 1 2", []string{"kill: too many arguments", "Usage: kill <pid>"}, true},
		{"kill abc", []string{"kill: 'abc' is not a valid PID."}, true},
		{"kill 1", []string{"kill: (1) - Operation not permitted."}, true},
		{"kill 45", []string{"kill: (45) - Operation not permitted."}, true},
		{"kill 9999", []string{"kill: (9999) - No such process."}, true},
		{"kill 666", []string{
			"Attempting to terminate process 666...",
			"kill: (666) - Operation failed. Access denied or process unstable.",
		}, true},
		{"kill 105", []string{"Process 105 terminated."}, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			sh := newTestShell()
			out := sh.Execute(tt.line)
			assert.Equal(t, tt.want, out.Texts())
			assert.Equal(t, tt.fail, out.Failed())
		})
	}
}

func TestKill_RemovesProcess(t *testing.T) {
	sh := newTestShell()

	require.False(t, sh.Execute("kill 101").Failed())
	assert.NotContains(t, run(t, sh, "processes"), "101   hacker    /bin/bash")
	assert.Equal(t, []string{"kill: (101) - No such process."}, run(t, sh, "kill 101"))

	fresh := newTestShell()
	assert.Contains(t, run(t, fresh, "processes"), "101   hacker    /bin/bash")
}

func TestAlignedCommands(t *testing.T) {
	commands := map[string]cyberscape.Role{
		"integrity_check": cyberscape.RoleWhiteHat,
		"observe_traffic": cyberscape.RoleGreyHat,
		"find_exploit":    cyberscape.RoleBlackHat,
	}
	roles := append(cyberscape.Roles(), cyberscape.RoleNone)

	for name, owner := range commands {
		for _, role := range roles {
			t.Run(name+"/"+role.DisplayName(), func(t *testing.T) {
				sh := newTestShell(WithRole(role))
				out := sh.Execute(name)

				if role != owner {
					assert.Equal(t, []string{name + ": Operation not permitted for " + role.DisplayName() + " alignment."}, out.Texts())
					assert.NotContains(t, sh.Commands(), name)
					return
				}
				assert.False(t, out.Failed(), out.Texts())
				assert.Contains(t, sh.Commands(), name)
			})
		}
	}
}

func TestIntegrityCheck(t *testing.T) {
	sh := newTestShell(WithRole(cyberscape.RoleWhiteHat))

	lines := run(t, sh, "integrity_check")
	assert.Equal(t, "Performing system integrity scan...", lines[0])
	assert.Contains(t, lines, "Integrity Scan: 5 anomalies detected.")
	assert.Contains(t, lines, "  - /var/log/auth.log")

	clean := New(vfs.New(vfs.WithEmptyTree()), WithRole(cyberscape.RoleWhiteHat))
	lines = run(t, clean, "integrity_check")
	assert.Equal(t, "Integrity Scan: All systems nominal. No anomalies detected.", lines[len(lines)-1])
}

func TestObserveTrafficAndFindExploit(t *testing.T) {
	grey := newTestShell(WithRole(cyberscape.RoleGreyHat))
	out := grey.Execute("observe_traffic")
	require.Len(t, out.Lines, 4)
	assert.Equal(t, KindWarning, out.Lines[3].Kind)

	black := newTestShell(WithRole(cyberscape.RoleBlackHat))
	out = black.Execute("find_exploit")
	require.Len(t, out.Lines, 4)
	assert.Contains(t, out.Lines[3].Text, "CVE-2024-AETHER01")
}
