package shell

import (
	"fmt"
	"strconv"

	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

// process is an entry of the simulated process table.
type process struct {
	pid     int
	user    string // empty means the player
	command string
	// protected processes refuse to die; hostile ones fail noisily
	protected bool
	hostile   bool
}

var processTable = []process{
	{pid: 1, user: "root", command: "/sbin/init", protected: true},
	{pid: 45, user: "system", command: "aether_core_monitor", protected: true},
	{pid: 101, command: "/bin/bash"},
	{pid: 105, command: "python main.py"},
	{pid: 666, user: "unknown", command: "???", hostile: true},
}

// onlyFor returns the deny list that leaves a command to role alone.
func onlyFor(role cyberscape.Role) []cyberscape.Role {
	var denied []cyberscape.Role
	for _, r := range append(cyberscape.Roles(), cyberscape.RoleNone) {
		if r != role {
			denied = append(denied, r)
		}
	}
	return denied
}

func (s *Shell) processes(args []string, out *Output) {
	out.highlightf("%-5s %-9s %s", "PID", "USER", "COMMAND")
	for _, p := range processTable {
		if s.killed[p.pid] {
			continue
		}
		user := p.user
		if user == "" {
			user = s.user
		}
		text := fmt.Sprintf("%-5d %-9s %s", p.pid, user, p.command)
		if p.hostile {
			out.warnf("%s", text).Glitch = true
			continue
		}
		out.plain(text)
	}
}

func (s *Shell) kill(args []string, out *Output) {
	switch {
	case len(args) == 0:
		out.errorf("kill: missing operand")
		out.errorf("Usage: kill <pid>")
		return
	case len(args) > 1:
		out.errorf("kill: too many arguments")
		out.errorf("Usage: kill <pid>")
		return
	}

	pid, err := strconv.Atoi(args[0])
	if err != nil {
		out.errorf("kill: '%s' is not a valid PID.", args[0])
		return
	}

	for _, p := range processTable {
		if p.pid != pid || s.killed[pid] {
			continue
		}
		switch {
		case p.hostile:
			out.warnf("Attempting to terminate process %d...", pid)
			out.errorf("kill: (%d) - Operation failed. Access denied or process unstable.", pid).Glitch = true
		case p.protected:
			out.errorf("kill: (%d) - Operation not permitted.", pid)
		default:
			s.killed[pid] = true
			s.logger.Verbose("shell[%s]: killed %d (%s)", s.session, pid, p.command)
			out.successf("Process %d terminated.", pid)
		}
		return
	}
	out.errorf("kill: (%d) - No such process.", pid)
}

func (s *Shell) integrityCheck(args []string, out *Output) {
	out.highlightf("Performing system integrity scan...")
	out.plain("Scanning critical system files...")
	out.plain("Verifying kernel modules...")
	out.plain("Checking for unauthorized processes...")

	corrupted := s.fs.CorruptedPaths()
	if len(corrupted) == 0 {
		out.successf("Integrity Scan: All systems nominal. No anomalies detected.")
		return
	}
	out.warnf("Integrity Scan: %d anomalies detected.", len(corrupted))
	for _, p := range corrupted {
		out.commentf("  - %s", p)
	}
	out.highlightf("Recommendation: Use 'restore' on each listed item.")
}

func (s *Shell) observeTraffic(args []string, out *Output) {
	out.highlightf("Initializing network traffic monitor...")
	out.plain("Monitoring packet flow on eth0...")
	out.plain("Analyzing data streams for unusual patterns...")
	out.warnf("Traffic Observation: Minor encrypted traffic spikes detected from unknown origin. Further analysis required.")
}

func (s *Shell) findExploit(args []string, out *Output) {
	out.highlightf("Scanning for known vulnerabilities...")
	out.plain("Cross-referencing local system services with exploit database...")
	out.plain("Checking for outdated software versions...")
	out.warnf("Vulnerability Scan: Potential buffer overflow in 'aether_daemon_v1.2'. Exploit 'CVE-2024-AETHER01' may apply.")
}
