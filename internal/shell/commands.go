package shell

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

type command struct {
	usage  string
	help   string
	denied []cyberscape.Role
	run    func(s *Shell, args []string, out *Output)
}

func (c command) allows(role cyberscape.Role) bool {
	return !slices.Contains(c.denied, role)
}

func builtinCommands() map[string]command {
	noWhiteHat := []cyberscape.Role{cyberscape.RoleWhiteHat}

	return map[string]command{
		"help":     {usage: "help", help: "Show this help message", run: (*Shell).help},
		"clear":    {usage: "clear", help: "Clear the terminal screen", run: (*Shell).clear},
		"echo":     {usage: "echo [text]", help: "Print text", run: (*Shell).echo},
		"whoami":   {usage: "whoami", help: "Print current username", run: (*Shell).whoami},
		"hostname": {usage: "hostname", help: "Print hostname", run: (*Shell).hostname},
		"uname":    {usage: "uname [-a]", help: "Print system information", run: (*Shell).uname},
		"pwd":      {usage: "pwd", help: "Print working directory", run: (*Shell).pwd},
		"ls":       {usage: "ls [path]", help: "List directory contents", run: (*Shell).ls},
		"cd":       {usage: "cd <dir>", help: "Change directory", run: (*Shell).cd},
		"cat":      {usage: "cat <file>", help: "Display file content", run: (*Shell).cat},
		"head":     {usage: "head [-n N] <file>", help: "Show first N lines", run: (*Shell).head},
		"tail":     {usage: "tail [-n N] <file>", help: "Show last N lines", run: (*Shell).tail},
		"grep":     {usage: "grep <pattern> <file>", help: "Search for PATTERN in FILE", run: (*Shell).grep},
		"mkdir":    {usage: "mkdir [-p] <dirname>", help: "Create a new directory", run: (*Shell).mkdir},
		"touch":    {usage: "touch <filename>", help: "Create/update file", run: (*Shell).touch},
		"write":    {usage: "write <file> <content>", help: "Writes content to a file", run: (*Shell).write},
		"rm":       {usage: "rm [-r] <path>", help: "Remove a file or directory", denied: noWhiteHat, run: (*Shell).rm},
		"mv":       {usage: "mv <source> <dest>", help: "Move or rename a file or directory", denied: noWhiteHat, run: (*Shell).mv},
		"cp":       {usage: "cp [-r] <source> <dest>", help: "Copy a file or directory", run: (*Shell).cp},
		"find":     {usage: "find <pattern> [dir]", help: "Find items whose name contains PATTERN", run: (*Shell).find},
		"tree":     {usage: "tree [dir]", help: "Show a directory tree", run: (*Shell).tree},
		"scan":     {usage: "scan <file>", help: "Analyze a file for corruption", run: (*Shell).scan},
		"parse":    {usage: "parse <file>", help: "Attempt to extract readable data from a file", run: (*Shell).parse},
		"restore":  {usage: "restore <file>", help: "Attempt to repair a corrupted file", run: (*Shell).restore},
		"status":   {usage: "status", help: "Display system status overview", run: (*Shell).status},
		"quit":     {usage: "quit", help: "Exit the game", run: (*Shell).exit},
		"exit":     {usage: "exit", help: "Exit the game (alias for quit)", run: (*Shell).exit},

		"processes":       {usage: "processes", help: "List running simulated processes", run: (*Shell).processes},
		"kill":            {usage: "kill <pid>", help: "Terminate a simulated process", run: (*Shell).kill},
		"integrity_check": {usage: "integrity_check", help: "Verify system integrity", denied: onlyFor(cyberscape.RoleWhiteHat), run: (*Shell).integrityCheck},
		"observe_traffic": {usage: "observe_traffic", help: "Monitor network traffic", denied: onlyFor(cyberscape.RoleGreyHat), run: (*Shell).observeTraffic},
		"find_exploit":    {usage: "find_exploit", help: "Search local services for vulnerabilities", denied: onlyFor(cyberscape.RoleBlackHat), run: (*Shell).findExploit},
	}
}

func (s *Shell) help(args []string, out *Output) {
	out.highlightf("Available commands:")
	for _, name := range s.Commands() {
		cmd := s.commands[name]
		out.plain(fmt.Sprintf("  %-17s - %s", cmd.usage, cmd.help))
	}
}

func (s *Shell) clear(args []string, out *Output) {
	out.Clear = true
	out.successf("Screen cleared.")
}

func (s *Shell) exit(args []string, out *Output) {
	out.Exit = true
}

func (s *Shell) echo(args []string, out *Output) {
	out.plain(strings.Join(args, " "))
}

func (s *Shell) whoami(args []string, out *Output) {
	out.plain(s.user).Glitch = s.fs.IsCorrupted("/")
}

func (s *Shell) hostname(args []string, out *Output) {
	out.plain(s.host).Glitch = s.fs.IsCorrupted("/")
}

const unameAll = "Linux kali 6.1.0-kali5-amd64 #1 SMP PREEMPT_DYNAMIC Debian 6.1.12-1kali2 (2023-02-23) x86_64 GNU/Linux"

func (s *Shell) uname(args []string, out *Output) {
	text := "Linux"
	if len(args) > 0 && args[0] == "-a" {
		text = unameAll
	}
	out.plain(text).Glitch = s.fs.IsCorrupted("/")
}

func (s *Shell) pwd(args []string, out *Output) {
	cwd := s.fs.CurrentPathString()
	out.plain(cwd).Glitch = s.fs.IsCorrupted(cwd)
}

func (s *Shell) status(args []string, out *Output) {
	corrupted := s.fs.CorruptedPaths()

	out.highlightf("Session: %s", s.session)
	out.plain(fmt.Sprintf("Operator: %s@%s (%s)", s.user, s.host, s.role.DisplayName()))
	if len(corrupted) == 0 {
		out.successf("System Status: Nominal")
	} else {
		out.warnf("System Status: Degraded")
	}
	out.successf("Aether Network Connection: Stable")
	out.warnf("Corruption Level: %s (%d corrupted items)", corruptionLevel(len(corrupted)), len(corrupted))
	for _, p := range corrupted {
		out.commentf("  - %s", p)
	}
	out.commentf("Commands executed: %d", s.executed)
}

func corruptionLevel(n int) string {
	switch {
	case n == 0:
		return "None"
	case n <= 2:
		return "Minimal"
	case n <= 5:
		return "Elevated"
	default:
		return "Critical"
	}
}
