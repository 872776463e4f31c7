package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-shellwords"

	"github.com/vvka-141/cyberscape/internal/checksum"
	"github.com/vvka-141/cyberscape/internal/logging"
	"github.com/vvka-141/cyberscape/internal/vfs"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

// Shell executes command lines for one player session.
// A Shell is not safe for concurrent use.
type Shell struct {
	fs       *vfs.FileSystem
	role     cyberscape.Role
	user     string
	host     string
	roll     Roller
	sum      checksum.Calculator
	logger   cyberscape.Logger
	session  string
	commands map[string]command
	executed int
	killed   map[int]bool
}

// Option configures a Shell created by New.
type Option func(*Shell)

func WithRole(role cyberscape.Role) Option {
	return func(s *Shell) { s.role = role }
}

func WithUser(user string) Option {
	return func(s *Shell) {
		if user != "" {
			s.user = user
		}
	}
}

func WithHost(host string) Option {
	return func(s *Shell) {
		if host != "" {
			s.host = host
		}
	}
}

// WithRoller replaces the random source.
func WithRoller(r Roller) Option {
	return func(s *Shell) {
		if r != nil {
			s.roll = r
		}
	}
}

func WithLogger(logger cyberscape.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithChecksum replaces the calculator used for scan signatures.
func WithChecksum(c checksum.Calculator) Option {
	return func(s *Shell) {
		if c != nil {
			s.sum = c
		}
	}
}

// WithSessionID fixes the session ID instead of generating a random UUID.
func WithSessionID(id string) Option {
	return func(s *Shell) {
		if id != "" {
			s.session = id
		}
	}
}

// New creates a Shell operating on fs.
func New(fs *vfs.FileSystem, opts ...Option) *Shell {
	s := &Shell{
		fs:      fs,
		user:    cyberscape.DefaultUsername,
		host:    cyberscape.DefaultHostname,
		roll:    globalRoller{},
		sum:     checksum.New(),
		logger:  logging.NewNullLogger(),
		session: uuid.NewString(),
		killed:  make(map[int]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.commands = builtinCommands()
	return s
}

func (s *Shell) FileSystem() *vfs.FileSystem { return s.fs }

func (s *Shell) Role() cyberscape.Role { return s.role }

// SetRole changes the alignment, e.g. after the player picks one.
func (s *Shell) SetRole(role cyberscape.Role) {
	s.logger.Verbose("shell[%s]: role %q -> %q", s.session, s.role, role)
	s.role = role
}

func (s *Shell) SessionID() string { return s.session }

// Prompt renders "user@host:cwd$ ".
func (s *Shell) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$ ", s.user, s.host, s.fs.CurrentPathString())
}

// Commands returns the sorted names of the commands available to the
// current role.
func (s *Shell) Commands() []string {
	names := make([]string, 0, len(s.commands))
	for name, cmd := range s.commands {
		if cmd.allows(s.role) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Execute runs one command line.
func (s *Shell) Execute(input string) Output {
	var out Output

	parser := shellwords.NewParser()
	args, err := parser.Parse(input)
	if err != nil {
		out.errorf("Error: Unmatched quote in command.")
		return out
	}
	if parser.Position >= 0 {
		out.errorf("Error: Pipes, redirection and command lists are not supported.")
		return out
	}
	if len(args) == 0 {
		return out
	}

	name := strings.ToLower(args[0])
	args = args[1:]
	s.executed++
	s.logger.Verbose("shell[%s]: %s %q", s.session, name, args)

	cmd, ok := s.commands[name]
	if !ok {
		out.errorf("Command not found: %s", name)
		return out
	}
	if !cmd.allows(s.role) {
		out.errorf("%s: Operation not permitted for %s alignment.", name, s.role.DisplayName())
		return out
	}

	cmd.run(s, args, &out)
	if out.Failed() {
		s.logger.Verbose("shell[%s]: %s failed: %s", s.session, name, out.Lines[len(out.Lines)-1].Text)
	}
	return out
}

// report turns a filesystem result into output. Success messages are only
// logged, the way a Unix shell stays quiet on success.
func (s *Shell) report(out *Output, msg string, err error) {
	if err != nil {
		out.line(KindError, err.Error())
		return
	}
	s.logger.Verbose("shell[%s]: %s", s.session, msg)
}
