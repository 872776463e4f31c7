package shell

import (
	"strings"

	"github.com/vvka-141/cyberscape/internal/checksum"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

const (
	unrecoverableSegment = "... [UNRECOVERABLE SEGMENT] ..."
	garbleGlyphs         = "!@#$%^&*();':[],./<>?"
)

// restoreChance is the probability that restore fully repairs a file.
func restoreChance(role cyberscape.Role) float64 {
	switch role {
	case cyberscape.RoleWhiteHat:
		return 0.85
	case cyberscape.RoleGreyHat:
		return 0.55
	case cyberscape.RoleBlackHat:
		return 0.3
	default:
		return 0.6
	}
}

// forensicTarget validates the single file operand shared by scan, parse
// and restore. ok is false when an error was already written.
func (s *Shell) forensicTarget(cmd, purpose string, args []string, out *Output) (name string, ok bool) {
	switch {
	case len(args) == 0:
		out.errorf("%s: missing file operand", cmd)
		out.errorf("Usage: %s <filename>", cmd)
		out.errorf("%s", purpose)
		return "", false
	case len(args) > 1:
		out.errorf("%s: too many arguments", cmd)
		out.errorf("Usage: %s <filename>", cmd)
		return "", false
	}

	name = args[0]
	node := s.fs.NodeAt(name)
	if node == nil {
		out.errorf("%s: %s: No such file or directory", cmd, name)
		return "", false
	}
	if node.IsDir() {
		out.errorf("%s: %s: Is a directory. Cannot %s directories.", cmd, name, cmd)
		return "", false
	}
	return name, true
}

func (s *Shell) scan(args []string, out *Output) {
	name, ok := s.forensicTarget("scan", "Analyzes a file for corruption and integrity.", args, out)
	if !ok {
		return
	}
	content, _ := s.fs.ReadContent(name)

	out.highlightf("Initiating integrity scan for: %s...", name)
	out.plain("Scanning sectors... [100%]")
	out.plain("Analyzing data structure...")
	out.commentf("Signature: sha256:%s (normalized %s)",
		checksum.Short(s.sum.CalculateRaw([]byte(content))),
		checksum.Short(s.sum.CalculateNormalized([]byte(content))))

	if !s.fs.IsCorrupted(name) {
		out.successf("Scan Complete: %s", name)
		out.successf("Status: STABLE. No corruption detected.")
		out.successf("File integrity verified.")
		return
	}

	level := between(s.roll, 15, 75)
	out.warnf("Scan Complete: %s", name)
	out.errorf("Status: CORRUPTION DETECTED. Integrity: %d%%", 100-level).Glitch = true
	out.errorf("Estimated data loss: %d%%.", level)
	out.errorf("Anomaly signatures found: UNSTABLE_READ_SECTOR, DATA_FRAGMENTATION_HIGH")
	out.highlightf("Recommendation: Use 'parse' to attempt data extraction or 'restore' to attempt repair.")
}

func (s *Shell) parse(args []string, out *Output) {
	name, ok := s.forensicTarget("parse", "Attempts to extract readable data from a file, especially if corrupted.", args, out)
	if !ok {
		return
	}
	content, _ := s.fs.ReadContent(name)
	corrupted := s.fs.IsCorrupted(name)

	out.highlightf("Parsing data stream from: %s...", name)
	out.plain("Reconstructing readable segments... [100%]")

	lines := splitLines(content)
	if !corrupted {
		out.successf("File appears stable. Extracting all content.")
	} else {
		out.warnf("Corruption detected. Attempting partial data extraction.")
	}
	if len(lines) == 0 {
		out.warnf("No data could be extracted.")
		return
	}

	out.highlightf("--- BEGIN PARSED DATA ---")
	for _, l := range lines {
		if !corrupted {
			out.plain(l)
			continue
		}
		if s.roll.Float64() <= 0.4 {
			out.line(KindError, unrecoverableSegment)
			continue
		}
		if s.roll.Float64() < 0.3 {
			l = s.garble(l)
		}
		out.plain(l).Glitch = s.roll.Float64() < 0.15
	}
	out.highlightf("--- END PARSED DATA ---")
}

// garble replaces most characters of line with noise glyphs.
func (s *Shell) garble(line string) string {
	var b strings.Builder
	for _, r := range line {
		if s.roll.Float64() < 0.7 {
			b.WriteByte(garbleGlyphs[s.roll.IntN(len(garbleGlyphs))])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *Shell) restore(args []string, out *Output) {
	name, ok := s.forensicTarget("restore", "Attempts to repair a corrupted file.", args, out)
	if !ok {
		return
	}
	if !s.fs.IsCorrupted(name) {
		out.successf("restore: %s: File is not corrupted. No action taken.", name)
		return
	}

	out.highlightf("Attempting to restore integrity of: %s...", name)
	out.plain("Finalizing file structure... [100%]")

	if s.roll.Float64() < restoreChance(s.role) {
		if _, err := s.fs.MarkCorrupted(name, false); err != nil {
			out.errorf("Restore error: Could not update corruption status for %s. %s", name, err)
			return
		}
		s.logger.Verbose("shell[%s]: restored %s", s.session, s.fs.Resolve(name))
		out.successf("Restore successful: %s integrity has been restored.", name)
		out.successf("File is now stable.")
		return
	}

	remaining := between(s.roll, 5, 30)
	out.warnf("Restore partially successful: %s", name)
	out.warnf("Significant data recovered, but some corruption remains (approx. %d%%).", remaining)
	out.warnf("Further 'parse' or 'restore' attempts may be needed, or data loss may be permanent.").Glitch = true
}
