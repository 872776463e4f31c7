package cyberscape

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the alignment the player picked at the start of a session.
// It changes which destructive commands are allowed and how likely
// restore attempts are to succeed.
type Role string

const (
	RoleNone     Role = ""
	RoleWhiteHat Role = "white_hat"
	RoleGreyHat  Role = "grey_hat"
	RoleBlackHat Role = "black_hat"
)

// Roles lists the selectable roles in display order.
func Roles() []Role {
	return []Role{RoleWhiteHat, RoleGreyHat, RoleBlackHat}
}

// ParseRole accepts "white", "white_hat", "WHITE_HAT", "white-hat" and the
// equivalents for grey (or gray) and black. An empty string yields RoleNone.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.TrimSuffix(normalized, "_hat")

	switch normalized {
	case "":
		return RoleNone, nil
	case "white":
		return RoleWhiteHat, nil
	case "grey", "gray":
		return RoleGreyHat, nil
	case "black":
		return RoleBlackHat, nil
	}
	return RoleNone, fmt.Errorf("%q: %w", s, ErrInvalidRole)
}

// DisplayName returns the human readable role name, e.g. "White Hat".
func (r Role) DisplayName() string {
	switch r {
	case RoleWhiteHat:
		return "White Hat"
	case RoleGreyHat:
		return "Grey Hat"
	case RoleBlackHat:
		return "Black Hat"
	}
	return "Unaligned"
}

// Description is the one-line pitch shown by the role picker.
func (r Role) Description() string {
	switch r {
	case RoleWhiteHat:
		return "Defend the system. Repairs succeed more often; rm and mv are off limits."
	case RoleGreyHat:
		return "Walk the line. Every tool is available, repairs are a coin toss."
	case RoleBlackHat:
		return "Exploit everything. Full access, but restored files rarely stay clean."
	}
	return ""
}

// SessionConfig contains everything needed to start a game session.
type SessionConfig struct {
	// Username is shown in the prompt and returned by whoami
	Username string

	// Hostname is shown in the prompt and returned by hostname
	Hostname string

	// Role selects the player alignment; RoleNone lets the front end ask
	Role Role

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the SessionConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *SessionConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Username) == "" {
		errs = append(errs, fmt.Errorf("Username is required: %w", ErrInvalidConfig))
	} else if strings.ContainsAny(c.Username, " /@:") {
		errs = append(errs, fmt.Errorf("Username %q must not contain spaces, '/', '@' or ':': %w", c.Username, ErrInvalidConfig))
	}

	if strings.TrimSpace(c.Hostname) == "" {
		errs = append(errs, fmt.Errorf("Hostname is required: %w", ErrInvalidConfig))
	}

	if _, err := ParseRole(string(c.Role)); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
