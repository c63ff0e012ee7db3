package discovery

import (
	"fmt"
	"strings"
)

// Mode is the deployment mode that selects the discovery strategy.
type Mode int

const (
	// ModeStandard discovers units by listing the namespace search path.
	ModeStandard Mode = iota
	// ModeBundled discovers units from finders' tables of contents.
	ModeBundled
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeBundled:
		return "bundled"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "":
		return ModeStandard, nil
	case "bundled":
		return ModeBundled, nil
	}
	return 0, fmt.Errorf("invalid mode %q: must be 'standard' or 'bundled'", s)
}
