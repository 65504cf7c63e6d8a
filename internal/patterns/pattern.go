package patterns

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Mode selects how pattern letters are compared.
type Mode string

const (
	// ModeLower compares case-insensitively against the lowercase address.
	ModeLower Mode = "lower"
	// ModeChecksum compares literally against the EIP-55 address.
	ModeChecksum Mode = "checksum"
)

// AddressLen is the number of hex characters in an address.
const AddressLen = 40

var (
	ErrNoPattern      = errors.New("a prefix or a suffix is required")
	ErrInvalidHex     = errors.New("pattern must be a hex string (0-9a-fA-F)")
	ErrPatternTooLong = errors.New("prefix and suffix together exceed 40 hex characters")
	ErrInvalidMode    = errors.New("mode must be one of: lower, checksum")
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeLower, "":
		return ModeLower, nil
	case ModeChecksum:
		return ModeChecksum, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Pattern is the user's search target.
type Pattern struct {
	Prefix string
	Suffix string
	Mode   Mode
}

// Normalize validates p and returns it with any 0x stripped from the prefix
// and, in lower mode, both parts lowercased.
func (p Pattern) Normalize() (Pattern, error) {
	mode, err := ParseMode(string(p.Mode))
	if err != nil {
		return p, err
	}
	p.Mode = mode
	p.Prefix = strings.TrimSpace(p.Prefix)
	p.Suffix = strings.TrimSpace(p.Suffix)
	if len(p.Prefix) > 2 && (p.Prefix[:2] == "0x" || p.Prefix[:2] == "0X") {
		p.Prefix = p.Prefix[2:]
	}

	if p.Prefix == "" && p.Suffix == "" {
		return p, ErrNoPattern
	}
	if err := validateHex(p.Prefix); err != nil {
		return p, fmt.Errorf("prefix: %w", err)
	}
	if err := validateHex(p.Suffix); err != nil {
		return p, fmt.Errorf("suffix: %w", err)
	}
	if len(p.Prefix)+len(p.Suffix) > AddressLen {
		return p, ErrPatternTooLong
	}
	if p.Mode == ModeLower {
		p.Prefix = strings.ToLower(p.Prefix)
		p.Suffix = strings.ToLower(p.Suffix)
	}
	return p, nil
}

// ExpectedAttempts is the mean number of addresses to test before a hit:
// 16 per configured hex position.
func (p Pattern) ExpectedAttempts() float64 {
	return math.Pow(16, float64(len(p.Prefix)+len(p.Suffix)))
}

func validateHex(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}
	return nil
}
