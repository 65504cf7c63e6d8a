package hd

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

// DefaultPath is the BIP-44 Ethereum external chain; the address index is
// appended to it.
const DefaultPath = "m/44'/60'/0'/0"

var ErrInvalidPath = errors.New("invalid derivation path")

var componentRe = regexp.MustCompile(`^[0-9]+'?$`)

// ParsePath parses an absolute BIP-32 path such as m/44'/60'/0'/0.
// Each component is a decimal 31-bit integer, hardened when followed by '.
func ParsePath(s string) (accounts.DerivationPath, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) < 2 || parts[0] != "m" {
		return nil, fmt.Errorf("%w %q: must start with m/", ErrInvalidPath, s)
	}
	for _, p := range parts[1:] {
		if !componentRe.MatchString(p) {
			return nil, fmt.Errorf("%w %q: bad component %q", ErrInvalidPath, s, p)
		}
		if _, err := strconv.ParseUint(strings.TrimSuffix(p, "'"), 10, 31); err != nil {
			return nil, fmt.Errorf("%w %q: component %q exceeds 31 bits", ErrInvalidPath, s, p)
		}
	}
	path, err := hdwallet.ParseDerivationPath(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPath, s, err)
	}
	return path, nil
}

// WithIndex returns a copy of base with index appended.
func WithIndex(base accounts.DerivationPath, index uint32) accounts.DerivationPath {
	full := make(accounts.DerivationPath, 0, len(base)+1)
	full = append(full, base...)
	return append(full, index)
}

// FormatPath renders base/index, e.g. m/44'/60'/0'/0/4.
func FormatPath(base accounts.DerivationPath, index uint32) string {
	return WithIndex(base, index).String()
}
