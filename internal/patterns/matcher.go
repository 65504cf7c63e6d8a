package patterns

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"EthVanity/internal/crypto"
)

const (
	KindPrefix = "prefix"
	KindSuffix = "suffix"
	KindBoth   = "prefix+suffix"
)

// MatchResult tells which parts of the pattern hit and the address text they
// covered.
type MatchResult struct {
	Kind   string // prefix|suffix|prefix+suffix
	Mode   Mode
	Prefix string
	Suffix string
}

// Matcher tests addresses against a normalized Pattern. It keeps no mutable
// state and may be shared by all workers.
type Matcher struct {
	pattern Pattern
	prefix  []byte
	suffix  []byte
}

func NewMatcher(p Pattern) (*Matcher, error) {
	p, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	return &Matcher{pattern: p, prefix: []byte(p.Prefix), suffix: []byte(p.Suffix)}, nil
}

func (m *Matcher) Pattern() Pattern { return m.pattern }

// MatchAddress is the hot-path check. The lowercase hex is built on the stack
// and EIP-55 casing is only computed in checksum mode.
func (m *Matcher) MatchAddress(addr common.Address) *MatchResult {
	var buf [AddressLen]byte
	crypto.EncodeLower(&buf, addr)
	if m.pattern.Mode == ModeChecksum {
		// Reject on the case-folded text first; casing costs a Keccak.
		if !m.hit(buf[:], true) {
			return nil
		}
		crypto.ApplyChecksum(buf[:])
	}
	if !m.hit(buf[:], false) {
		return nil
	}
	return m.result(buf[:])
}

// MatchString checks a textual address with or without 0x. In lower mode
// any casing is accepted; in checksum mode addr must be the EIP-55 form.
func (m *Matcher) MatchString(addr string) *MatchResult {
	if len(addr) >= 2 && (addr[:2] == "0x" || addr[:2] == "0X") {
		addr = addr[2:]
	}
	if len(addr) != AddressLen {
		return nil
	}
	if m.pattern.Mode == ModeLower {
		addr = strings.ToLower(addr)
	}
	buf := []byte(addr)
	if !m.hit(buf, false) {
		return nil
	}
	return m.result(buf)
}

func (m *Matcher) hit(addr []byte, fold bool) bool {
	if len(m.prefix) > 0 && !equal(addr[:len(m.prefix)], m.prefix, fold) {
		return false
	}
	if len(m.suffix) > 0 && !equal(addr[len(addr)-len(m.suffix):], m.suffix, fold) {
		return false
	}
	return true
}

func (m *Matcher) result(addr []byte) *MatchResult {
	r := &MatchResult{Mode: m.pattern.Mode}
	switch {
	case len(m.prefix) > 0 && len(m.suffix) > 0:
		r.Kind = KindBoth
	case len(m.prefix) > 0:
		r.Kind = KindPrefix
	default:
		r.Kind = KindSuffix
	}
	if len(m.prefix) > 0 {
		r.Prefix = string(addr[:len(m.prefix)])
	}
	if len(m.suffix) > 0 {
		r.Suffix = string(addr[len(addr)-len(m.suffix):])
	}
	return r
}

func equal(a, b []byte, fold bool) bool {
	for i := range b {
		x, y := a[i], b[i]
		if fold {
			x, y = lower(x), lower(y)
		}
		if x != y {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'F' {
		return c + 'a' - 'A'
	}
	return c
}
