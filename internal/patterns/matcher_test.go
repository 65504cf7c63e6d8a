package patterns

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"EthVanity/internal/crypto"
)

const deadbeef = "deadbeef00000000000000000000000000c0ffee"

func mustMatcher(t *testing.T, p Pattern) *Matcher {
	t.Helper()
	m, err := NewMatcher(p)
	if err != nil {
		t.Fatalf("NewMatcher(%+v): %v", p, err)
	}
	return m
}

func TestMatchLower(t *testing.T) {
	addr := common.HexToAddress(deadbeef)
	tests := []struct {
		name string
		p    Pattern
		kind string
	}{
		{"prefix", Pattern{Prefix: "dead", Mode: ModeLower}, KindPrefix},
		{"prefix upper input", Pattern{Prefix: "DEAD", Mode: ModeLower}, KindPrefix},
		{"prefix with 0x", Pattern{Prefix: "0xdeadbe", Mode: ModeLower}, KindPrefix},
		{"suffix", Pattern{Suffix: "C0FFEE", Mode: ModeLower}, KindSuffix},
		{"both", Pattern{Prefix: "dead", Suffix: "ffee", Mode: ModeLower}, KindBoth},
		{"default mode", Pattern{Prefix: "de"}, KindPrefix},
		{"no match prefix", Pattern{Prefix: "beef", Mode: ModeLower}, ""},
		{"no match suffix", Pattern{Suffix: "dead", Mode: ModeLower}, ""},
		{"prefix ok suffix not", Pattern{Prefix: "dead", Suffix: "0000", Mode: ModeLower}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatcher(t, tt.p)
			for _, r := range []*MatchResult{m.MatchAddress(addr), m.MatchString("0x" + deadbeef), m.MatchString(strings.ToUpper(deadbeef))} {
				if tt.kind == "" {
					if r != nil {
						t.Fatalf("unexpected match %+v", r)
					}
					continue
				}
				if r == nil {
					t.Fatal("expected match")
				}
				if r.Kind != tt.kind {
					t.Fatalf("kind = %s, want %s", r.Kind, tt.kind)
				}
			}
		})
	}
}

func TestMatchResultText(t *testing.T) {
	m := mustMatcher(t, Pattern{Prefix: "DEAD", Suffix: "ee", Mode: ModeLower})
	r := m.MatchAddress(common.HexToAddress(deadbeef))
	if r == nil {
		t.Fatal("expected match")
	}
	if r.Prefix != "dead" || r.Suffix != "ee" || r.Mode != ModeLower {
		t.Fatalf("result = %+v", r)
	}
}

func TestMatchChecksum(t *testing.T) {
	addr := common.HexToAddress(deadbeef)
	checksum := crypto.ChecksumHex(deadbeef)[2:]

	// Every casing of "dead" matches iff the checksum text starts with it.
	for mask := 0; mask < 16; mask++ {
		var b strings.Builder
		for i, c := range "dead" {
			if mask&(1<<i) != 0 {
				c -= 'a' - 'A'
			}
			b.WriteRune(c)
		}
		pat := b.String()
		m := mustMatcher(t, Pattern{Prefix: pat, Mode: ModeChecksum})

		want := strings.HasPrefix(checksum, pat)
		if got := m.MatchAddress(addr) != nil; got != want {
			t.Errorf("MatchAddress %q against %s: got %v want %v", pat, checksum, got, want)
		}
		if got := m.MatchString("0x" + checksum) != nil; got != want {
			t.Errorf("MatchString %q against %s: got %v want %v", pat, checksum, got, want)
		}
	}

	// The literal checksum prefix always matches and reports checksum text.
	m := mustMatcher(t, Pattern{Prefix: checksum[:4], Suffix: checksum[36:], Mode: ModeChecksum})
	r := m.MatchAddress(addr)
	if r == nil {
		t.Fatal("checksum prefix did not match")
	}
	if r.Prefix != checksum[:4] || r.Suffix != checksum[36:] {
		t.Fatalf("result = %+v", r)
	}
}

func TestMatchEIP55Vector(t *testing.T) {
	addr := common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	if mustMatcher(t, Pattern{Prefix: "5aAeb6", Mode: ModeChecksum}).MatchAddress(addr) == nil {
		t.Fatal("5aAeb6 should match")
	}
	if mustMatcher(t, Pattern{Prefix: "5aaeb6", Mode: ModeChecksum}).MatchAddress(addr) != nil {
		t.Fatal("5aaeb6 should not match in checksum mode")
	}
	if mustMatcher(t, Pattern{Prefix: "5aaeb6", Mode: ModeLower}).MatchAddress(addr) == nil {
		t.Fatal("5aaeb6 should match in lower mode")
	}
	if mustMatcher(t, Pattern{Suffix: "BeAed", Mode: ModeChecksum}).MatchAddress(addr) == nil {
		t.Fatal("BeAed suffix should match")
	}
}

func TestMatchStringRejectsBadLength(t *testing.T) {
	m := mustMatcher(t, Pattern{Prefix: "de"})
	if m.MatchString("0xdead") != nil {
		t.Fatal("short address matched")
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name string
		p    Pattern
		want error
	}{
		{"empty", Pattern{}, ErrNoPattern},
		{"only 0x", Pattern{Prefix: "0x"}, ErrInvalidHex},
		{"non hex prefix", Pattern{Prefix: "xyz"}, ErrInvalidHex},
		{"non hex suffix", Pattern{Suffix: "g0"}, ErrInvalidHex},
		{"too long", Pattern{Prefix: strings.Repeat("a", 30), Suffix: strings.Repeat("b", 11)}, ErrPatternTooLong},
		{"bad mode", Pattern{Prefix: "a", Mode: "upper"}, ErrInvalidMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMatcher(tt.p); !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNormalizeKeepsChecksumCase(t *testing.T) {
	p, err := Pattern{Prefix: "0xDeAd", Suffix: "BeEf", Mode: ModeChecksum}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if p.Prefix != "DeAd" || p.Suffix != "BeEf" {
		t.Fatalf("normalized = %+v", p)
	}
}

func TestExpectedAttempts(t *testing.T) {
	tests := []struct {
		p    Pattern
		want float64
	}{
		{Pattern{Prefix: "dead"}, 65536},
		{Pattern{Suffix: "beef"}, 65536},
		{Pattern{Prefix: "de", Suffix: "ef"}, 65536},
		{Pattern{Prefix: "a", Suffix: "bcd"}, math.Pow(16, 4)},
		{Pattern{Prefix: "c0ffee"}, 16777216},
	}
	for _, tt := range tests {
		if got := tt.p.ExpectedAttempts(); got != tt.want {
			t.Errorf("%+v: got %v want %v", tt.p, got, tt.want)
		}
	}
}
