package mnemonic

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/rand"
	"strings"
	"testing"

	bip39 "github.com/tyler-smith/go-bip39"
)

const abandon = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestGenerateRoundTrip(t *testing.T) {
	// Deterministic source so the expected entropy can be replayed.
	src := rand.New(rand.NewSource(7))
	replay := rand.New(rand.NewSource(7))

	seen := make(map[string]struct{})
	for i := 0; i < 64; i++ {
		phrase, err := Generate(src)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if n := len(strings.Fields(phrase)); n != 12 {
			t.Fatalf("got %d words, want 12", n)
		}
		if !bip39.IsMnemonicValid(phrase) {
			t.Fatalf("generated mnemonic fails checksum: %q", phrase)
		}

		want := make([]byte, 16)
		_, _ = replay.Read(want)
		got, err := Entropy(phrase)
		if err != nil {
			t.Fatalf("Entropy: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("round trip mismatch: got %x want %x", got, want)
		}

		if _, dup := seen[phrase]; dup {
			t.Fatalf("duplicate mnemonic %q", phrase)
		}
		seen[phrase] = struct{}{}
	}
}

func TestGenerateCryptoSource(t *testing.T) {
	phrase, err := Generate(nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := Validate(phrase); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestGenerateSourceFailure(t *testing.T) {
	if _, err := Generate(failingReader{}); !errors.Is(err, ErrEntropySource) {
		t.Fatalf("want ErrEntropySource, got %v", err)
	}
	if err := CheckSource(failingReader{}); !errors.Is(err, ErrEntropySource) {
		t.Fatalf("want ErrEntropySource, got %v", err)
	}
	if err := CheckSource(nil); err != nil {
		t.Fatalf("crypto/rand read: %v", err)
	}
}

func TestEntropyKnownVector(t *testing.T) {
	ent, err := Entropy(abandon)
	if err != nil {
		t.Fatalf("Entropy: %v", err)
	}
	if !bytes.Equal(ent, make([]byte, 16)) {
		t.Fatalf("got %x, want all zero", ent)
	}

	phrase := "legal winner thank year wave sausage worth useful legal winner thank yellow"
	ent, err = Entropy(phrase)
	if err != nil {
		t.Fatalf("Entropy: %v", err)
	}
	if !bytes.Equal(ent, bytes.Repeat([]byte{0x7f}, 16)) {
		t.Fatalf("got %x, want 7f..7f", ent)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		phrase  string
		wantErr bool
	}{
		{"valid", abandon, false},
		{"extra whitespace", "  abandon abandon abandon abandon abandon abandon\tabandon abandon abandon abandon abandon about ", false},
		{"upper case", strings.ToUpper(abandon), false},
		{"bad checksum", strings.Replace(abandon, "about", "abandon", 1), true},
		{"unknown word", strings.Replace(abandon, "about", "zzzz", 1), true},
		{"short", "abandon abandon about", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.phrase)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidMnemonic) {
				t.Fatalf("want ErrInvalidMnemonic, got %v", err)
			}
		})
	}
}

func TestSeed(t *testing.T) {
	// BIP-39 reference vector (passphrase "TREZOR").
	want := "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"

	seed := Seed(abandon, "TREZOR")
	if got := hex.EncodeToString(seed); got != want {
		t.Fatalf("seed mismatch:\n  got:  %s\n  want: %s", got, want)
	}
	if len(seed) != 64 {
		t.Fatalf("seed length %d", len(seed))
	}

	again := Seed(abandon, "TREZOR")
	if !bytes.Equal(seed, again) {
		t.Fatal("seed derivation is not deterministic")
	}
	if bytes.Equal(seed, Seed(abandon, "TREZOR ")) {
		t.Fatal("passphrase change did not change the seed")
	}
	if bytes.Equal(seed, Seed(strings.Replace(abandon, "about", "above", 1), "TREZOR")) {
		t.Fatal("mnemonic change did not change the seed")
	}
}

func TestSeedNormalizesPassphrase(t *testing.T) {
	// "é" precomposed vs decomposed must yield the same seed.
	composed := Seed(abandon, "caf\u00e9")
	decomposed := Seed(abandon, "cafe\u0301")
	if !bytes.Equal(composed, decomposed) {
		t.Fatal("passphrase is not NFKD normalized")
	}
}
