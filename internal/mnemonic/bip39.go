package mnemonic

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"

	bip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"

	"EthVanity/internal/secure"
)

// EntropyBits is the strength of generated mnemonics (12 words).
const EntropyBits = 128

var (
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrEntropySource   = errors.New("entropy source unavailable")
)

// Generate draws 128 bits from r (crypto/rand when nil) and encodes them as a
// 12-word English BIP-39 mnemonic. The entropy buffer is wiped before return.
func Generate(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	entropy := make([]byte, EntropyBits/8)
	defer secure.Wipe(entropy)

	if _, err := io.ReadFull(r, entropy); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntropySource, err)
	}
	return bip39.NewMnemonic(entropy)
}

// CheckSource reads one block from r to make sure it can serve the search.
func CheckSource(r io.Reader) error {
	if r == nil {
		r = rand.Reader
	}
	sample := make([]byte, EntropyBits/8)
	defer secure.Wipe(sample)
	if _, err := io.ReadFull(r, sample); err != nil {
		return fmt.Errorf("%w: %v", ErrEntropySource, err)
	}
	return nil
}

// Normalize collapses whitespace and lowercases the words of a phrase.
func Normalize(phrase string) string {
	return strings.ToLower(strings.Join(strings.Fields(phrase), " "))
}

// Validate checks word list membership and the checksum bits.
func Validate(phrase string) error {
	if _, err := bip39.EntropyFromMnemonic(Normalize(phrase)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return nil
}

// Entropy decodes a phrase back to the entropy it encodes.
func Entropy(phrase string) ([]byte, error) {
	ent, err := bip39.EntropyFromMnemonic(Normalize(phrase))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return ent, nil
}

// Seed derives the 64-byte BIP-39 seed: PBKDF2-HMAC-SHA512, 2048 rounds,
// salt "mnemonic"+passphrase, both inputs NFKD-normalized.
// The caller owns the returned buffer and must wipe it.
func Seed(phrase, passphrase string) []byte {
	return bip39.NewSeed(norm.NFKD.String(phrase), norm.NFKD.String(passphrase))
}
