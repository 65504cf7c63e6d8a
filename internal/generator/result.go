package generator

import (
	"EthVanity/internal/crypto"
	"EthVanity/internal/patterns"
	"EthVanity/internal/secure"
)

// Match is the published result of a search. It is only created once every
// field is computed and the key has been re-derived independently.
// PrivateKey is owned by the Match; call Release once it has been reported.
type Match struct {
	Mnemonic   string // empty only if the key did not come from a mnemonic
	Passphrase string
	Path       string // full path including the index
	Index      uint32
	PrivateKey []byte
	Address    string // 0x + lowercase hex
	Checksum   string // 0x + EIP-55
	Result     patterns.MatchResult
	Worker     int
	Attempt    uint64 // address counter value at the hit
}

// PrivateKeyHex is the 0x-prefixed private key.
func (m *Match) PrivateKeyHex() string {
	return crypto.KeyHex(m.PrivateKey)
}

// Release wipes the private key bytes. Safe to call more than once.
func (m *Match) Release() {
	if m == nil {
		return
	}
	secure.Wipe(m.PrivateKey)
	m.PrivateKey = nil
}

// Outcome is what Run returns: the final state, the match when found, and the
// statistics frozen at the moment the search stopped.
type Outcome struct {
	State State
	Match *Match
	Stats Stats
}
