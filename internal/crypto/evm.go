package crypto

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"

	"EthVanity/internal/secure"
)

const hextable = "0123456789abcdef"

// Addresser turns private keys into addresses with a reusable Keccak state.
// Not safe for concurrent use; each worker owns one.
type Addresser struct {
	hasher gethcrypto.KeccakState
	hash   [32]byte
}

func NewAddresser() *Addresser {
	return &Addresser{hasher: gethcrypto.NewKeccakState()}
}

// Address returns the last 20 bytes of Keccak-256 over the uncompressed
// public key without its 0x04 tag.
func (a *Addresser) Address(priv *btcec.PrivateKey) common.Address {
	pub := priv.PubKey().SerializeUncompressed()
	a.hasher.Reset()
	_, _ = a.hasher.Write(pub[1:])
	_, _ = a.hasher.Read(a.hash[:])

	var addr common.Address
	copy(addr[:], a.hash[12:])
	return addr
}

// ToAddress returns the lowercase (no 0x) and EIP-55 (with 0x) encodings of
// the address owned by a 32-byte private key.
func ToAddress(key []byte) (lower, checksum string, err error) {
	if len(key) != 32 {
		return "", "", fmt.Errorf("private key must be 32 bytes, got %d", len(key))
	}
	var s btcec.ModNScalar
	overflow := s.SetByteSlice(key)
	invalid := overflow || s.IsZero()
	s.Zero()
	if invalid {
		return "", "", fmt.Errorf("private key out of curve range")
	}
	priv, _ := btcec.PrivKeyFromBytes(key)
	defer secure.WipeKey(priv)

	addr := NewAddresser().Address(priv)
	lower = LowerHex(addr)
	return lower, ChecksumHex(lower), nil
}

// EncodeLower writes the 40-char lowercase hex of addr into dst.
func EncodeLower(dst *[40]byte, addr common.Address) {
	for i, v := range addr {
		dst[i*2] = hextable[v>>4]
		dst[i*2+1] = hextable[v&0x0f]
	}
}

// LowerHex is the lowercase hex of addr without 0x.
func LowerHex(addr common.Address) string {
	var buf [40]byte
	EncodeLower(&buf, addr)
	return string(buf[:])
}

// ApplyChecksum rewrites lowercase hex in place with EIP-55 casing: a letter
// is upper-cased when the matching nibble of Keccak-256(lowercase) is >= 8.
func ApplyChecksum(buf []byte) {
	hash := gethcrypto.Keccak256(buf)
	for i, c := range buf {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			buf[i] = c - 'a' + 'A'
		}
	}
}

// ChecksumHex returns 0x + the EIP-55 encoding of a lowercase hex address.
// Input without the 0x prefix is expected; upper-case input is folded first.
func ChecksumHex(lower string) string {
	buf := make([]byte, 2+len(lower))
	buf[0], buf[1] = '0', 'x'
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'A' && c <= 'F' {
			c += 'a' - 'A'
		}
		buf[2+i] = c
	}
	ApplyChecksum(buf[2:])
	return string(buf)
}

// KeyHex is the 0x-prefixed hex of a private key.
func KeyHex(key []byte) string {
	return hexutil.Encode(key)
}
