// Package hd walks BIP-32 derivation paths over a BIP-39 seed.
//
// The hot path uses hdkeychain directly: the base path (m/44'/60'/0'/0 by
// default) is derived once per seed and cached, so each address index costs a
// single normal child derivation. Every intermediate extended key is zeroed as
// soon as its child exists.
package hd

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"

	"EthVanity/internal/secure"
)

var (
	// ErrInvalidChild is returned when a derived scalar is zero or not below
	// the curve order. Callers skip to the next index.
	ErrInvalidChild = hdkeychain.ErrInvalidChild
	// ErrUnusableSeed is returned when the master key itself is invalid.
	ErrUnusableSeed    = hdkeychain.ErrUnusableSeed
	ErrIndexOutOfRange = errors.New("address index out of non-hardened range")
	ErrVerify          = errors.New("derivation cross-check failed")
)

// deriveChild is swapped in tests to exercise the invalid-child branch.
var deriveChild = func(k *hdkeychain.ExtendedKey, i uint32) (*hdkeychain.ExtendedKey, error) {
	return k.Derive(i)
}

// Deriver holds the extended key at the base path of one seed.
// It is owned by a single goroutine.
type Deriver struct {
	base *hdkeychain.ExtendedKey
	path accounts.DerivationPath
}

// NewDeriver computes the master key from seed and walks it to base.
func NewDeriver(seed []byte, base accounts.DerivationPath) (*Deriver, error) {
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("master key: %w", err)
	}
	for _, c := range base {
		child, err := deriveChild(key, c)
		secure.WipeExtended(key)
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", base, err)
		}
		key = child
	}
	return &Deriver{base: key, path: base}, nil
}

// Path returns the base path.
func (d *Deriver) Path() accounts.DerivationPath { return d.path }

// Key derives the private key at base/index. The caller must zero it.
func (d *Deriver) Key(index uint32) (*btcec.PrivateKey, error) {
	if index >= hdkeychain.HardenedKeyStart {
		return nil, ErrIndexOutOfRange
	}
	child, err := deriveChild(d.base, index)
	if err != nil {
		return nil, err
	}
	defer secure.WipeExtended(child)
	return child.ECPrivKey()
}

// Close zeroes the cached base key.
func (d *Deriver) Close() {
	if d == nil {
		return
	}
	secure.WipeExtended(d.base)
	d.base = nil
}

// DeriveKey returns the 32-byte private key at base/index.
func DeriveKey(seed []byte, base accounts.DerivationPath, index uint32) ([]byte, error) {
	d, err := NewDeriver(seed, base)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	priv, err := d.Key(index)
	if err != nil {
		return nil, err
	}
	defer secure.WipeKey(priv)
	return priv.Serialize(), nil
}

// Verify re-derives base/index with go-ethereum-hdwallet and checks that it
// yields the same private key and address. The re-derived key is zeroed; the
// wallet's own master key is unexported and stays until collected.
func Verify(seed []byte, base accounts.DerivationPath, index uint32, key []byte, addr common.Address) error {
	w, err := hdwallet.NewFromSeed(seed)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerify, err)
	}
	acct, err := w.Derive(WithIndex(base, index), false)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerify, err)
	}
	if acct.Address != addr {
		return fmt.Errorf("%w: address %s, want %s", ErrVerify, addr.Hex(), acct.Address.Hex())
	}
	priv, err := w.PrivateKey(acct)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerify, err)
	}
	defer secure.WipeECDSA(priv)
	want := gethcrypto.FromECDSA(priv)
	defer secure.Wipe(want)
	if subtle.ConstantTimeCompare(want, key) != 1 {
		return fmt.Errorf("%w: private key mismatch at %s", ErrVerify, FormatPath(base, index))
	}
	return nil
}
