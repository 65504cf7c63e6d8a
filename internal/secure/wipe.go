// Package secure erases key material held in memory.
//
// Every helper is nil-safe so it can be deferred right after the buffer or
// key is created; deferred calls also run while a panic unwinds the stack.
package secure

import (
	"crypto/ecdsa"
	"runtime"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// Wipe overwrites every byte of the given buffers with zero.
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
		// keep the store from being treated as dead
		runtime.KeepAlive(b)
	}
}

// WipeKey zeroes the scalar of a secp256k1 private key.
func WipeKey(k *btcec.PrivateKey) {
	if k == nil {
		return
	}
	k.Zero()
}

// WipeExtended zeroes the key and chain code of a BIP-32 extended key.
func WipeExtended(k *hdkeychain.ExtendedKey) {
	if k == nil {
		return
	}
	k.Zero()
}

// WipeECDSA zeroes the scalar words of a stdlib ECDSA key, as returned by
// go-ethereum and go-ethereum-hdwallet.
func WipeECDSA(k *ecdsa.PrivateKey) {
	if k == nil || k.D == nil {
		return
	}
	clear(k.D.Bits())
	k.D.SetInt64(0)
}
