package generator

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"

	"EthVanity/internal/crypto"
	"EthVanity/internal/hd"
	"EthVanity/internal/mnemonic"
	"EthVanity/internal/secure"
	"EthVanity/pkg/logx"
)

// worker owns all of its derivation state; nothing here is shared.
type worker struct {
	e  *Engine
	id int
	ad *crypto.Addresser
}

func newWorker(e *Engine, id int) *worker {
	return &worker{e: e, id: id, ad: crypto.NewAddresser()}
}

// runRandom: fresh mnemonic → seed → indices 0..K-1, until stopped.
func (w *worker) runRandom() {
	for w.e.running() {
		if err := w.searchMnemonic(); err != nil {
			w.e.fail(err)
			return
		}
	}
}

func (w *worker) searchMnemonic() error {
	phrase, err := mnemonic.Generate(w.e.entropy)
	if err != nil {
		return err
	}
	seed := mnemonic.Seed(phrase, w.e.opt.Passphrase)
	defer secure.Wipe(seed)

	d, err := hd.NewDeriver(seed, w.e.path)
	if err != nil {
		if errors.Is(err, hd.ErrInvalidChild) || errors.Is(err, hd.ErrUnusableSeed) {
			w.e.skipped.Add(1)
			logx.S().Debugw("mnemonic skipped", "worker", w.id, "err", err)
			return nil
		}
		return err
	}
	defer d.Close()
	w.e.mnemonics.Add(1)

	for i := 0; i < w.e.opt.AddressesPerMnemonic; i++ {
		if !w.e.running() {
			return nil
		}
		if w.check(d, seed, phrase, uint32(i)) {
			return nil
		}
	}
	return nil
}

// runFixed walks start+id, start+id+N, ... of the one fixed seed.
func (w *worker) runFixed(seed []byte) {
	d, err := hd.NewDeriver(seed, w.e.path)
	if err != nil {
		w.e.fail(err)
		return
	}
	defer d.Close()

	stride := uint64(w.e.opt.Workers)
	for idx := uint64(w.e.opt.StartIndex) + uint64(w.id); idx < hdkeychain.HardenedKeyStart; idx += stride {
		if !w.e.keepGoing(uint32(idx)) {
			return
		}
		w.check(d, seed, w.e.opt.Mnemonic, uint32(idx))
	}
}

// check derives, addresses and tests one index. It reports whether a match
// was published. The private key is zeroed on every return path.
func (w *worker) check(d *hd.Deriver, seed []byte, phrase string, index uint32) bool {
	priv, err := d.Key(index)
	if err != nil {
		w.e.skipped.Add(1)
		logx.S().Debugw("index skipped", "worker", w.id, "index", index, "err", err)
		return false
	}
	defer secure.WipeKey(priv)

	addr := w.ad.Address(priv)
	n := w.e.addresses.Add(1)

	mr := w.e.matcher.MatchAddress(addr)
	if mr == nil {
		return false
	}

	key := priv.Serialize()
	if err := hd.Verify(seed, w.e.path, index, key, addr); err != nil {
		secure.Wipe(key)
		logx.S().Errorw("match rejected", "worker", w.id, "index", index, "err", err)
		return false
	}

	lower := crypto.LowerHex(addr)
	return w.e.publish(&Match{
		Mnemonic:   phrase,
		Passphrase: w.e.opt.Passphrase,
		Path:       hd.FormatPath(w.e.path, index),
		Index:      index,
		PrivateKey: key,
		Address:    "0x" + lower,
		Checksum:   crypto.ChecksumHex(lower),
		Result:     *mr,
		Worker:     w.id,
		Attempt:    n,
	})
}
