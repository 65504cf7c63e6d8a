package generator

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/ethereum/go-ethereum/accounts"

	"EthVanity/internal/hd"
	"EthVanity/internal/mnemonic"
	"EthVanity/internal/patterns"
)

const (
	DefaultAddressesPerMnemonic = 10
	DefaultProgressInterval     = 5 * time.Second
)

var (
	ErrInvalidFanOut     = errors.New("addresses per mnemonic must be between 1 and 2^31")
	ErrInvalidStartIndex = errors.New("start index must be below 2^31")
)

// Options configures one search. Setting Mnemonic switches from random mode
// (fresh mnemonic per attempt, AddressesPerMnemonic indices each) to
// fixed-mnemonic mode (one seed, indices from StartIndex upwards).
type Options struct {
	Prefix string
	Suffix string
	Mode   patterns.Mode

	Workers              int    // 0 = runtime.NumCPU()
	DerivationPath       string // base path, address index appended
	AddressesPerMnemonic int

	Mnemonic   string
	Passphrase string // BIP-39 passphrase (not encryption!)
	StartIndex uint32

	Progress         bool
	ProgressInterval time.Duration
	OnProgress       func(Progress) // nil = log through logx

	// Entropy overrides crypto/rand for mnemonic generation (tests only).
	Entropy io.Reader
}

// FixedMnemonic reports whether the search walks indices of one mnemonic.
func (o Options) FixedMnemonic() bool { return o.Mnemonic != "" }

type compiled struct {
	opt     Options
	matcher *patterns.Matcher
	path    accounts.DerivationPath
}

// Validate normalizes o and reports configuration errors. It never starts
// any work.
func (o Options) Validate() (Options, error) {
	c, err := o.compile()
	if err != nil {
		return o, err
	}
	return c.opt, nil
}

func (o Options) compile() (*compiled, error) {
	m, err := patterns.NewMatcher(patterns.Pattern{Prefix: o.Prefix, Suffix: o.Suffix, Mode: o.Mode})
	if err != nil {
		return nil, err
	}
	p := m.Pattern()
	o.Prefix, o.Suffix, o.Mode = p.Prefix, p.Suffix, p.Mode

	if o.DerivationPath == "" {
		o.DerivationPath = hd.DefaultPath
	}
	path, err := hd.ParsePath(o.DerivationPath)
	if err != nil {
		return nil, err
	}

	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.AddressesPerMnemonic == 0 {
		o.AddressesPerMnemonic = DefaultAddressesPerMnemonic
	}
	if o.AddressesPerMnemonic < 0 || int64(o.AddressesPerMnemonic) > hdkeychain.HardenedKeyStart {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFanOut, o.AddressesPerMnemonic)
	}
	if o.ProgressInterval <= 0 {
		o.ProgressInterval = DefaultProgressInterval
	}

	if o.FixedMnemonic() {
		o.Mnemonic = mnemonic.Normalize(o.Mnemonic)
		if err := mnemonic.Validate(o.Mnemonic); err != nil {
			return nil, err
		}
		if o.StartIndex >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("%w: %d", ErrInvalidStartIndex, o.StartIndex)
		}
	}

	return &compiled{opt: o, matcher: m, path: path}, nil
}
