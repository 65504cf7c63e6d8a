package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/accounts"

	"EthVanity/internal/mnemonic"
	"EthVanity/internal/patterns"
	"EthVanity/internal/secure"
	"EthVanity/pkg/logx"
)

var (
	ErrAlreadyRun     = errors.New("engine already ran; create a new one per search")
	ErrSpaceExhausted = errors.New("non-hardened index space exhausted")
)

// Engine coordinates one search. Workers share only the atomic counters, the
// state word and the single-assignment result slot.
type Engine struct {
	opt     Options
	matcher *patterns.Matcher
	path    accounts.DerivationPath
	entropy io.Reader

	state  atomic.Int32
	result atomic.Pointer[Match]
	frozen atomic.Pointer[Stats]

	mnemonics atomic.Uint64
	addresses atomic.Uint64
	skipped   atomic.Uint64

	start atomic.Pointer[time.Time]

	errOnce sync.Once
	err     error
}

// New validates opt and prepares an idle engine.
func New(opt Options) (*Engine, error) {
	c, err := opt.compile()
	if err != nil {
		return nil, err
	}
	e := &Engine{opt: c.opt, matcher: c.matcher, path: c.path}
	if c.opt.Entropy != nil {
		e.entropy = &lockedReader{r: c.opt.Entropy}
	}
	return e, nil
}

// Options returns the normalized options.
func (e *Engine) Options() Options { return e.opt }

func (e *Engine) State() State { return State(e.state.Load()) }

// Stats returns live counters while running and the frozen snapshot after
// the search stopped.
func (e *Engine) Stats() Stats {
	if s := e.frozen.Load(); s != nil {
		return *s
	}
	return e.snapshot()
}

func (e *Engine) snapshot() Stats {
	var elapsed time.Duration
	if t := e.start.Load(); t != nil {
		elapsed = time.Since(*t)
	}
	return Stats{
		Mnemonics: e.mnemonics.Load(),
		Addresses: e.addresses.Load(),
		Skipped:   e.skipped.Load(),
		Elapsed:   elapsed,
	}
}

// Run blocks until a match is found, ctx is cancelled or a fatal error
// occurs. Cancellation is not an error: the outcome has StateCancelled and no
// match.
func (e *Engine) Run(ctx context.Context) (*Outcome, error) {
	if !e.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return nil, ErrAlreadyRun
	}

	var seed []byte
	if e.opt.FixedMnemonic() {
		// (mnemonic, passphrase) is fixed, so the slow KDF runs once.
		seed = mnemonic.Seed(e.opt.Mnemonic, e.opt.Passphrase)
		defer secure.Wipe(seed)
	} else if err := mnemonic.CheckSource(e.entropy); err != nil {
		e.state.Store(int32(StateCancelled))
		return nil, err
	}

	e.logStart()
	if e.opt.FixedMnemonic() {
		e.mnemonics.Store(1)
	}
	now := time.Now()
	e.start.Store(&now)

	done := make(chan struct{})
	var aux sync.WaitGroup
	aux.Add(1)
	go func() {
		defer aux.Done()
		select {
		case <-ctx.Done():
			if e.stop(StateCancelled) {
				logx.S().Infow("search cancelled", "reason", ctx.Err())
			}
		case <-done:
		}
	}()
	if e.opt.Progress {
		aux.Add(1)
		go func() {
			defer aux.Done()
			e.reportProgress(done)
		}()
	}

	var wg sync.WaitGroup
	wg.Add(e.opt.Workers)
	for i := 0; i < e.opt.Workers; i++ {
		w := newWorker(e, i)
		go func() {
			defer wg.Done()
			if e.opt.FixedMnemonic() {
				w.runFixed(seed)
			} else {
				w.runRandom()
			}
		}()
	}
	wg.Wait()

	// Every worker returned while still running: the index space ran out.
	if e.State() == StateRunning {
		e.fail(ErrSpaceExhausted)
	}
	close(done)
	aux.Wait()

	out := &Outcome{State: e.State(), Stats: e.Stats()}
	if out.State == StateFound {
		out.Match = e.result.Load()
	} else if m := e.result.Swap(nil); m != nil {
		m.Release()
	}

	logx.S().Infow("stopped",
		"state", out.State.String(),
		"elapsed", humanDuration(out.Stats.Elapsed),
		"mnemonics", out.Stats.Mnemonics,
		"attempts", out.Stats.Addresses,
		"skipped", out.Stats.Skipped,
	)
	return out, e.err
}

func (e *Engine) running() bool { return e.State() == StateRunning }

// keepGoing decides whether a worker may test index. In fixed-mnemonic mode
// a published match only stops workers once they pass its index, so the
// lowest matching index always wins regardless of the worker count.
func (e *Engine) keepGoing(index uint32) bool {
	switch e.State() {
	case StateRunning:
		return true
	case StateFound:
		if !e.opt.FixedMnemonic() {
			return false
		}
		best := e.result.Load()
		return best != nil && index < best.Index
	default:
		return false
	}
}

// stop moves Running to s and freezes the statistics. Only the first caller
// wins.
func (e *Engine) stop(s State) bool {
	if !e.state.CompareAndSwap(int32(StateRunning), int32(s)) {
		return false
	}
	e.freeze()
	return true
}

func (e *Engine) freeze() {
	s := e.snapshot()
	e.frozen.Store(&s)
}

func (e *Engine) fail(err error) {
	e.errOnce.Do(func() {
		e.err = err
		logx.S().Errorw("search aborted", "err", err)
	})
	e.stop(StateCancelled)
}

// publish offers m to the result slot. Random mode keeps the first match;
// fixed-mnemonic mode keeps the lowest index. A rejected or replaced match is
// released immediately.
func (e *Engine) publish(m *Match) bool {
	if e.State() == StateCancelled {
		m.Release()
		return false
	}
	for {
		cur := e.result.Load()
		if cur != nil && (!e.opt.FixedMnemonic() || cur.Index <= m.Index) {
			m.Release()
			return false
		}
		if !e.result.CompareAndSwap(cur, m) {
			continue
		}
		if cur != nil {
			cur.Release()
			e.freeze()
		} else {
			e.stop(StateFound)
		}
		logx.S().Infow("FOUND",
			"kind", m.Result.Kind,
			"address", m.Checksum,
			"path", m.Path,
			"attempt", m.Attempt,
			"worker", m.Worker,
		)
		return true
	}
}

func (e *Engine) reportProgress(done <-chan struct{}) {
	ticker := time.NewTicker(e.opt.ProgressInterval)
	defer ticker.Stop()
	expected := e.matcher.Pattern().ExpectedAttempts()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if !e.running() {
				continue
			}
			p := newProgress(e.snapshot(), expected)
			if e.opt.OnProgress != nil {
				e.opt.OnProgress(p)
				continue
			}
			logx.S().Infow("progress",
				"mnemonics", p.Stats.Mnemonics,
				"attempts", p.Stats.Addresses,
				"rate_addr_per_sec", fmt.Sprintf("%.2f", p.Rate),
				"eta_sec", fmt.Sprintf("%.0f", p.ETA),
				"elapsed", humanDuration(p.Stats.Elapsed),
			)
		}
	}
}

func (e *Engine) logStart() {
	mode := "random"
	if e.opt.FixedMnemonic() {
		mode = "mnemonic"
	}
	logx.S().Infow("search started",
		"source", mode,
		"prefix", e.opt.Prefix,
		"suffix", e.opt.Suffix,
		"match_mode", string(e.opt.Mode),
		"workers", e.opt.Workers,
		"path", e.opt.DerivationPath,
		"addresses_per_mnemonic", e.opt.AddressesPerMnemonic,
		"start_index", e.opt.StartIndex,
		"mnemonic_set", e.opt.FixedMnemonic(),
		"passphrase_set", e.opt.Passphrase != "",
	)
}

// lockedReader serializes a caller-supplied entropy source across workers.
type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}

// ------------------------------- helpers ------------------------------------

func humanDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
}
