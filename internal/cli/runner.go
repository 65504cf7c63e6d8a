package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"EthVanity/internal/generator"
	"EthVanity/internal/patterns"
	"EthVanity/internal/report"
	"EthVanity/pkg/config"
	"EthVanity/pkg/i18n"
	"EthVanity/pkg/logx"
)

// Process exit codes.
const (
	ExitFound     = 0
	ExitConfig    = 1
	ExitFatal     = 2
	ExitCancelled = 130
)

// promptValue on a flag means "read it from the terminal".
const promptValue = "-"

var errExtraArgument = errors.New("more than one positional pattern given")

type Runner struct {
	in     *bufio.Reader
	Stdout io.Writer
	Stderr io.Writer
	Msgs   i18n.Messages
	Cores  int // default --threads; 0 = all CPUs

	// readSecret reads a line without echo; swapped in tests.
	readSecret func(prompt string) (string, error)
}

func NewRunner(msgs i18n.Messages) *Runner {
	r := &Runner{
		in:     bufio.NewReader(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Msgs:   msgs,
	}
	r.readSecret = r.promptSecret
	return r
}

// Run parses args, runs one search and returns the process exit code.
// SIGINT/SIGTERM cancel the search.
func (r *Runner) Run(args []string) int {
	ctx, stop := withInterrupt(context.Background())
	defer stop()
	return r.RunContext(ctx, args)
}

func (r *Runner) RunContext(ctx context.Context, args []string) int {
	opt, err := r.parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return ExitFound
	}
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return ExitConfig
	}

	if opt.Mnemonic == promptValue {
		if opt.Mnemonic, err = r.readSecret("Mnemonic: "); err != nil {
			fmt.Fprintf(r.Stderr, "error: read mnemonic: %v\n", err)
			return ExitConfig
		}
	}
	if opt.Passphrase == promptValue {
		if opt.Passphrase, err = r.readSecret(r.Msgs.PassphrasePrompt); err != nil {
			fmt.Fprintf(r.Stderr, "error: read passphrase: %v\n", err)
			return ExitConfig
		}
	}

	e, err := generator.New(opt)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return ExitConfig
	}
	report.PrintBanner(r.Stdout, r.Msgs, e.Options())

	out, err := e.Run(ctx)
	if err != nil {
		logx.S().Errorw("search failed", "err", err)
		if out != nil {
			report.PrintCancelled(r.Stdout, r.Msgs, out.Stats)
		}
		return ExitFatal
	}

	switch out.State {
	case generator.StateFound:
		defer out.Match.Release()
		report.PrintMatch(r.Stdout, r.Msgs, out.Match, out.Stats)
		return ExitFound
	default:
		report.PrintCancelled(r.Stdout, r.Msgs, out.Stats)
		return ExitCancelled
	}
}

// parse accepts flags and the positional prefix in any order and merges
// them over the search config file.
func (r *Runner) parse(args []string) (generator.Options, error) {
	fs := flag.NewFlagSet("ethvanity", flag.ContinueOnError)
	fs.SetOutput(r.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: ethvanity [flags] <prefix>")
		fs.PrintDefaults()
	}

	var (
		prefix     string
		suffix     = fs.String("suffix", "", "hex suffix to match")
		mode       = fs.String("mode", "", "case policy: lower|checksum")
		threads    = fs.Int("threads", 0, "worker count (default: cores from app.yaml, else all CPUs)")
		path       = fs.String("derivation-path", "", "base derivation path, address index appended")
		fanOut     = fs.Int("addresses-per-mnemonic", 0, "indices checked per random mnemonic")
		phrase     = fs.String("mnemonic", "", "search indices of this mnemonic instead of random ones (- to prompt)")
		passphrase = fs.String("passphrase", "", "BIP-39 passphrase (- to prompt without echo)")
		start      = fs.Uint("start-index", 0, "first index in fixed-mnemonic mode")
		progress   bool
		interval   = fs.Float64("progress-interval", 0, "seconds between progress reports")
		configPath = fs.String("config", filepath.Join("configs", "search.yaml"), "search defaults file")
	)
	fs.BoolVar(&progress, "progress", false, "report progress periodically")
	fs.BoolVar(&progress, "p", false, "shorthand for --progress")

	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return generator.Options{}, err
		}
		if fs.NArg() == 0 {
			break
		}
		if prefix != "" {
			return generator.Options{}, fmt.Errorf("%w: %q", errExtraArgument, fs.Arg(0))
		}
		prefix = fs.Arg(0)
		rest = fs.Args()[1:]
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*configPath)
	if err != nil {
		return generator.Options{}, err
	}

	if *start > uint(^uint32(0)) {
		return generator.Options{}, fmt.Errorf("%w: %d", generator.ErrInvalidStartIndex, *start)
	}
	opt := generator.Options{
		Prefix:               prefix,
		Suffix:               *suffix,
		Mode:                 patterns.Mode(cfg.Mode),
		Workers:              r.Cores,
		DerivationPath:       cfg.DerivationPath,
		AddressesPerMnemonic: cfg.AddressesPerMnemonic,
		Mnemonic:             strings.TrimSpace(*phrase),
		Passphrase:           *passphrase,
		StartIndex:           uint32(*start),
		Progress:             cfg.Progress,
		ProgressInterval:     cfg.ProgressInterval,
	}
	if set["mode"] {
		opt.Mode = patterns.Mode(*mode)
	}
	if set["threads"] {
		if *threads < 1 {
			return generator.Options{}, fmt.Errorf("--threads must be at least 1, got %d", *threads)
		}
		opt.Workers = *threads
	}
	if set["derivation-path"] {
		opt.DerivationPath = *path
	}
	if set["addresses-per-mnemonic"] {
		if *fanOut < 1 {
			return generator.Options{}, fmt.Errorf("%w: %d", generator.ErrInvalidFanOut, *fanOut)
		}
		opt.AddressesPerMnemonic = *fanOut
	}
	if set["progress"] || set["p"] {
		opt.Progress = progress
	}
	if set["progress-interval"] {
		if *interval <= 0 {
			return generator.Options{}, fmt.Errorf("--progress-interval must be positive, got %v", *interval)
		}
		opt.ProgressInterval = time.Duration(*interval * float64(time.Second))
	}
	if set["start-index"] && opt.Mnemonic == "" {
		return generator.Options{}, errors.New("--start-index requires --mnemonic")
	}
	if opt.Progress {
		opt.OnProgress = report.LogProgress(r.Msgs)
	}

	return opt, nil
}

// promptSecret reads without echo from a terminal, or a plain line when
// stdin is piped.
func (r *Runner) promptSecret(prompt string) (string, error) {
	fmt.Fprint(r.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(r.Stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	text, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && text != "") {
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

func withInterrupt(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-ch:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		signal.Stop(ch)
		cancel()
	}
}
