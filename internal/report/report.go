// Package report renders the search banner, the match and the statistics for
// the console. Output goes to stdout; logs stay on stderr.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"EthVanity/internal/generator"
	"EthVanity/internal/patterns"
	"EthVanity/pkg/i18n"
	"EthVanity/pkg/logx"
)

const labelWidth = 24

func line(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-*s %s\n", labelWidth, label, value)
}

// PrintBanner describes the search about to start. opt must be normalized.
func PrintBanner(w io.Writer, msgs i18n.Messages, opt generator.Options) {
	fmt.Fprintln(w, msgs.AppTitle)
	if opt.Prefix != "" {
		line(w, msgs.BannerPrefix, opt.Prefix)
	}
	if opt.Suffix != "" {
		line(w, msgs.BannerSuffix, opt.Suffix)
	}
	line(w, msgs.BannerMode, modeLabel(msgs, opt.Mode))
	line(w, msgs.BannerPath, opt.DerivationPath)
	if opt.FixedMnemonic() {
		line(w, msgs.BannerSource, msgs.DerivedFromFixed)
		line(w, msgs.BannerStartIndex, strconv.FormatUint(uint64(opt.StartIndex), 10))
	} else {
		line(w, msgs.BannerSource, msgs.DerivedFromRandom)
		line(w, msgs.BannerFanOut, strconv.Itoa(opt.AddressesPerMnemonic))
	}
	line(w, msgs.BannerThreads, strconv.Itoa(opt.Workers))
	expected := patterns.Pattern{Prefix: opt.Prefix, Suffix: opt.Suffix}.ExpectedAttempts()
	line(w, msgs.BannerDifficulty, FormatFloat(expected))
	fmt.Fprintln(w, msgs.BannerHint)
	fmt.Fprintln(w)
}

// PrintMatch writes every field needed to recover and verify the address,
// followed by the statistics.
func PrintMatch(w io.Writer, msgs i18n.Messages, m *generator.Match, s generator.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, msgs.FoundHeader)
	line(w, msgs.Address, m.Address)
	line(w, msgs.ChecksumAddress, m.Checksum)
	if m.Mnemonic != "" {
		line(w, msgs.Mnemonic, m.Mnemonic)
	}
	line(w, msgs.Index, strconv.FormatUint(uint64(m.Index), 10))
	line(w, msgs.Path, m.Path)
	line(w, msgs.PrivateKey, m.PrivateKeyHex())

	mode := modeLabel(msgs, m.Result.Mode)
	if m.Result.Prefix != "" {
		fmt.Fprintf(w, "  "+msgs.Matched+"\n", mode, msgs.ComponentPrefix, m.Result.Prefix)
	}
	if m.Result.Suffix != "" {
		fmt.Fprintf(w, "  "+msgs.Matched+"\n", mode, msgs.ComponentSuffix, m.Result.Suffix)
	}
	fmt.Fprintln(w, msgs.SecretsNotice)

	printStats(w, msgs, s)
}

// PrintCancelled reports a search that stopped without a match.
func PrintCancelled(w io.Writer, msgs i18n.Messages, s generator.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, msgs.Cancelled)
	printStats(w, msgs, s)
}

func printStats(w io.Writer, msgs i18n.Messages, s generator.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, msgs.StatsHeader)
	line(w, msgs.StatsMnemonics, FormatNumber(s.Mnemonics))
	line(w, msgs.StatsAddresses, FormatNumber(s.Addresses))
	if s.Skipped > 0 {
		line(w, msgs.StatsSkipped, FormatNumber(s.Skipped))
	}
	line(w, msgs.StatsElapsed, fmt.Sprintf("%.2f %s", s.Elapsed.Seconds(), msgs.UnitSeconds))
	line(w, msgs.StatsRate, FormatNumber(uint64(s.Rate()))+" "+msgs.AddressesPerSec)
}

// LogProgress returns a generator.Options.OnProgress callback that logs one
// human-readable line per tick.
func LogProgress(msgs i18n.Messages) func(generator.Progress) {
	return func(p generator.Progress) {
		logx.S().Infof(msgs.Progress,
			FormatNumber(p.Stats.Mnemonics),
			FormatNumber(p.Stats.Addresses),
			FormatNumber(uint64(p.Rate)),
			FormatDuration(msgs, p.ETA),
		)
	}
}

func modeLabel(msgs i18n.Messages, m patterns.Mode) string {
	if m == patterns.ModeChecksum {
		return msgs.ModeChecksum
	}
	return msgs.ModeLowercase
}

// FormatNumber groups digits by thousands: 1234567 -> 1,234,567.
func FormatNumber(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// FormatFloat renders large expected-attempt counts; past uint64 it falls
// back to scientific notation.
func FormatFloat(f float64) string {
	if f < math.MaxUint64 {
		return FormatNumber(uint64(f))
	}
	return strconv.FormatFloat(f, 'e', 2, 64)
}

// FormatDuration picks the largest sensible unit for seconds. Infinite input
// means the rate is not known yet.
func FormatDuration(msgs i18n.Messages, seconds float64) string {
	if math.IsInf(seconds, 0) || math.IsNaN(seconds) {
		return msgs.Calculating
	}
	secs := uint64(seconds)
	switch {
	case secs < 60:
		return fmt.Sprintf("%d %s", secs, msgs.UnitSeconds)
	case secs < 3600:
		return fmt.Sprintf("%d %s", secs/60, msgs.UnitMinutes)
	case secs < 86400:
		return fmt.Sprintf("%.1f %s", seconds/3600, msgs.UnitHours)
	case secs < 2592000:
		return fmt.Sprintf("%.1f %s", seconds/86400, msgs.UnitDays)
	case secs < 31536000:
		return fmt.Sprintf("%.1f %s", seconds/2592000, msgs.UnitMonths)
	default:
		return fmt.Sprintf("%.1f %s", seconds/31536000, msgs.UnitYears)
	}
}
