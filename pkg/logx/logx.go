package logx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level                string    // debug|info|warn|error
	FilePath             string    // path template, e.g. "logs/{start}.log" or "" (no file)
	ConsoleOnly          bool      // if true, do not write to the file
	HideSecretsInConsole bool      // if true, we mask the private data in the console
	Console              io.Writer // defaults to stderr; stdout is reserved for the match report
}

var StartTime = time.Now()

var (
	mu      sync.RWMutex
	global  = zap.NewNop()
	sugar   = global.Sugar()
	fileOut *os.File
)

// Init initializes the global logger.
// Cfg.FilePath may contain {start} and {pid}; it is ignored when empty or when cfg.ConsoleOnly is set.
// Cfg.HideSecretsInConsole controls the masking in the console.
func Init(cfg Config) error {
	level := parseLevel(cfg.Level)

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "lvl",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// console encoder (with color)
	consoleEncCfg := encCfg
	consoleEncCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleEncCfg)

	// file encoder (no color)
	fileEncCfg := encCfg
	fileEncCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	fileEncoder := zapcore.NewConsoleEncoder(fileEncCfg)

	var console zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	if cfg.Console != nil {
		console = zapcore.Lock(zapcore.AddSync(cfg.Console))
	}

	var cores []zapcore.Core

	// console core: possibly wrapped to redact secrets
	consoleCore := zapcore.NewCore(consoleEncoder, console, level)
	if cfg.HideSecretsInConsole {
		consoleCore = newMaskingCore(consoleCore)
	}
	cores = append(cores, consoleCore)

	var f *os.File
	if cfg.FilePath != "" && !cfg.ConsoleOnly {
		resolved := resolvePath(cfg.FilePath)
		if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
			return fmt.Errorf("create logs dir: %w", err)
		}
		var err error
		f, err = os.OpenFile(resolved, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(f), level))
	}

	logger := zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.PanicLevel),
	)
	zap.ReplaceGlobals(logger)

	mu.Lock()
	global = logger
	sugar = logger.Sugar()
	fileOut = f
	mu.Unlock()
	return nil
}

// Close syncs and closes the file (if open).
func Close() {
	mu.Lock()
	defer mu.Unlock()
	_ = global.Sync()
	if fileOut != nil {
		_ = fileOut.Sync()
		_ = fileOut.Close()
		fileOut = nil
	}
}

// L and S return the global logger; before Init they return a no-op logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func S() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func With(name string) *zap.SugaredLogger     { return S().Named(name) }
func WithFields(kv ...any) *zap.SugaredLogger { return S().With(kv...) }

func resolvePath(tmpl string) string {
	repl := map[string]string{
		"{start}": StartTime.Format("2006-01-02_15-04-05"),
		"{pid}":   fmt.Sprintf("%d", os.Getpid()),
	}
	path := tmpl
	for k, v := range repl {
		path = strings.ReplaceAll(path, k, v)
	}
	return path
}

func parseLevel(lvl string) zapcore.LevelEnabler {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error", "err":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
