package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFilePath is the default log file, relative to the working directory (project root when run via go run ./cmd/game).
const LogFilePath = "logs/xr.txt"

// DefaultMaxLines bounds the in-memory tail shown by the terminal.
const DefaultMaxLines = 500

// Config selects where logs go and how much is kept.
type Config struct {
	Path     string `yaml:"path"`
	Level    string `yaml:"level"` // debug, info, warn, error
	MaxLines int    `yaml:"max_lines"`
}

// DefaultConfig logs info and above to LogFilePath.
func DefaultConfig() Config {
	return Config{Path: LogFilePath, Level: "info", MaxLines: DefaultMaxLines}
}

// Logger is a zap logger that writes console-encoded entries to a file and keeps the most
// recent lines in memory for on-screen display. Each entry is prefixed with a local timestamp.
type Logger struct {
	zap  *zap.Logger
	file *os.File

	mu    sync.Mutex
	lines []string
	max   int
}

// New opens (appending) the log file, creating its directory if needed. An empty Path logs
// to memory only.
func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if cfg.MaxLines <= 0 {
		cfg.MaxLines = DefaultMaxLines
	}
	l := &Logger{max: cfg.MaxLines}

	enc := zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("[2006-01-02 15:04:05]"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(tail{l}), level),
	}
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(f), level))
	}
	l.zap = zap.New(zapcore.NewTee(cores...))
	return l, nil
}

// Zap returns the structured logger for systems.
func (l *Logger) Zap() *zap.Logger { return l.zap }

// Log records a plain line (e.g. terminal input) at info level.
func (l *Logger) Log(line string) {
	l.zap.Info(line)
}

// Lines returns a copy of the retained lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.zap.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	if over := len(l.lines) - l.max; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// tail is the in-memory sink; zap hands it one encoded entry per Write.
type tail struct{ l *Logger }

func (t tail) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		t.l.append(line)
	}
	return len(p), nil
}
