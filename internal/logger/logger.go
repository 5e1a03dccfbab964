package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultPath is the log file used when none is configured, relative to the working
// directory.
const DefaultPath = "logs/scene.log"

// HistorySize is how many formatted lines Lines keeps.
const HistorySize = 200

// Logger writes JSON lines to a file, coloured lines to stderr, and keeps the most recent
// lines in memory for the on-screen HUD.
type Logger struct {
	zerolog.Logger

	file    *os.File
	history *history
}

// New opens (appending) the log file at path, creating its directory, and returns a logger
// at the named level. An empty path logs to stderr and memory only.
func New(path, level string) (*Logger, error) {
	h := &history{max: HistorySize}
	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly},
		zerolog.ConsoleWriter{Out: h, TimeFormat: time.TimeOnly, NoColor: true},
	}

	var f *os.File
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		var err error
		f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		writers = append(writers, f)
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(level)).
		With().Timestamp().Logger()
	return &Logger{Logger: zl, file: f, history: h}, nil
}

// ParseLevel maps a config value such as "debug" or "WARN" to a level. Unknown or empty
// values give info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	return l.history.lines(0)
}

// Tail returns at most the n most recent lines.
func (l *Logger) Tail(n int) []string {
	return l.history.lines(n)
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// history is an io.Writer that keeps the last max lines written to it.
type history struct {
	mu  sync.Mutex
	max int
	buf []string
}

func (h *history) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		h.buf = append(h.buf, line)
	}
	if over := len(h.buf) - h.max; over > 0 {
		h.buf = append(h.buf[:0], h.buf[over:]...)
	}
	return len(p), nil
}

func (h *history) lines(n int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	src := h.buf
	if n > 0 && n < len(src) {
		src = src[len(src)-n:]
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
