// Package log is a small levelled key/value logger.
//
// Lines look like:
//
//	2025-01-01T00:00:00Z [LEVEL] msg key=value ...
//
// The minimum level is INFO, or DEBUG when DISPLAY_DEBUG is set in the environment.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"
	"time"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelError Level = "ERROR"
)

var (
	mu       sync.Mutex
	logger   = stdlog.New(os.Stderr, "", 0)
	minLevel = LevelInfo
)

func init() {
	if os.Getenv("DISPLAY_DEBUG") != "" {
		minLevel = LevelDebug
	}
}

// SetLevel changes the minimum level that is written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

// SetOutput redirects log lines to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// Enabled reports if lines at level are written.
func Enabled(level Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled(level)
}

func Debug(msg string, kv ...any) {
	logWithLevel(LevelDebug, msg, kv...)
}

func Info(msg string, kv ...any) {
	logWithLevel(LevelInfo, msg, kv...)
}

func Error(msg string, err error, kv ...any) {
	extended := append([]any{"err", err}, kv...)
	logWithLevel(LevelError, msg, extended...)
}

func logWithLevel(level Level, msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled(level) {
		return
	}

	var line strings.Builder
	line.WriteString(time.Now().Format(time.RFC3339Nano))
	line.WriteString(" [")
	line.WriteString(string(level))
	line.WriteString("] ")
	line.WriteString(msg)
	line.WriteString(formatKVs(kv...))

	logger.Println(line.String())
}

func enabled(level Level) bool {
	switch minLevel {
	case LevelDebug:
		return true
	case LevelInfo:
		return level == LevelInfo || level == LevelError
	case LevelError:
		return level == LevelError
	default:
		return true
	}
}

// formatKVs expects key, value pairs; a trailing key without value is dropped.
func formatKVs(kv ...any) string {
	var out strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		out.WriteByte(' ')
		out.WriteString(key)
		out.WriteByte('=')
		out.WriteString(formatValue(kv[i+1]))
	}
	return out.String()
}

func formatValue(v any) string {
	switch v := v.(type) {
	case []byte:
		return fmt.Sprintf("% x", v)
	case byte:
		return fmt.Sprintf("%#02x", v)
	default:
		return fmt.Sprint(v)
	}
}
