package logging

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// getFileSyncer returns a WriteSyncer over a rotating log file at
// Director/FileName. Each call opens a fresh writer and registers it
// so CloseAllWriters can release file handles.
func getFileSyncer(config Config) zapcore.WriteSyncer {
	_ = os.MkdirAll(config.Director, 0o755)

	writer := &lumberjack.Logger{
		Filename:   filepath.Join(config.Director, config.FileName),
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
		LocalTime:  true,
	}
	registerWriter(writer)

	return zapcore.AddSync(writer)
}

var (
	openWriters   []*lumberjack.Logger
	openWritersMu sync.Mutex
)

func registerWriter(w *lumberjack.Logger) {
	openWritersMu.Lock()
	defer openWritersMu.Unlock()
	openWriters = append(openWriters, w)
}

// CloseAllWriters closes every log file opened by NewLogger. Call it on
// shutdown after a final Sync.
func CloseAllWriters() error {
	openWritersMu.Lock()
	defer openWritersMu.Unlock()

	var lastErr error
	for _, w := range openWriters {
		if err := w.Close(); err != nil {
			lastErr = err
		}
	}
	openWriters = nil
	return lastErr
}
