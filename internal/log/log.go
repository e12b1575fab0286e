package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	cblog "github.com/charmbracelet/log"
)

// Logger embeds the Charm Logger and adds Printf for fmt-style callers.
type Logger struct{ *cblog.Logger }

// Printf routes info-style logs through Infof.
func (l *Logger) Printf(format string, v ...interface{}) { l.Infof(format, v...) }

var (
	logger     *Logger
	initLogger sync.Once
)

// logSink opens the per-user log file. The terminal is owned by the TUI
// while the program runs, so stderr is not an option; if the file cannot
// be opened logs are discarded.
func logSink() io.Writer {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return io.Discard
	}
	dir := filepath.Join(cacheDir, "omarchy-cybex")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(filepath.Join(dir, "installer.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard
	}
	return f
}

// GetLogger returns the shared logger instance.
func GetLogger() *Logger {
	initLogger.Do(func() {
		base := cblog.New(logSink())
		base.SetReportTimestamp(true)
		base.SetLevel(cblog.InfoLevel)
		base.SetPrefix("cybex")

		logger = &Logger{base}
	})
	return logger
}

// * Convenience wrappers

func Debug(msg interface{}, keyvals ...interface{}) { GetLogger().Logger.Debug(msg, keyvals...) }
func Debugf(format string, v ...interface{})        { GetLogger().Logger.Debugf(format, v...) }
func Info(msg interface{}, keyvals ...interface{})  { GetLogger().Logger.Info(msg, keyvals...) }
func Infof(format string, v ...interface{})         { GetLogger().Logger.Infof(format, v...) }
func Warn(msg interface{}, keyvals ...interface{})  { GetLogger().Logger.Warn(msg, keyvals...) }
func Warnf(format string, v ...interface{})         { GetLogger().Logger.Warnf(format, v...) }
func Error(msg interface{}, keyvals ...interface{}) { GetLogger().Logger.Error(msg, keyvals...) }
func Errorf(format string, v ...interface{})        { GetLogger().Logger.Errorf(format, v...) }
func Fatal(msg interface{}, keyvals ...interface{}) { GetLogger().Logger.Fatal(msg, keyvals...) }
func Fatalf(format string, v ...interface{})        { GetLogger().Logger.Fatalf(format, v...) }
