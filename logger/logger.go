// Package logger is the planning core's logging façade: a thin wrapper
// around logrus with a caller-tagged formatter and terminal-aware color
// output, adapted from the teacher's logger/logger.go (custom formatter,
// level-from-string parsing, package-level Debugf/Infof/Warnf helpers) but
// trimmed of the teacher's server-process concerns (separate error/info
// log files) since the planning core only ever logs to one stream.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Logger is the package-level instance every helper below delegates to.
var Logger *logrus.Logger

// Config selects the log level and an optional file to tee output to,
// alongside stdout.
type Config struct {
	LogPath  string
	LogLevel string
}

// CustomFormatter renders "[time] [LEVEL] (file:func:line) message",
// matching the teacher's format exactly.
type CustomFormatter struct {
	TimestampFormat string
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)

	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}

	msg := fmt.Sprintf("[%s] [%s] (%s) %s\n", timestamp, level, getCaller(), entry.Message)
	return []byte(msg), nil
}

// getCaller walks the stack past logrus's own frames to find the first
// caller outside this package and logrus itself.
func getCaller() string {
	for i := 2; i < 20; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		if strings.Contains(file, "/logrus/") ||
			strings.Contains(file, "/logger.go") ||
			strings.Contains(file, "sirupsen") ||
			strings.Contains(file, "/entry.go") {
			continue
		}
		funcName := runtime.FuncForPC(pc).Name()
		return fmt.Sprintf("%s:%s:%d", filepath.Base(file), funcName, line)
	}
	return "unknown:unknown:0"
}

func parseLogLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Init configures the package logger's level and output. When go-isatty
// reports stdout is a terminal, it is wrapped with go-colorable (so a future
// color-carrying formatter survives a Windows console); otherwise with
// go-colorable's non-colorable passthrough, which strips ANSI codes.
func Init(cfg Config) error {
	Logger = logrus.New()
	Logger.SetFormatter(&CustomFormatter{TimestampFormat: "15:04:05 MST 2006/01/02"})
	Logger.SetLevel(parseLogLevel(cfg.LogLevel))

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		Logger.SetOutput(colorable.NewColorable(os.Stdout))
	} else {
		Logger.SetOutput(colorable.NewNonColorable(os.Stdout))
	}

	if cfg.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			Logger.Warnf("failed to open log file %s, logging to stdout only: %v", cfg.LogPath, err)
			return nil
		}
		Logger.AddHook(&fileHook{file: f, formatter: Logger.Formatter})
	}
	return nil
}

// fileHook tees every entry to an additional writer, so a configured
// LogPath doesn't replace stdout but supplements it.
type fileHook struct {
	file      *os.File
	formatter logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *fileHook) Fire(entry *logrus.Entry) error {
	b, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.file.Write(b)
	return err
}

func ensureInit() {
	if Logger == nil {
		_ = Init(Config{LogLevel: "info"})
	}
}

func Debug(args ...interface{}) { ensureInit(); Logger.Debug(args...) }
func Debugf(format string, args ...interface{}) { ensureInit(); Logger.Debugf(format, args...) }
func Info(args ...interface{})  { ensureInit(); Logger.Info(args...) }
func Infof(format string, args ...interface{})  { ensureInit(); Logger.Infof(format, args...) }
func Warn(args ...interface{})  { ensureInit(); Logger.Warn(args...) }
func Warnf(format string, args ...interface{})  { ensureInit(); Logger.Warnf(format, args...) }
func Error(args ...interface{}) { ensureInit(); Logger.Error(args...) }
func Errorf(format string, args ...interface{}) { ensureInit(); Logger.Errorf(format, args...) }
