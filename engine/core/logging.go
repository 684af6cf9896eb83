package core

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			cfg := DefaultConfig().Log
			level, _ := log.ParseLevel(cfg.Level)
			l := log.NewWithOptions(os.Stderr, log.Options{
				Level:           level,
				ReportCaller:    cfg.ReportCaller,
				ReportTimestamp: cfg.ReportTimestamp,
				TimeFormat:      cfg.TimeFormat,
				Prefix:          cfg.Prefix,
				// report the caller of LogXxx, not this file
				CallerOffset: 1,
			})
			singleton = &logger{l}
		})
	return singleton
}

// LoggerConfigure applies the given settings to the engine logger.
func LoggerConfigure(cfg LogConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Level)
	}
	l := getLogger()
	l.SetLevel(level)
	l.SetPrefix(cfg.Prefix)
	l.SetReportCaller(cfg.ReportCaller)
	l.SetReportTimestamp(cfg.ReportTimestamp)
	if cfg.TimeFormat != "" {
		l.SetTimeFormat(cfg.TimeFormat)
	}
	return nil
}

// LoggerSetOutput redirects the engine logger, mostly useful in tests.
func LoggerSetOutput(w io.Writer) {
	getLogger().SetOutput(w)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
