// Package logging provides runtime.Logger implementations for the simulation
// CLI and tests.
package logging

import (
	"io"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/sirupsen/logrus"
)

type logrusLogger struct {
	entry *logrus.Entry
}

// New returns a runtime.Logger writing text lines at or above level to out.
// An unparsable level falls back to info.
func New(level string, out io.Writer) runtime.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false, FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

// FromEntry wraps an existing logrus entry.
func FromEntry(entry *logrus.Entry) runtime.Logger {
	return &logrusLogger{entry: entry}
}

func (l *logrusLogger) Debug(format string, v ...interface{}) { l.entry.Debugf(format, v...) }
func (l *logrusLogger) Info(format string, v ...interface{})  { l.entry.Infof(format, v...) }
func (l *logrusLogger) Warn(format string, v ...interface{})  { l.entry.Warnf(format, v...) }
func (l *logrusLogger) Error(format string, v ...interface{}) { l.entry.Errorf(format, v...) }

func (l *logrusLogger) WithField(key string, v interface{}) runtime.Logger {
	return &logrusLogger{entry: l.entry.WithField(key, v)}
}

func (l *logrusLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logrusLogger) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(l.entry.Data))
	for k, v := range l.entry.Data {
		out[k] = v
	}
	return out
}

// noopLogger implements runtime.Logger for callers that do not want output.
type noopLogger struct{}

// Nop returns a logger that discards everything.
func Nop() runtime.Logger { return noopLogger{} }

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}
