// Package logging wraps github.com/sirupsen/logrus with the fields the
// engine attaches at every call site: run_id, module, entity_ind, time.
// Grounded on r3e-network-service_layer/infrastructure/logging's thin
// logrus wrapper.
package logging

import "github.com/sirupsen/logrus"

// Logger is a nil-safe wrapper: a nil *Logger turns every call into a
// no-op, so a host that does not care about logging can pass nil straight
// through to engine.Environment without a sentinel "disabled" logger.
type Logger struct {
	entry *logrus.Entry
}

// New builds a Logger writing to a fresh logrus.Logger at level, formatted
// as text or JSON.
func New(level logrus.Level, jsonFormat bool) *Logger {
	l := logrus.New()
	l.SetLevel(level)
	if jsonFormat {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return &Logger{entry: logrus.NewEntry(l)}
}

// WithRun returns a Logger with run_id attached to every subsequent line.
func (lg *Logger) WithRun(runID string) *Logger {
	if lg == nil {
		return nil
	}
	return &Logger{entry: lg.entry.WithField("run_id", runID)}
}

// Event logs one process_event invocation at debug level, mirroring the
// prototype's logging.debug(event) call.
func (lg *Logger) Event(module string, entityInd int, t float64, message string) {
	if lg == nil {
		return
	}
	lg.entry.WithFields(logrus.Fields{
		"module":     module,
		"entity_ind": entityInd,
		"time":       t,
	}).Debug(message)
}

func (lg *Logger) Infof(format string, args ...any) {
	if lg == nil {
		return
	}
	lg.entry.Infof(format, args...)
}

func (lg *Logger) Warnf(format string, args ...any) {
	if lg == nil {
		return
	}
	lg.entry.Warnf(format, args...)
}

func (lg *Logger) Debugf(format string, args ...any) {
	if lg == nil {
		return
	}
	lg.entry.Debugf(format, args...)
}
