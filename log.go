package artpdf

import (
	"bytes"
	"strings"

	"github.com/sirupsen/logrus"
)

// doneField marks an info entry as a finished step.
const doneField = "done"

// PrefixFormatter formats log entries as a single line with a prefix which
// shows its severity: "[*]" progress, "[+]" done, "[!]" warning, "[-]"
// error and "[.]" debug.
type PrefixFormatter struct{}

func (f *PrefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	prefix := "[*]"
	switch entry.Level {
	case logrus.TraceLevel, logrus.DebugLevel:
		prefix = "[.]"
	case logrus.WarnLevel:
		prefix = "[!]"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		prefix = "[-]"
	default:
		if done, _ := entry.Data[doneField].(bool); done {
			prefix = "[+]"
		}
	}

	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	b.WriteString(prefix)
	b.WriteByte(' ')
	b.WriteString(strings.TrimRight(entry.Message, "\n"))
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (c *Converter) logf(format string, args ...interface{}) {
	if c.cfg.EnableLog {
		logrus.Infof(format, args...)
	}
}

func (c *Converter) logDonef(format string, args ...interface{}) {
	if c.cfg.EnableLog {
		logrus.WithField(doneField, true).Infof(format, args...)
	}
}

func (c *Converter) debugf(format string, args ...interface{}) {
	if c.cfg.EnableLog && c.cfg.EnableVerboseLog {
		logrus.Debugf(format, args...)
	}
}

func (c *Converter) warnf(format string, args ...interface{}) {
	if c.cfg.EnableLog {
		logrus.Warnf(format, args...)
	}
}

// errorf is not affected by EnableLog, failures are always reported.
func (c *Converter) errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}
