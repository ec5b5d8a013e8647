// Package tracelog configures the process-wide logrus logger used by the
// lexer, parser and interpreter to trace their pass/parse/eval activity.
package tracelog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Configure sets the global logrus level and output. When trace is false,
// only warnings and above are emitted; when true, Debug-level pass/parse/
// eval tracing from the lexer, parser and interpreter packages is shown.
func Configure(trace bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   false,
		TimestampFormat: "15:04:05.000",
	})
	if trace {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.WarnLevel)
}
