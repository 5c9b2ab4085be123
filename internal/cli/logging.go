package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// setupLogging configures the standard logrus logger. Results go to stdout,
// so log lines always go to w (stderr in practice).
func setupLogging(w io.Writer, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(lvl)
	return nil
}
