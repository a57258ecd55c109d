package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// New builds a logrus logger at level. With a non-empty path the logger appends
// to that file and the returned closer releases it; otherwise it writes to fallback.
func New(level, path string, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true, DisableColors: path != ""}
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(lvl)

	if path == "" {
		log.Out = fallback
		return log, nopCloser{}, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, errors.Wrap(err, "failed to create log directory")
		}
	}
	fp, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open log file")
	}
	log.Out = fp
	return log, fp, nil
}

// ParseLevel maps a config level to logrus. Empty means info.
func ParseLevel(level string) (logrus.Level, error) {
	if level == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(level)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
