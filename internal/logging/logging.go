// Package logging configures logrus for a program that owns the terminal:
// console output is dropped and records go to a daily-rotated file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const fileName = "snapdeck.log"

type Options struct {
	// Dir holds snapdeck.log; empty disables file logging.
	Dir     string
	Verbose bool
}

// New builds a logger. Nothing is written to the terminal.
func New(opts Options) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	if opts.Verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	l.SetReportCaller(true)

	if opts.Dir == "" {
		return l, nil
	}
	hook, err := newFileHook(opts.Dir)
	if err != nil {
		return nil, errors.Wrap(err, "init log file hook")
	}
	l.AddHook(hook)
	return l, nil
}

func newFileHook(dir string) (logrus.Hook, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "mkdir %s", dir)
	}
	path := filepath.Join(dir, fileName)
	writer, err := rotatelogs.New(
		path+".%Y%m%d",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}
	return lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, &logrus.TextFormatter{
		DisableColors: true,
		CallerPrettyfier: func(frame *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		},
	}), nil
}
