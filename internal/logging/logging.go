package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

type Logger struct {
	Verbose bool
	Debug   bool

	// Out receives info and debug lines, Err warnings and errors.
	// Nil means os.Stdout / os.Stderr.
	Out io.Writer
	Err io.Writer
	// File, when set, receives every line without color.
	File io.Writer
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		l.emit(l.out(), color.GreenString("[info] "), "info", msg, args)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		l.emit(l.out(), color.CyanString("[debug] "), "debug", msg, args)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	l.emit(l.err(), color.YellowString("[warn] "), "warn", msg, args)
}

func (l Logger) Errorf(msg string, args ...any) {
	l.emit(l.err(), color.RedString("[error] "), "error", msg, args)
}

// ErrorfAndReturn logs the message as an error and returns it.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	l.Errorf("%v", err)
	return err
}

func (l Logger) emit(w io.Writer, prefix, level, msg string, args []any) {
	line := fmt.Sprintf(msg, args...)
	fmt.Fprintln(w, prefix+line)
	if l.File != nil {
		fmt.Fprintf(l.File, "%s [%s] %s\n", time.Now().UTC().Format(time.RFC3339), level, line)
	}
}

func (l Logger) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l Logger) err() io.Writer {
	if l.Err != nil {
		return l.Err
	}
	return os.Stderr
}
