package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

var logger *slog.Logger
var out io.Writer = os.Stderr

// Init replaces the default logger. json selects slog's JSON handler,
// otherwise output is colourised by tint.
func Init(verbose bool, json bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if json {
		logger = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}),
		)
	} else {
		logger = slog.New(
			tint.NewHandler(out, &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
			}))
	}
	slog.SetDefault(logger)
}

// SetOutput redirects log output and the summary block. Call Init afterwards.
func SetOutput(w io.Writer) {
	out = w
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

type summaryStatement struct {
	level slog.Level
	msg   string
	args  []any
}

var summary = []summaryStatement{}

func AddSummaryError(msg string, args ...any) {
	summary = append(summary, summaryStatement{slog.LevelError, msg, args})
}

// SummaryCount is the number of statements waiting for Close.
func SummaryCount() int {
	return len(summary)
}

// Close flushes the summary between separator lines and clears it.
// Nothing is printed when the summary is empty.
func Close() {
	if len(summary) == 0 {
		return
	}
	line := []byte("------------\n")

	out.Write(line)
	for _, i := range summary {
		logger.Log(context.TODO(), i.level, i.msg, i.args...)
	}
	out.Write(line)
	summary = summary[:0]
}

func init() {
	Init(false, false)
}
