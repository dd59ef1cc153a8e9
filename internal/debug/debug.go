// Package debug implements the opt-in diagnostic channels of compyle.
//
// Each channel traces one stage of the pipeline and is enabled separately
// (compyle --show-parsing, --show-interpret, --show-transpile). Messages go
// through log/slog with a tint handler, tagged with the channel name.
package debug

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/lmittmann/tint"
)

// Channel identifies a pipeline stage that can be traced.
type Channel int

const (
	Parsing Channel = iota
	Interpret
	Transpile
)

var channelNames = [...]string{
	Parsing:   "PARSING",
	Interpret: "INTERPRET",
	Transpile: "TRANSPILE",
}

func (c Channel) String() string {
	if c < 0 || int(c) >= len(channelNames) {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// ParseChannel accepts a channel name in any case.
func ParseChannel(name string) (Channel, error) {
	for c, n := range channelNames {
		if strings.EqualFold(n, name) {
			return Channel(c), nil
		}
	}
	return 0, fmt.Errorf("unknown debug channel %q", name)
}

// Logger writes messages for the enabled channels. A nil *Logger is valid
// and discards everything.
type Logger struct {
	logger  *slog.Logger
	enabled map[Channel]bool
}

// New returns a Logger writing to w with the given channels enabled.
// Colour is used when fatih/color considers the terminal capable of it.
func New(w io.Writer, channels ...Channel) *Logger {
	return newLogger(w, color.NoColor, channels)
}

// NewPlain is New without colour, for log files and tests.
func NewPlain(w io.Writer, channels ...Channel) *Logger {
	return newLogger(w, true, channels)
}

func newLogger(w io.Writer, noColor bool, channels []Channel) *Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
				return slog.Attr{}
			}
			return a
		},
	})
	l := &Logger{
		logger:  slog.New(handler),
		enabled: make(map[Channel]bool),
	}
	for _, c := range channels {
		l.enabled[c] = true
	}
	return l
}

// Enabled reports whether messages on c are written.
func (l *Logger) Enabled(c Channel) bool {
	return l != nil && l.enabled[c]
}

// Print writes msg with the key/value pairs in args on channel c.
func (l *Logger) Print(c Channel, msg string, args ...any) {
	if !l.Enabled(c) {
		return
	}
	l.logger.Debug(msg, append([]any{slog.String("channel", c.String())}, args...)...)
}

// Dump writes a structural rendering of v on channel c.
func (l *Logger) Dump(c Channel, msg string, v any) {
	if !l.Enabled(c) {
		return
	}
	l.Print(c, msg, slog.String("tree", pretty.Sprint(v)))
}
