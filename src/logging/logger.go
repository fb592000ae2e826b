// Package logging is the small leveled logger shared by the barplot packages.
// Output goes to stderr as "<timestamp> [LEVEL] message".
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level represents severity. Messages below the current level are dropped.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("Level(%d)", int32(l))
	}
	return levelTags[l]
}

// ParseLevel maps debug|info|warn|warning|error (any case, surrounding space ignored) to a Level.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		return LevelWarn, nil
	}
	for l, tag := range levelTags {
		if tag == name {
			return Level(l), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

var (
	level atomic.Int32
	out   = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)
)

func init() { level.Store(int32(LevelInfo)) }

// SetLogLevel parses and applies s. Unknown names leave the level unchanged and return false.
func SetLogLevel(s string) bool {
	l, err := ParseLevel(s)
	if err != nil {
		return false
	}
	level.Store(int32(l))
	return true
}

// GetLogLevel returns the current global log level.
func GetLogLevel() Level { return Level(level.Load()) }

// SetOutput redirects log output.
func SetOutput(w io.Writer) { out.SetOutput(w) }

// emit writes msg tagged with l when l is enabled.
func (l Level) emit(msg string) {
	if l < GetLogLevel() {
		return
	}
	out.Printf("[%s] %s", l, msg)
}

// printf formats only when args are given, so an already formatted message keeps literal '%'.
func (l Level) printf(format string, args []interface{}) {
	if l < GetLogLevel() {
		return
	}
	if len(args) == 0 {
		l.emit(format)
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...interface{}) { LevelDebug.printf(format, a) }
func Infof(format string, a ...interface{})  { LevelInfo.printf(format, a) }
func Warnf(format string, a ...interface{})  { LevelWarn.printf(format, a) }
func Errorf(format string, a ...interface{}) { LevelError.printf(format, a) }

// TimeTrack logs the duration of a phase at debug level.
// Usage: defer logging.TimeTrack(time.Now(), "render")
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
