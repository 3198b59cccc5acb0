package eval

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lyraproj/issue/issue"
)

type (
	LogLevel string

	Logger interface {
		Log(level LogLevel, args ...Value)

		Logf(level LogLevel, format string, args ...interface{})

		LogIssue(issue issue.Reported)

		// Level returns the lowest level that this logger will output
		Level() LogLevel
	}

	stdlog struct {
		lock     sync.Mutex
		out      io.Writer
		err      io.Writer
		minLevel LogLevel
	}

	LogEntry struct {
		level   LogLevel
		message string
	}

	ArrayLogger struct {
		entries []*LogEntry
	}

	noopLogger struct{}
)

const (
	ALERT   = LogLevel(`alert`)
	CRIT    = LogLevel(`crit`)
	DEBUG   = LogLevel(`debug`)
	EMERG   = LogLevel(`emerg`)
	ERR     = LogLevel(`err`)
	INFO    = LogLevel(`info`)
	NOTICE  = LogLevel(`notice`)
	WARNING = LogLevel(`warning`)
)

// LogLevels in order of increasing severity
var LogLevels = []LogLevel{DEBUG, INFO, NOTICE, WARNING, ERR, CRIT, ALERT, EMERG}

func (l LogLevel) Severity() int {
	for i, ll := range LogLevels {
		if ll == l {
			return i
		}
	}
	return -1
}

func (l LogLevel) IsValid() bool {
	return l.Severity() >= 0
}

func Debug(logger Logger, format string, args ...interface{}) {
	logger.Logf(DEBUG, format, args...)
}

func Info(logger Logger, format string, args ...interface{}) {
	logger.Logf(INFO, format, args...)
}

func Notice(logger Logger, format string, args ...interface{}) {
	logger.Logf(NOTICE, format, args...)
}

func Warning(logger Logger, format string, args ...interface{}) {
	logger.Logf(WARNING, format, args...)
}

func Err(logger Logger, format string, args ...interface{}) {
	logger.Logf(ERR, format, args...)
}

// NewStdLogger creates a logger that writes entries of level debug, info, and notice to
// stdout and all other entries to stderr. Entries below minLevel are discarded.
func NewStdLogger(minLevel LogLevel) Logger {
	return NewWriterLogger(os.Stdout, os.Stderr, minLevel)
}

func NewWriterLogger(out, err io.Writer, minLevel LogLevel) Logger {
	return &stdlog{out: out, err: err, minLevel: minLevel}
}

func (l *stdlog) Level() LogLevel {
	return l.minLevel
}

func (l *stdlog) Log(level LogLevel, args ...Value) {
	if !l.enabled(level) {
		return
	}
	b := bytes.NewBufferString(``)
	fmt.Fprintf(b, `%s: `, level)
	for _, arg := range args {
		b.WriteString(arg.String())
	}
	b.WriteByte('\n')
	l.write(level, b.Bytes())
}

func (l *stdlog) Logf(level LogLevel, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}
	l.write(level, []byte(fmt.Sprintf("%s: %s\n", level, fmt.Sprintf(format, args...))))
}

func (l *stdlog) LogIssue(i issue.Reported) {
	if level := levelOf(i); level != `` && l.enabled(level) {
		l.write(level, []byte(fmt.Sprintf("%s: %s\n", level, i.Error())))
	}
}

// write writes each entry with a single call to the writer. Entries from concurrent callers
// are serialized.
func (l *stdlog) write(level LogLevel, entry []byte) {
	l.lock.Lock()
	defer l.lock.Unlock()
	_, _ = l.writerFor(level).Write(entry)
}

func (l *stdlog) enabled(level LogLevel) bool {
	return level.Severity() >= l.minLevel.Severity()
}

func (l *stdlog) writerFor(level LogLevel) io.Writer {
	switch level {
	case DEBUG, INFO, NOTICE:
		return l.out
	default:
		return l.err
	}
}

func levelOf(i issue.Reported) LogLevel {
	switch i.Severity() {
	case issue.SEVERITY_ERROR:
		return ERR
	case issue.SEVERITY_WARNING, issue.SEVERITY_DEPRECATION:
		return WARNING
	default:
		return ``
	}
}

func NewArrayLogger() *ArrayLogger {
	return &ArrayLogger{make([]*LogEntry, 0, 16)}
}

// Entries returns the messages logged with the given level
func (l *ArrayLogger) Entries(level LogLevel) (result []string) {
	result = make([]string, 0, 8)
	for _, entry := range l.entries {
		if entry.level == level {
			result = append(result, entry.message)
		}
	}
	return
}

func (l *ArrayLogger) Level() LogLevel {
	return DEBUG
}

func (l *ArrayLogger) Log(level LogLevel, args ...Value) {
	w := bytes.NewBufferString(``)
	for _, arg := range args {
		w.WriteString(arg.String())
	}
	l.entries = append(l.entries, &LogEntry{level, w.String()})
}

func (l *ArrayLogger) Logf(level LogLevel, format string, args ...interface{}) {
	l.entries = append(l.entries, &LogEntry{level, fmt.Sprintf(format, args...)})
}

func (l *ArrayLogger) LogIssue(i issue.Reported) {
	if level := levelOf(i); level != `` {
		l.entries = append(l.entries, &LogEntry{level, i.Error()})
	}
}

// NewNoopLogger returns a logger that discards everything
func NewNoopLogger() Logger {
	return noopLogger{}
}

func (noopLogger) Level() LogLevel {
	return EMERG
}

func (noopLogger) Log(level LogLevel, args ...Value) {}

func (noopLogger) Logf(level LogLevel, format string, args ...interface{}) {}

func (noopLogger) LogIssue(i issue.Reported) {}
