package adapters

import (
	"io"
	"log"
	"os"
)

// PrintLoggerAdapter implements LoggerAdapter using standard log package.
// Messages below the configured level are dropped.
type PrintLoggerAdapter struct {
	level  LogLevel
	logger *log.Logger
}

// NewPrintLoggerAdapter creates a new print logger writing to stderr
func NewPrintLoggerAdapter(level LogLevel) *PrintLoggerAdapter {
	return NewPrintLoggerAdapterWithWriter(level, os.Stderr)
}

// NewPrintLoggerAdapterWithWriter creates a print logger writing to w
func NewPrintLoggerAdapterWithWriter(level LogLevel, w io.Writer) *PrintLoggerAdapter {
	return &PrintLoggerAdapter{
		level:  level,
		logger: log.New(w, "", log.LstdFlags),
	}
}

func (p *PrintLoggerAdapter) shouldLog(level LogLevel) bool {
	if p.level == LogLevelNone {
		return false
	}
	return logLevelRank[level] >= logLevelRank[p.level]
}

func (p *PrintLoggerAdapter) print(level LogLevel, message string, args []any) {
	if p.shouldLog(level) {
		p.logger.Printf("["+string(level)+"] [LinkedIn] "+message, args...)
	}
}

func (p *PrintLoggerAdapter) Debug(message string, args ...any) {
	p.print(LogLevelDebug, message, args)
}

func (p *PrintLoggerAdapter) Info(message string, args ...any) {
	p.print(LogLevelInfo, message, args)
}

func (p *PrintLoggerAdapter) Warn(message string, args ...any) {
	p.print(LogLevelWarn, message, args)
}

func (p *PrintLoggerAdapter) Error(message string, args ...any) {
	p.print(LogLevelError, message, args)
}
