package logger

import "log"

// Level định nghĩa mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger là interface logging dùng chung cho các service
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger ghi log qua stdlib log, lọc theo level,
// có thể gắn tên component vào trước mỗi dòng
type DefaultLogger struct {
	level  Level
	prefix string
}

func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

// Named trả về logger mới có prefix component, giữ nguyên level
func (l *DefaultLogger) Named(name string) *DefaultLogger {
	return &DefaultLogger{level: l.level, prefix: name + ": "}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf("[INFO] "+l.prefix+format, v...)
	}
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		log.Printf("[ERROR] "+l.prefix+format, v...)
	}
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		log.Printf("[DEBUG] "+l.prefix+format, v...)
	}
}
