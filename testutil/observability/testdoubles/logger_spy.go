package testdoubles

import (
	"slices"
	"sync"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelWarn  = "warn"
	levelError = "error"
)

// LoggerSpy is a Logger implementation that captures plain logging calls for testing.
type LoggerSpy struct {
	records     []SpyLogRecord
	mu          sync.Mutex
	recordCalls bool
}

// SpyLogRecord represents a recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
}

// Arg returns the value following key in Args, or nil if the key is absent.
func (r SpyLogRecord) Arg(key string) any {
	return argValue(r.Args, key)
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy(recordCalls bool) *LoggerSpy {
	return &LoggerSpy{
		recordCalls: recordCalls,
	}
}

// Debug implements the Logger interface for testing.
func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.record(levelDebug, msg, args)
}

// Info implements the Logger interface for testing.
func (s *LoggerSpy) Info(msg string, args ...any) {
	s.record(levelInfo, msg, args)
}

// Warn implements the Logger interface for testing.
func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.record(levelWarn, msg, args)
}

// Error implements the Logger interface for testing.
func (s *LoggerSpy) Error(msg string, args ...any) {
	s.record(levelError, msg, args)
}

func (s *LoggerSpy) record(level, msg string, args []any) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    slices.Clone(args),
	})
}

// GetRecords returns a copy of all log records of the given level.
func (s *LoggerSpy) GetRecords(level string) []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []SpyLogRecord
	for _, record := range s.records {
		if record.Level == level {
			records = append(records, record)
		}
	}

	return records
}

// GetInfoRecords returns a copy of all info log records.
func (s *LoggerSpy) GetInfoRecords() []SpyLogRecord {
	return s.GetRecords(levelInfo)
}

// GetWarnRecords returns a copy of all warn log records.
func (s *LoggerSpy) GetWarnRecords() []SpyLogRecord {
	return s.GetRecords(levelWarn)
}

// GetTotalRecordCount returns the total number of log records across all levels.
func (s *LoggerSpy) GetTotalRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

func argValue(args []any, key string) any {
	for i := 0; i+1 < len(args); i += 2 {
		if k, ok := args[i].(string); ok && k == key {
			return args[i+1]
		}
	}

	return nil
}

// Compile-time check to ensure LoggerSpy implements Logger interface.
var _ catalog.Logger = (*LoggerSpy)(nil)
