package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"voiceagents/internal/logger"
)

// Stamper is implemented by records that carry their own timestamp. Append
// stamps any entry that has not been stamped yet.
type Stamper interface {
	StampTime(t time.Time)
}

// Log is an append-only JSON array file holding records of one type.
// Reads never fail: a missing or unparseable file degrades to an empty log.
// At most one writer at a time is assumed.
type Log[T any] struct {
	path string
}

// New creates a log backed by the given file path. The file is not created
// until the first write.
func New[T any](path string) *Log[T] {
	return &Log[T]{path: path}
}

// Path returns the backing file path.
func (l *Log[T]) Path() string {
	return l.path
}

// Load reads all entries currently in the log. A missing file yields an empty
// slice; so does a corrupt one, with a warning logged.
func (l *Log[T]) Load() []T {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", l.path).Msg("journal read failed, treating as empty")
		}
		return []T{}
	}

	var entries []T
	if err := sonic.Unmarshal(data, &entries); err != nil {
		logger.Warn().Err(err).Str("path", l.path).Msg("journal file unparseable, treating as empty")
		return []T{}
	}

	return entries
}

// Append adds one entry to the log, stamping its timestamp if absent, and
// rewrites the whole array. The error reports a persistence failure the caller
// should surface to the user; the conversation is expected to continue.
func (l *Log[T]) Append(entry T) error {
	if s, ok := any(&entry).(Stamper); ok {
		s.StampTime(time.Now())
	}

	entries := l.Load()
	entries = append(entries, entry)

	return l.Write(entries)
}

// Write replaces the log contents with the given entries.
func (l *Log[T]) Write(entries []T) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %v", err)
	}

	data, err := sonic.ConfigDefault.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal entries: %v", err)
	}

	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write journal file: %v", err)
	}

	return nil
}

// WriteSnapshot writes a single record to its own timestamped file under dir,
// named like order_20060102_150405.json, and returns the path written.
func WriteSnapshot(dir, prefix string, record any) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %v", err)
	}

	if s, ok := record.(Stamper); ok {
		s.StampTime(time.Now())
	}

	data, err := sonic.ConfigDefault.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %v", err)
	}

	filename := fmt.Sprintf("%s_%s.json", prefix, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot file: %v", err)
	}

	logger.Info().Str("path", path).Msg("snapshot saved")
	return path, nil
}
