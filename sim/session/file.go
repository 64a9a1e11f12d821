package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/koryo-sim/koryo-sim/sim"
	"github.com/koryo-sim/koryo-sim/sim/overlay"
)

// FileStore persists the log as JSONL at path, with two sidecar files:
// "<path>.cursor" holding the cursor as a bare integer and
// "<path>.meta.json" holding the overlay.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the log file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) cursorPath() string { return s.path + ".cursor" }
func (s *FileStore) metaPath() string   { return s.path + ".meta.json" }

func (s *FileStore) AppendRecord(rec sim.LogRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal log record: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log %s: %w", s.path, err)
	}
	defer f.Close()
	if _, err := f.Write(append(body, '\n')); err != nil {
		return fmt.Errorf("append to log %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) ReadLog() ([]sim.LogRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log %s: %w", s.path, err)
	}
	defer f.Close()

	var records []sim.LogRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var rec sim.LogRecord
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, sim.Parsef(err, "log %s line %d", s.path, line)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log %s: %w", s.path, err)
	}
	return records, nil
}

func (s *FileStore) ReadCursorState(cursor int) (sim.State, error) {
	log, err := s.ReadLog()
	if err != nil {
		return sim.State{}, err
	}
	return cursorStateFromLog(log, cursor)
}

func (s *FileStore) MaxTurn() (int, error) {
	log, err := s.ReadLog()
	if err != nil {
		return 0, err
	}
	return maxTurnFromLog(log), nil
}

func (s *FileStore) ReadCursor() (int, bool, error) {
	body, err := os.ReadFile(s.cursorPath())
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read cursor %s: %w", s.cursorPath(), err)
	}
	cursor, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil {
		return 0, false, sim.Parsef(err, "cursor file %s", s.cursorPath())
	}
	return cursor, true, nil
}

func (s *FileStore) WriteCursor(cursor int) error {
	if err := os.WriteFile(s.cursorPath(), []byte(strconv.Itoa(cursor)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write cursor %s: %w", s.cursorPath(), err)
	}
	return nil
}

func (s *FileStore) ReadMeta() (overlay.Meta, error) {
	body, err := os.ReadFile(s.metaPath())
	if err != nil {
		if os.IsNotExist(err) {
			return overlay.Meta{}, nil
		}
		return overlay.Meta{}, fmt.Errorf("read meta %s: %w", s.metaPath(), err)
	}
	var meta overlay.Meta
	if err := json.Unmarshal(body, &meta); err != nil {
		return overlay.Meta{}, sim.Parsef(err, "meta file %s", s.metaPath())
	}
	return meta, nil
}

func (s *FileStore) WriteMeta(meta overlay.Meta) error {
	body, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	if err := os.WriteFile(s.metaPath(), body, 0o644); err != nil {
		return fmt.Errorf("write meta %s: %w", s.metaPath(), err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
