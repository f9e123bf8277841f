// Package store persists every data set as a JSON file in one data directory.
//
// Each data type has a fixed default file name that may be overridden per
// type. Reads and writes of a Store are serialized; writes go to a temp file
// that is renamed over the target, so a crash never leaves a half-written
// data file behind.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"db-standard/internal/model"
)

type Store struct {
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	files map[model.DataType]string
}

// New creates a store rooted at dir. The directory is created on first write.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		dir:    dir,
		logger: logger,
		files:  make(map[model.DataType]string),
	}
}

func (s *Store) Dir() string { return s.dir }

// SetFilename overrides the default file name for a data type given by name
// (as found under data.files.<type> in the config).
func (s *Store) SetFilename(typeName, filename string) error {
	t, err := model.ParseDataType(typeName)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownDataType, typeName)
	}
	if err := checkFilename(filename); err != nil {
		return err
	}
	s.mu.Lock()
	s.files[t] = filename
	s.mu.Unlock()
	return nil
}

// Filename returns the effective file name for t.
func (s *Store) Filename(t model.DataType) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filenameLocked(t)
}

func (s *Store) filenameLocked(t model.DataType) string {
	if f, ok := s.files[t]; ok && f != "" {
		return f
	}
	return t.DefaultFilename()
}

// 데이터 디렉터리 밖을 가리키는 파일명은 허용하지 않는다
func checkFilename(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return fmt.Errorf("invalid data file name %q", name)
	}
	return nil
}

// NewEntryID returns a new random record id.
func NewEntryID() string {
	return uuid.NewString()
}

// Load reads the data set for kind. An empty filename selects the configured
// or default file. A missing file yields an empty data set.
func Load[T any](s *Store, kind model.Kind[T], filename string) (*model.DataFile[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s, kind, filename)
}

func load[T any](s *Store, kind model.Kind[T], filename string) (*model.DataFile[T], error) {
	if filename == "" {
		filename = s.filenameLocked(kind.Type)
	} else if err := checkFilename(filename); err != nil {
		return nil, err
	}

	data := model.NewDataFile[T](nil)
	found, err := s.readJSON(kind.Type.Label(), filename, data)
	if err != nil {
		return nil, err
	}
	if !found || data.Entries == nil {
		data.Entries = []T{}
	}
	data.TotalCount = len(data.Entries)
	return data, nil
}

// Save writes data for kind, stamping lastUpdated and totalCount.
func Save[T any](s *Store, kind model.Kind[T], filename string, data *model.DataFile[T]) error {
	if data == nil {
		return fmt.Errorf("save %s: nil data", kind.Type)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if filename == "" {
		filename = s.filenameLocked(kind.Type)
	} else if err := checkFilename(filename); err != nil {
		return err
	}
	if data.Entries == nil {
		data.Entries = []T{}
	}
	data.LastUpdated = time.Now().UTC()
	data.TotalCount = len(data.Entries)

	if err := s.writeJSON(filename, data); err != nil {
		return fmt.Errorf("save %s: %w", kind.Type, err)
	}
	s.logger.Debug("Saved data file",
		slog.String("type", string(kind.Type)),
		slog.String("file", filename),
		slog.Int("count", data.TotalCount))
	return nil
}

// readJSON decodes dir/filename into v. It reports false when the file does
// not exist or is blank.
func (s *Store) readJSON(name, filename string, v any) (bool, error) {
	path := filepath.Join(s.dir, filename)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, &ParseError{Name: name, Path: path, Err: err}
	}
	return true, nil
}

func (s *Store) writeJSON(filename string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+filename+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmpPath, filepath.Join(s.dir, filename)); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	success = true
	return nil
}
