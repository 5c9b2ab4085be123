package cache

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dshills/primes/internal/filter"
)

// Store persists the prime set between invocations.
type Store interface {
	// Load returns the persisted primes. A store that has never been
	// written returns an empty slice and a nil error.
	Load(ctx context.Context) ([]uint64, error)

	// Save replaces the persisted content with primes, which are ascending.
	Save(ctx context.Context, primes []uint64) error

	// Clear removes the persisted content.
	Clear(ctx context.Context) error

	// Location describes where the data lives.
	Location() string
}

// InitializationError reports persisted storage that exists but cannot be
// read or parsed.
type InitializationError struct {
	Location string
	Err      error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initializing prime cache from %s: %v", e.Location, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// IsInitializationError checks if an error is an InitializationError.
func IsInitializationError(err error) bool {
	var ie *InitializationError
	return errors.As(err, &ie)
}

// FileStore keeps the primes in a text file, one decimal value per line.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore. If path is empty, uses the default
// cache file location.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultCacheFile()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileStore{path: path}, nil
}

// Location returns the cache file path.
func (s *FileStore) Location() string {
	return s.path
}

// Load reads the cache file. A missing file yields an empty result.
func (s *FileStore) Load(ctx context.Context) ([]uint64, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &InitializationError{Location: s.path, Err: err}
	}
	primes, err := ParseRecords(string(data))
	if err != nil {
		return nil, &InitializationError{Location: s.path, Err: err}
	}
	return primes, nil
}

// Save rewrites the cache file through a temporary file so an interrupted
// write never leaves a truncated cache behind.
func (s *FileStore) Save(ctx context.Context, primes []uint64) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := WriteRecords(w, primes); err != nil {
		tmp.Close()
		return fmt.Errorf("writing cache file: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("writing cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing cache file: %w", err)
	}
	logrus.WithFields(logrus.Fields{"store": s.path, "primes": len(primes)}).Debug("cache file written")
	return nil
}

// Clear removes the cache file.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing cache file: %w", err)
	}
	return nil
}

// ParseRecords parses newline-delimited decimal values. Commas are accepted
// as separators too, so older comma-joined cache files still load.
func ParseRecords(data string) ([]uint64, error) {
	fields := strings.FieldsFunc(data, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
	primes := make([]uint64, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if !filter.PossiblyPrime(v) {
			return nil, fmt.Errorf("record %d: %d is not prime", i+1, v)
		}
		primes = append(primes, v)
	}
	return primes, nil
}

// WriteRecords writes one value per line, each followed by a newline.
func WriteRecords(w *bufio.Writer, primes []uint64) error {
	var buf [20]byte
	for _, p := range primes {
		if _, err := w.Write(strconv.AppendUint(buf[:0], p, 10)); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// DefaultCacheFile returns the platform-appropriate cache file path.
func DefaultCacheFile() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "primes", "primes.txt"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "primes", "primes.txt"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "primes", "cache", "primes.txt"), nil
		}
		return filepath.Join(home, "AppData", "Local", "primes", "cache", "primes.txt"), nil
	default:
		return filepath.Join(home, ".cache", "primes", "primes.txt"), nil
	}
}
