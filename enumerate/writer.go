package enumerate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// levelWriter serialises circuit strings onto one per-T-count file.
// Any write error is sticky and fatal to the level.
type levelWriter struct {
	mu   sync.Mutex
	path string
	f    *os.File
	w    *bufio.Writer
}

// openLevel truncates and opens <dataDir>/<tcount>.dat.
func openLevel(dataDir string, tcount int) (*levelWriter, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutput, err)
	}
	path := filepath.Join(dataDir, strconv.Itoa(tcount)+".dat")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return &levelWriter{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// WriteLine appends one circuit string; concurrent writers serialise
// on the writer's lock.
func (lw *levelWriter) WriteLine(s string) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if _, err := lw.w.WriteString(s); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	if err := lw.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return nil
}

// Close flushes and closes the file.
func (lw *levelWriter) Close() error {
	if err := lw.w.Flush(); err != nil {
		lw.f.Close()
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	if err := lw.f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return nil
}
