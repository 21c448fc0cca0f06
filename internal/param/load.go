package param

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single parameter line.
const maxLineSize = 1 << 20

// LoadFile merges the parameters in the file at path into the store.
//
// It returns the number of keys in the store after loading, which includes
// keys that were present before the call. Open and read failures are
// returned as *LoadError; malformed lines are skipped.
func (s *Store) LoadFile(path string) (int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return s.Len(), &LoadError{Path: path, Err: err}
	}
	defer fh.Close()

	n, err := s.Load(fh)
	var le *LoadError
	if errors.As(err, &le) {
		le.Path = path
	}
	return n, err
}

// Load merges parameters read from r into the store, one line at a time.
// Lines read before a failure remain merged.
func (s *Store) Load(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	ln := 0
	for sc.Scan() {
		ln++
		key, value, ok := ParseLine(sc.Text())
		if !ok {
			continue
		}
		s.Set(key, value)
	}
	if err := sc.Err(); err != nil {
		return s.Len(), &LoadError{Line: ln, Err: err}
	}
	return s.Len(), nil
}

// ParseLine extracts a normalized key and value from one parameter line.
// ok is false for blank, comment-only and malformed lines.
func ParseLine(line string) (key, value string, ok bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}
	if strings.Count(line, "=") != 1 {
		return "", "", false
	}
	k, v, _ := strings.Cut(line, "=")
	key = NormalizeKey(k)
	value = strings.TrimSpace(v)
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}
