package param

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pair is a single key/value entry from a Store snapshot.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DefaultObserver is called after ResolveOrDefault stores a default value.
type DefaultObserver func(key, value string)

// Option configures a Store.
type Option func(*Store)

// WithDefaultObserver registers fn to be notified of every default-fill.
//
// The observer runs after the store lock is released, so it may call back
// into the store.
func WithDefaultObserver(fn DefaultObserver) Option {
	return func(s *Store) {
		s.observer = fn
	}
}

// Store holds parameters as text values under lowercase keys.
type Store struct {
	mu       sync.Mutex
	entries  map[string]string
	observer DefaultObserver
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{entries: make(map[string]string)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeKey returns the lookup form of a parameter name: trimmed and
// lowercased. Case from the original input is never preserved.
func NormalizeKey(key string) string {
	// cases.Caser is stateful; one per call keeps NormalizeKey goroutine safe.
	return cases.Lower(language.Und).String(strings.TrimSpace(key))
}

// Set stores value under key, replacing any previous value, and returns value.
func (s *Store) Set(key, value string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[NormalizeKey(key)] = value
	return value
}

// Assign stores *value under key, or removes key when value is nil.
// It returns value unchanged so calls can be chained.
func (s *Store) Assign(key string, value *string) *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := NormalizeKey(key)
	if value == nil {
		delete(s.entries, k)
		return nil
	}
	s.entries[k] = *value
	return value
}

// Remove deletes key and returns the value it held.
// The boolean is false if key was not present.
func (s *Store) Remove(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := NormalizeKey(key)
	v, ok := s.entries[k]
	if ok {
		delete(s.entries, k)
	}
	return v, ok
}

// Lookup returns the value stored under key without default-fill.
func (s *Store) Lookup(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[NormalizeKey(key)]
	return v, ok
}

// ResolveOrDefault returns the value stored under key. If key is absent,
// def is stored under key first and then returned.
//
// This mutates the store on a miss: the first default wins, and the key
// shows up in Keys, Pairs and Len from then on.
func (s *Store) ResolveOrDefault(key, def string) string {
	k := NormalizeKey(key)

	s.mu.Lock()
	if v, ok := s.entries[k]; ok {
		s.mu.Unlock()
		return v
	}
	s.entries[k] = def
	observer := s.observer
	s.mu.Unlock()

	if observer != nil {
		observer(k, def)
	}
	return def
}

// Len returns the number of distinct keys in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Keys returns all keys in lexicographic order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Pairs returns a snapshot of all entries ordered by key.
// Returns nil when the store is empty.
func (s *Store) Pairs() []Pair {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return nil
	}
	pairs := make([]Pair, 0, len(s.entries))
	for k, v := range s.entries {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key < pairs[j].Key
	})
	return pairs
}

// Render returns one "key = value" line per entry, in Pairs order.
// An empty store renders as "".
func (s *Store) Render() string {
	var b strings.Builder
	for _, p := range s.Pairs() {
		b.WriteString(p.Key)
		b.WriteString(" = ")
		b.WriteString(p.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.entries)
}
