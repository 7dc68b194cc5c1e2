package types

import (
	"iter"
	"slices"
	"strings"
)

// Metadata holds the [key:value] tags of an LRC document.
//
// Keys are unique and always iterated in ascending byte order, independent
// of insertion order. The formatter relies on this ordering when writing
// tags back out.
//
// The zero value is an empty, ready-to-use Metadata.
type Metadata struct {
	entries []metadataEntry
}

type metadataEntry struct {
	key   string
	value string
}

func (m *Metadata) search(key string) (int, bool) {
	return slices.BinarySearchFunc(m.entries, key, func(e metadataEntry, k string) int {
		return strings.Compare(e.key, k)
	})
}

// Set stores value under key, replacing any earlier value.
//
// Set does not validate key or value; use Lyrics.SetMetadata for checked
// insertion.
func (m *Metadata) Set(key, value string) {
	i, found := m.search(key)
	if found {
		m.entries[i].value = value
		return
	}
	m.entries = slices.Insert(m.entries, i, metadataEntry{key: key, value: value})
}

// Get returns the value stored under key.
func (m *Metadata) Get(key string) (string, bool) {
	i, found := m.search(key)
	if !found {
		return "", false
	}
	return m.entries[i].value, true
}

// Has reports whether key is present.
func (m *Metadata) Has(key string) bool {
	_, found := m.search(key)
	return found
}

// Delete removes key and reports whether it was present.
func (m *Metadata) Delete(key string) bool {
	i, found := m.search(key)
	if !found {
		return false
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	return true
}

// Len returns the number of tags.
func (m *Metadata) Len() int {
	return len(m.entries)
}

// All returns an iterator over key/value pairs in ascending key order.
//
// Example:
//
//	for key, value := range lyrics.Metadata().All() {
//		fmt.Printf("%s = %s\n", key, value)
//	}
func (m *Metadata) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in ascending order.
func (m *Metadata) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range m.entries {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Map copies the tags into a plain map.
func (m *Metadata) Map() map[string]string {
	out := make(map[string]string, len(m.entries))
	for _, e := range m.entries {
		out[e.key] = e.value
	}
	return out
}

// Clone returns an independent copy.
func (m *Metadata) Clone() Metadata {
	return Metadata{entries: slices.Clone(m.entries)}
}
