package stringmap

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// DefaultBuckets is the bucket count used when none is configured.
const DefaultBuckets = 256

// ErrEmptyKey is returned by Insert when given an empty key. Empty keys
// are rejected so that a missing entry and an entry under "" can never be
// confused.
var ErrEmptyKey = errors.New("stringmap: empty key")

// entry holds one key/value pair and its link to the next entry in the
// same bucket's chain, if any.
type entry struct {
	key   string
	value string
	next  *entry
}

// bucket is the head slot of a chain, embedded in the bucket array.
// occupied distinguishes an empty slot from one holding a pair.
type bucket struct {
	entry
	occupied bool
}

// StringMap is a fixed-bucket-count hash table mapping string keys to
// string values, resolving collisions by separate chaining.
type StringMap struct {
	buckets  []bucket
	count    int
	nbuckets int
	hash     func(string) uint32
	log      *logrus.Logger
}

// New creates an empty StringMap. With no options it uses DefaultBuckets
// buckets and xxHash for key hashing; see WithBuckets, WithHasher and
// WithLogger.
func New(opts ...Option) *StringMap {
	m := &StringMap{
		nbuckets: DefaultBuckets,
		hash:     hashKey,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.buckets = make([]bucket, m.nbuckets)
	return m
}

// bucketIndex maps a key to a bucket by hashing its content bytes.
func (m *StringMap) bucketIndex(key string) uint32 {
	return m.hash(key) % uint32(len(m.buckets))
}

// Insert adds or updates a key/value pair. Inserting a key that is already
// present overwrites its value in place, so the last write wins when the
// same setting arrives from more than one source. The value may be any
// string, including empty; an empty key returns ErrEmptyKey.
func (m *StringMap) Insert(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	idx := m.bucketIndex(key)
	head := &m.buckets[idx]

	if !head.occupied {
		head.key = key
		head.value = value
		head.next = nil
		head.occupied = true
		m.count++
		m.trace("insert", idx, 0, key)
		return nil
	}

	link := 0
	cell := &head.entry
	for {
		if cell.key == key {
			cell.value = value
			m.trace("update", idx, link, key)
			return nil
		}
		if cell.next == nil {
			break
		}
		cell = cell.next
		link++
	}

	cell.next = &entry{key: key, value: value}
	m.count++
	m.trace("insert", idx, link+1, key)
	return nil
}

// Get retrieves the value stored under key. The second return reports
// whether the key is present; probing for an absent key is not an error.
func (m *StringMap) Get(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	idx := m.bucketIndex(key)
	head := &m.buckets[idx]
	if !head.occupied {
		return "", false
	}

	link := 0
	for cell := &head.entry; cell != nil; cell = cell.next {
		if cell.key == key {
			m.trace("get", idx, link, key)
			return cell.value, true
		}
		link++
	}

	return "", false
}

// Len returns the number of distinct keys stored.
func (m *StringMap) Len() int {
	return m.count
}

// Reset empties every bucket, dropping all chains, and zeroes the count.
// The bucket count and hasher are kept, so the map is ready for reuse.
func (m *StringMap) Reset() {
	for i := range m.buckets {
		m.buckets[i] = bucket{}
	}
	m.count = 0
}

// trace emits a debug entry with the bucket index and chain link position
// when a logger is configured.
func (m *StringMap) trace(op string, bucket uint32, link int, key string) {
	if m.log == nil {
		return
	}
	m.log.WithFields(logrus.Fields{
		"bucket": bucket,
		"link":   link,
		"key":    key,
	}).Debug(op)
}
