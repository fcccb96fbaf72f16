package stringmap

import "github.com/sirupsen/logrus"

// Option configures a StringMap at construction time.
type Option func(*StringMap)

// WithBuckets sets the bucket count. The count is fixed for the map's
// lifetime; there is no resizing. Values below 1 are ignored.
func WithBuckets(n int) Option {
	return func(m *StringMap) {
		if n > 0 {
			m.nbuckets = n
		}
	}
}

// WithHasher overrides the default xxHash key hasher. The function must be
// a pure function of the key's content bytes: equal keys must hash equal
// for the lifetime of the map.
func WithHasher(fn func(string) uint32) Option {
	return func(m *StringMap) {
		if fn != nil {
			m.hash = fn
		}
	}
}

// WithLogger enables debug-level tracing of inserts and lookups, recording
// the bucket index and chain position of each operation. A nil logger
// disables tracing, which is the default.
func WithLogger(log *logrus.Logger) Option {
	return func(m *StringMap) {
		m.log = log
	}
}
