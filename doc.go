/*
Package stringmap provides a fixed-bucket-count hash table mapping string
keys to string values.

StringMap is designed for configuration-style data: tens of entries loaded
from a file or resource database, written once and read many times. It
resolves collisions by separate chaining and never resizes, so lookup cost
is bounded by chain length with no rehash pauses.

Basic usage:

	import "github.com/theflywheel/stringmap"

	m := stringmap.New()

	// Insert data
	if err := m.Insert("host", "example.com"); err != nil {
		log.Fatal(err)
	}

	// Retrieve data
	value, ok := m.Get("host")
	if ok {
		fmt.Println("Value:", value)
	}

Features:

  - Fixed bucket count (256 by default, configurable with WithBuckets)
  - Separate chaining for collision resolution
  - Last-write-wins overwrite when a key is inserted again
  - xxHash key hashing, overridable with WithHasher
  - Optional structured trace logging of bucket and chain positions

Implementation Details:

The table is an array of bucket head slots. Each head carries an occupied
flag and holds the first entry of its chain in place; colliding entries
are linked from it in insertion order. Keys are matched by content
equality and hashed over their full byte content, so any two distinct
strings remain independently retrievable even when they share a bucket.
Inserting an existing key overwrites its value in place and does not grow
the table. There is no remove operation; a map is discarded whole or
emptied with Reset.

There is no internal locking. The table targets single-threaded use, and
callers sharing one map across goroutines must serialize access with their
own lock. A table that outgrows its bucket count degrades to longer chains
but stays correct.
*/
package stringmap
