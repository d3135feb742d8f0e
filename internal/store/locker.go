package store

import (
	"sort"
	"sync"
)

// Locker serializes read-modify-write spans per collection. Each valid
// collection gets its own mutex, so operations on different collections
// proceed in parallel while two mutations of the same collection cannot
// interleave and drop an update.
type Locker struct {
	mu map[string]*sync.Mutex
}

// NewLocker allocates one mutex per valid collection.
func NewLocker() *Locker {
	l := &Locker{mu: make(map[string]*sync.Mutex, len(Collections))}
	for _, name := range Collections {
		l.mu[name] = &sync.Mutex{}
	}
	return l
}

// Lock acquires the mutex for a single collection and returns its unlock.
func (l *Locker) Lock(collection string) func() {
	m := l.mu[collection]
	m.Lock()
	return m.Unlock
}

// LockAll acquires the mutexes for several collections in lexical order,
// which keeps multi-collection operations deadlock-free. The returned
// function releases them in reverse order.
func (l *Locker) LockAll(collections ...string) func() {
	names := make([]string, 0, len(collections))
	seen := make(map[string]bool, len(collections))
	for _, name := range collections {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		l.mu[name].Lock()
	}
	return func() {
		for i := len(names) - 1; i >= 0; i-- {
			l.mu[names[i]].Unlock()
		}
	}
}
