package utils

import (
	"sync"
)

// OptionalMutex locks only when UseMutex is set, so allocators can choose
// between single-owner and thread-safe operation at construction without
// branching at every call site.
type OptionalMutex struct {
	Mutex    sync.Mutex
	UseMutex bool
}

func (m *OptionalMutex) Lock() {
	if m.UseMutex {
		m.Mutex.Lock()
	}
}

func (m *OptionalMutex) Unlock() {
	if m.UseMutex {
		m.Mutex.Unlock()
	}
}
