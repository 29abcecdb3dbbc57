// Package clipboard provides key-value stores that back the editor's
// cut, copy and paste commands.
//
// Every store satisfies editor.Store:
//
//	engine := editor.NewEngine(clipboard.NewMemory())
//
// Memory keeps values in process and suits tests. System uses the host
// clipboard so frames can be pasted between editor instances. SQLite keeps
// values in a database file so a copied frame survives restarts.
package clipboard

import "sync"

// Memory is an in-process store. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the value stored at key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value at key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// Len returns the number of occupied slots.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.values)
}
