package cart

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sync"
)

// sessionIDRegex keeps session identifiers filesystem-safe (uuid-shaped)
var sessionIDRegex = regexp.MustCompile(`^[a-fA-F0-9-]{1,64}$`)

// Manager hands out one Store per browsing session, each backed by its own
// snapshot file under dataDir.
type Manager struct {
	mu      sync.Mutex
	dataDir string
	stores  map[string]*Store
}

// NewManager creates a Manager persisting carts under dataDir/carts
func NewManager(dataDir string) *Manager {
	return &Manager{
		dataDir: filepath.Join(dataDir, "carts"),
		stores:  make(map[string]*Store),
	}
}

// Get returns the Store for the session, creating and rehydrating it on
// first use. An invalid session identifier is rejected.
func (m *Manager) Get(sessionID string) (*Store, error) {
	if !sessionIDRegex.MatchString(sessionID) {
		return nil, fmt.Errorf("invalid cart session id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionID]; ok {
		return store, nil
	}

	storage := NewFileStorage(filepath.Join(m.dataDir, sessionID+".json"))
	store := NewStore(storage)
	m.stores[sessionID] = store
	return store, nil
}
