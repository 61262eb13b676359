package game

import (
	"fmt"
	"log"
	"strings"
	"sync"
)

// Manager keeps the games of one process, keyed by their uuid.
type Manager struct {
	mu     sync.RWMutex
	games  map[string]*Game
	order  []string
	logger *log.Logger
}

func NewManager(logger *log.Logger) *Manager {
	return &Manager{
		games:  make(map[string]*Game),
		logger: logger,
	}
}

// NewGame starts a game from fen, or from the initial position if fen is empty.
func (m *Manager) NewGame(fen string) (*Game, error) {
	var g *Game
	if strings.TrimSpace(fen) == "" {
		g = New()
	} else {
		var err error
		g, err = NewFromFEN(fen)
		if err != nil {
			return nil, err
		}
	}
	m.mu.Lock()
	m.games[g.ID] = g
	m.order = append(m.order, g.ID)
	m.mu.Unlock()
	if m.logger != nil {
		m.logger.Println("new game", "id", g.ID)
	}
	return g, nil
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrGameNotFound, id)
	}
	return g, nil
}

// Find resolves an id or a unique id prefix.
func (m *Manager) Find(prefix string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[prefix]; ok {
		return g, nil
	}
	var found *Game
	for id, g := range m.games {
		if prefix != "" && strings.HasPrefix(id, prefix) {
			if found != nil {
				return nil, fmt.Errorf("ambiguous game id %q", prefix)
			}
			found = g
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %v", ErrGameNotFound, prefix)
	}
	return found, nil
}

// List returns the games in creation order.
func (m *Manager) List() []*Game {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result = make([]*Game, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.games[id])
	}
	return result
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %v", ErrGameNotFound, id)
	}
	delete(m.games, id)
	for i, gameID := range m.order {
		if gameID == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
