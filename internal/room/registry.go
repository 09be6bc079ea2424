package room

import "github.com/google/uuid"

// Registry resolves portal target ids to rooms. Cross-room references are
// ids, not live links, so targets are looked up here after generation.
type Registry struct {
	rooms map[uuid.UUID]Room
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[uuid.UUID]Room)}
}

// Add registers a room under its id.
func (g *Registry) Add(r Room) {
	g.rooms[r.ID()] = r
}

// Get returns the room with the given id, if registered.
func (g *Registry) Get(id uuid.UUID) (Room, bool) {
	r, ok := g.rooms[id]
	return r, ok
}

// Len returns the number of registered rooms.
func (g *Registry) Len() int {
	return len(g.rooms)
}
