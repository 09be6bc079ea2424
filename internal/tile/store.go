package tile

import "github.com/samdwyer/dungen/internal/geometry"

// SparseStore maps local positions to tiles with no size restriction.
// Unwritten positions read as Void.
type SparseStore struct {
	tiles map[geometry.LocalPosition]Type
}

// NewSparseStore creates an empty sparse store.
func NewSparseStore() *SparseStore {
	return &SparseStore{tiles: make(map[geometry.LocalPosition]Type)}
}

// Get returns the tile at the position, defaulting to Void.
func (s *SparseStore) Get(p geometry.LocalPosition) Type {
	return s.tiles[p]
}

// Set inserts or overwrites the tile at the position. Writing Void is the
// idiomatic erase; the entry is kept so bounds stay monotonic.
func (s *SparseStore) Set(p geometry.LocalPosition, t Type) {
	s.tiles[p] = t
}

// Len returns the number of written positions.
func (s *SparseStore) Len() int {
	return len(s.tiles)
}

// DenseStore is a fixed-size grid of tiles.
type DenseStore struct {
	size  geometry.Size
	tiles [][]Type
}

// NewDenseStore creates a grid of the given size, all Void.
func NewDenseStore(size geometry.Size) *DenseStore {
	tiles := make([][]Type, size.Height)
	for y := range tiles {
		tiles[y] = make([]Type, size.Width)
	}
	return &DenseStore{size: size, tiles: tiles}
}

// Size returns the declared grid size.
func (d *DenseStore) Size() geometry.Size {
	return d.size
}

// Get returns the tile at the position, or Void if out of range.
func (d *DenseStore) Get(p geometry.LocalPosition) Type {
	if !d.inRange(p) {
		return Void
	}
	return d.tiles[p.Y][p.X]
}

// Set writes the tile at the position, reporting false if out of range.
func (d *DenseStore) Set(p geometry.LocalPosition, t Type) bool {
	if !d.inRange(p) {
		return false
	}
	d.tiles[p.Y][p.X] = t
	return true
}

func (d *DenseStore) inRange(p geometry.LocalPosition) bool {
	return p.X >= 0 && p.X < d.size.Width && p.Y >= 0 && p.Y < d.size.Height
}
