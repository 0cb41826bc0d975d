package grid

// Room is an axis-aligned rectangle used while the partition algorithm lays
// out the map. Rooms are construction scaffolding; they are not part of the
// finished grid.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions including the room's own border
}

// Center returns the center position of the room.
func (r Room) Center() Position {
	return Position{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ContainsInterior reports whether the given point is inside the room
// excluding its one-cell border.
func (r Room) ContainsInterior(x, y int) bool {
	return x > r.X && x < r.X+r.Width-1 && y > r.Y && y < r.Y+r.Height-1
}

// Intersects reports whether this room overlaps another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
