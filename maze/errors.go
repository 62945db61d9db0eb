package maze

import "errors"

var (
	// ErrTooSmall indicates a maze narrower or lower than MinSide.
	ErrTooSmall = errors.New("maze: grid must be at least 2×2")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrNotPassable indicates start or end placed on an impassable node.
	ErrNotPassable = errors.New("maze: node is not passable")
	// ErrProtectedNode indicates an attempt to wall off the start or end node.
	ErrProtectedNode = errors.New("maze: start and end nodes must stay passable")
	// ErrBadResize indicates a non-positive or negative resize request.
	ErrBadResize = errors.New("maze: resize must grow by a non-negative amount in each dimension and at least one overall")
	// ErrNilFactory indicates a maze built without a NodeFactory.
	ErrNilFactory = errors.New("maze: node factory is nil")
	// ErrInvalidFactory indicates an inconsistent FactoryConfig.
	ErrInvalidFactory = errors.New("maze: invalid factory configuration")
	// ErrPaletteExhausted indicates the palette could not be filled with distinct
	// colors in the configured brightness interval.
	ErrPaletteExhausted = errors.New("maze: palette too large for available brightness range")
)
