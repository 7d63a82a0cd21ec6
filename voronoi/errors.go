package voronoi

import "errors"

var (
	// ErrCellCount is returned when a cells-per-edge entry is zero or negative.
	ErrCellCount = errors.New("voronoi: cells per edge must be positive")

	// ErrDimensionMismatch is returned when inputs disagree on the number of
	// dimensions (cells-per-edge length, point columns, edge ladders).
	ErrDimensionMismatch = errors.New("voronoi: dimension counts disagree")

	// ErrNoLadders is returned when an empty ladder or edge set is supplied.
	ErrNoLadders = errors.New("voronoi: ladder set is empty")

	// ErrLadderTooShort is returned when a ladder has fewer than two values,
	// leaving no adjacent pair to take a midpoint of.
	ErrLadderTooShort = errors.New("voronoi: ladder needs at least two values")

	// ErrLadderOrder is returned when a ladder is not strictly increasing.
	ErrLadderOrder = errors.New("voronoi: ladder values must strictly increase")

	// ErrLayerOutsideDomain is returned by DoubleLayer when a first-layer
	// generator lies on or outside a domain face it must be mirrored across.
	// The rectangle is too close to that face for a bounding shell to fit.
	ErrLayerOutsideDomain = errors.New("voronoi: bounding layer falls outside the surrounding domain")

	// ErrShapeMismatch is returned by CellVolumes when the edge lattice's
	// cell count differs from the number of points.
	ErrShapeMismatch = errors.New("voronoi: cell count does not match point count")

	// ErrNoPoints is returned when a point matrix is nil or has no rows.
	ErrNoPoints = errors.New("voronoi: point set is empty")

	// ErrPointOutside is returned (under EmptyCellError) when a point falls
	// outside every bin of the edge lattice.
	ErrPointOutside = errors.New("voronoi: point falls outside the edge lattice")

	// ErrEmptyCell is returned (under EmptyCellError) when a bin of the edge
	// lattice contains no point, so its volume cannot be attributed.
	ErrEmptyCell = errors.New("voronoi: tessellation cell contains no point")

	// ErrPolicyUnknown is returned for an undefined EmptyCellPolicy value.
	ErrPolicyUnknown = errors.New("voronoi: unknown empty-cell policy")
)
