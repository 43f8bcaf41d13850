// Package astar runs A* over a grid.Grid and exposes the frontier to an
// observer after every expansion.
//
// Search is single-threaded and synchronous. Once per loop iteration it calls
// the caller's onStep callback, which may render the grid or cancel the
// context; cancellation is honored at the next loop check and reported as the
// Cancelled outcome. Found, NotFound and Cancelled are outcomes, not errors:
// only broken preconditions return an error.
//
// Cell states on the grid are the visible search state. Neighbors become Open
// when first added to the frontier, expanded cells other than start become
// Closed, and on success the cells between start and end become Path.
package astar
