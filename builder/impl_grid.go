// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// impl_grid.go — Grid(rows, cols): orthogonal lattice with 4-neighborhood.
//
// Vertices are added row-major with ID base + r*cols + c and spread evenly
// over the plane; for every cell the right then the bottom link is emitted.

package builder

import (
	"github.com/katalvlaran/routesim/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols lattice.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return builderErrorf(methodGrid, "rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGridDim, ErrTooFewVertices)
		}

		base := nextID(g)
		step := cfg.side / float64(max(rows, cols))
		id := func(r, c int) int { return base + r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pos := core.Position{X: float64(c) * step, Y: float64(r) * step}
				if err := g.AddVertex(id(r, c), pos); err != nil {
					return builderErrorf(methodGrid, "AddVertex(%d): %w", id(r, c), err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
