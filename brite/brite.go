// SPDX-License-Identifier: MIT

// Package brite loads network topologies written by the BRITE topology
// generator into a *core.Graph.
//
// Layout of a BRITE export:
//
//	Topology: ( 20 Nodes, 37 Edges )        ┐
//	Model (1 - RTWaxman):  ...              │ 4-line preamble
//	                                        │
//	Nodes: ( 20 )                           ┘
//	0	41	79	3	3	-1	RT_NODE          numNodes lines: id, x, y, ...
//	...
//	                                        ┐
//	                                        │ 3-line separator
//	Edges: ( 37 ):                          ┘
//	0	3	0	75.5	0.25	10.0	-1	-1	E_RT	U   numEdges lines
//
// Node lines need at least 3 tab-separated fields; the vertex ID is the line
// ordinal and fields 1 and 2 are its (x, y) position. Edge lines need at
// least 6 fields: endpoints at 1 and 2, latency weight at 4 and raw
// bandwidth at 5, divided by the capacity scale (100) on load.
//
// The loader does not try to recover from malformed input: short files,
// missing fields and unparsable numbers are reported with their line number.
package brite

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/routesim/core"
)

// Defaults matching the usual Waxman export.
const (
	DefaultNumNodes      = 100
	DefaultNumEdges      = 200
	DefaultCapacityScale = 100.0

	preambleLines  = 4
	separatorLines = 3
)

// Sentinel errors.
var (
	ErrShortFile  = errors.New("brite: unexpected end of file")
	ErrFieldCount = errors.New("brite: too few fields")
	ErrBadNumber  = errors.New("brite: bad number")
	ErrBadHeader  = errors.New("brite: cannot read counts from header")
)

// Options controls how many records are read.
type Options struct {
	// NumNodes and NumEdges are the record counts. When both are zero the
	// counts are read from the "Topology: ( N Nodes, M Edges )" header.
	NumNodes int
	NumEdges int

	// CapacityScale divides the raw bandwidth column.
	CapacityScale float64

	Logger logrus.FieldLogger
}

// DefaultOptions returns 100 nodes, 200 edges and a capacity scale of 100.
func DefaultOptions() Options {
	return Options{
		NumNodes:      DefaultNumNodes,
		NumEdges:      DefaultNumEdges,
		CapacityScale: DefaultCapacityScale,
		Logger:        logrus.StandardLogger(),
	}
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts Options) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("brite: open topology: %w", err)
	}
	defer f.Close()

	g, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// reader tracks line numbers for error messages.
type reader struct {
	sc   *bufio.Scanner
	line int
}

func (r *reader) next() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("brite: line %d: %w", r.line+1, err)
		}
		return "", fmt.Errorf("%w at line %d", ErrShortFile, r.line+1)
	}
	r.line++

	return strings.TrimSpace(r.sc.Text()), nil
}

func (r *reader) fields(min int) ([]string, error) {
	text, err := r.next()
	if err != nil {
		return nil, err
	}
	f := strings.Split(text, "\t")
	if len(f) < min {
		return nil, fmt.Errorf("%w at line %d: want %d, got %d", ErrFieldCount, r.line, min, len(f))
	}

	return f, nil
}

func (r *reader) number(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("%w at line %d: %v", ErrBadNumber, r.line, err)
	}

	return v, nil
}

func (r *reader) integer(field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%w at line %d: %v", ErrBadNumber, r.line, err)
	}

	return v, nil
}

// Load reads a BRITE topology from src.
func Load(src io.Reader, opts Options) (*core.Graph, error) {
	if opts.CapacityScale <= 0 {
		opts.CapacityScale = DefaultCapacityScale
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	r := &reader{sc: bufio.NewScanner(src)}

	// 1) Preamble; the first line may carry the counts.
	for i := 0; i < preambleLines; i++ {
		text, err := r.next()
		if err != nil {
			return nil, err
		}
		if i == 0 && opts.NumNodes == 0 && opts.NumEdges == 0 {
			if _, err = fmt.Sscanf(text, "Topology: ( %d Nodes, %d Edges )", &opts.NumNodes, &opts.NumEdges); err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadHeader, text, err)
			}
		}
	}

	g := core.NewGraph()

	// 2) Nodes: ID is the ordinal, position from fields 1 and 2.
	for i := 0; i < opts.NumNodes; i++ {
		f, err := r.fields(3)
		if err != nil {
			return nil, err
		}
		x, err := r.number(f[1])
		if err != nil {
			return nil, err
		}
		y, err := r.number(f[2])
		if err != nil {
			return nil, err
		}
		if err = g.AddVertex(i, core.Position{X: x, Y: y}); err != nil {
			return nil, fmt.Errorf("brite: line %d: %w", r.line, err)
		}
	}

	// 3) Separator block.
	for i := 0; i < separatorLines; i++ {
		if _, err := r.next(); err != nil {
			return nil, err
		}
	}

	// 4) Edges.
	for i := 0; i < opts.NumEdges; i++ {
		f, err := r.fields(6)
		if err != nil {
			return nil, err
		}
		from, err := r.integer(f[1])
		if err != nil {
			return nil, err
		}
		to, err := r.integer(f[2])
		if err != nil {
			return nil, err
		}
		w, err := r.number(f[4])
		if err != nil {
			return nil, err
		}
		c, err := r.number(f[5])
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(from, to, w, c/opts.CapacityScale); err != nil {
			return nil, fmt.Errorf("brite: line %d: %w", r.line, err)
		}
	}

	opts.Logger.WithFields(logrus.Fields{
		"nodes": g.VertexCount(),
		"edges": g.EdgeCount(),
		"lines": r.line,
	}).Debug("brite topology loaded")

	return g, nil
}
