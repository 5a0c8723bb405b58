// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d-%d: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures EdmondsKarp.
//   - Epsilon: treat residual capacities ≤ Epsilon as zero (default 1e-9).
//   - Logger: if non-nil, logs each augmentation at Debug level.
type FlowOptions struct {
	Epsilon float64
	Logger  logrus.FieldLogger
}

// DefaultOptions returns FlowOptions with Epsilon 1e-9 and no logging.
func DefaultOptions() FlowOptions {
	return FlowOptions{Epsilon: 1e-9}
}
