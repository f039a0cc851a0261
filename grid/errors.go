// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/hexlath/layout"
)

// Sentinel errors. Every error returned by this package wraps exactly one of
// them inside a *GridError; branch with errors.Is.
var (
	// ErrUndefinedLayout indicates a layout outside the four defined variants.
	ErrUndefinedLayout = errors.New("grid: undefined layout")

	// ErrNotNeighbors indicates an operation that requires two adjacent cells
	// received cells that are not adjacent.
	ErrNotNeighbors = errors.New("grid: coordinates are not neighbors")

	// ErrNeighborNotFound indicates the queried cell is not among the six
	// neighbors of the center.
	ErrNeighborNotFound = errors.New("grid: neighbor not found")
)

// Arg is a named argument captured for diagnostics.
type Arg struct {
	Name  string
	Value any
}

// GridError carries the failing operation, the grid state and the offending
// arguments. Err is the sentinel.
type GridError struct {
	Op        string
	Layout    layout.Layout
	Inscribed float64
	Described float64
	Args      []Arg
	Err       error
}

// Error formats as "Op(layout=..., inscribed=..., described=..., name=value...): sentinel".
func (e *GridError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(layout=%s, inscribed=%g, described=%g", e.Op, e.Layout, e.Inscribed, e.Described)
	for _, a := range e.Args {
		fmt.Fprintf(&b, ", %s=%v", a.Name, a.Value)
	}
	fmt.Fprintf(&b, "): %v", e.Err)
	return b.String()
}

// Unwrap exposes the sentinel to errors.Is.
func (e *GridError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer so loggers receive the field dump as a
// group instead of a flat string.
func (e *GridError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 5+len(e.Args))
	attrs = append(attrs,
		slog.String("op", e.Op),
		slog.String("layout", e.Layout.String()),
		slog.Float64("inscribed", e.Inscribed),
		slog.Float64("described", e.Described),
	)
	for _, a := range e.Args {
		attrs = append(attrs, slog.String(a.Name, fmt.Sprint(a.Value)))
	}
	attrs = append(attrs, slog.String("err", e.Err.Error()))
	return slog.GroupValue(attrs...)
}

// fail builds a *GridError for op against g's state.
func (g *Grid) fail(op string, err error, args ...Arg) *GridError {
	return &GridError{
		Op:        op,
		Layout:    g.layout,
		Inscribed: g.inscribed,
		Described: g.described,
		Args:      args,
		Err:       err,
	}
}

// undefined is the panic value for the default branch of a layout switch.
// It can only trigger on a zero Grid that bypassed New.
func (g *Grid) undefined(op string, args ...Arg) *GridError {
	return g.fail(op, ErrUndefinedLayout, args...)
}
