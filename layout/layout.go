// SPDX-License-Identifier: MIT

// Package layout enumerates the four hexagonal grid layout variants.
//
// A variant combines an Orientation (pointy-top or flat-top cells) with a
// Parity rule (whether odd- or even-indexed rows/columns receive the half-cell
// shift). Pointy layouts shift rows; flat layouts shift columns.
//
// The set is closed: PointyOdd, PointyEven, FlatOdd, FlatEven. The zero value
// Undefined marks an unset configuration and is rejected by grid.New.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLayout indicates a name that does not denote any layout variant.
var ErrUnknownLayout = errors.New("layout: unknown layout")

// Orientation selects how a cell is drawn.
type Orientation int

const (
	// Pointy cells have a vertex at the top; rows are offset.
	Pointy Orientation = iota
	// Flat cells have an edge at the top; columns are offset.
	Flat
)

// String returns "pointy" or "flat".
func (o Orientation) String() string {
	if o == Flat {
		return "flat"
	}
	return "pointy"
}

// Parity selects which rows (pointy) or columns (flat) are shifted.
type Parity int

const (
	// Odd shifts odd-indexed rows/columns.
	Odd Parity = iota
	// Even shifts even-indexed rows/columns.
	Even
)

// String returns "odd" or "even".
func (p Parity) String() string {
	if p == Even {
		return "even"
	}
	return "odd"
}

// Layout is one of the four grid layout variants.
type Layout int

const (
	// Undefined is the zero value; it is never a valid layout.
	Undefined Layout = iota
	// PointyOdd: pointy-top cells, odd rows shifted right.
	PointyOdd
	// PointyEven: pointy-top cells, even rows shifted right.
	PointyEven
	// FlatOdd: flat-top cells, odd columns shifted down.
	FlatOdd
	// FlatEven: flat-top cells, even columns shifted down.
	FlatEven
)

// All lists every valid layout in declaration order.
var All = [4]Layout{PointyOdd, PointyEven, FlatOdd, FlatEven}

var names = map[Layout]string{
	PointyOdd:  "pointy-odd",
	PointyEven: "pointy-even",
	FlatOdd:    "flat-odd",
	FlatEven:   "flat-even",
}

// Valid reports whether l is one of the four defined variants.
func (l Layout) Valid() bool {
	_, ok := names[l]
	return ok
}

// Orientation returns the cell orientation of l.
// The result for an invalid layout is meaningless; check Valid first.
func (l Layout) Orientation() Orientation {
	if l == FlatOdd || l == FlatEven {
		return Flat
	}
	return Pointy
}

// Parity returns the shift parity of l.
func (l Layout) Parity() Parity {
	if l == PointyEven || l == FlatEven {
		return Even
	}
	return Odd
}

// String returns the canonical kebab-case name, e.g. "pointy-odd".
func (l Layout) String() string {
	if n, ok := names[l]; ok {
		return n
	}
	return fmt.Sprintf("undefined(%d)", int(l))
}

// Of assembles a layout from its orientation and parity.
func Of(o Orientation, p Parity) Layout {
	switch {
	case o == Pointy && p == Odd:
		return PointyOdd
	case o == Pointy && p == Even:
		return PointyEven
	case o == Flat && p == Odd:
		return FlatOdd
	case o == Flat && p == Even:
		return FlatEven
	}
	return Undefined
}

// Parse resolves a layout name. It accepts the canonical names as well as
// the camel-case Go identifiers and underscore forms, case-insensitively:
// "pointy-odd", "PointyOdd", "pointy_odd" all yield PointyOdd.
func Parse(s string) (Layout, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for l, n := range names {
		if strings.ReplaceAll(n, "-", "") == key {
			return l, nil
		}
	}
	return Undefined, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayout, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (l *Layout) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
