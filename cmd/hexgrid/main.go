// Command hexgrid prints geometry and topology facts about cells of a hex
// grid described by a config file (see package config).
//
// Usage:
//
//	hexgrid [-config grid.yaml] [-x 0 -y 0] [-radius 1] [-to x,y] <query>
//
// Queries: info, center, corners, neighbors, ring, spiral, distance, between, line.
// Cells are given as offset coordinates of the configured layout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hexlath/config"
	"github.com/katalvlaran/hexlath/coord"
	"github.com/katalvlaran/hexlath/grid"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "YAML grid config (optional)")
	x := flag.Int("x", 0, "offset column of the cell")
	y := flag.Int("y", 0, "offset row of the cell")
	radius := flag.Int("radius", 1, "ring radius / spiral ring count")
	to := flag.String("to", "1,0", "second cell as x,y for distance, between and line")
	flag.Parse()

	query := "info"
	if flag.NArg() > 0 {
		query = flag.Arg(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", "path", *configPath, "err", err)
		os.Exit(1)
	}
	g, err := cfg.NewGrid()
	if err != nil {
		logger.Error("failed to build grid", "err", err)
		os.Exit(1)
	}
	other, err := parseOffset(*to)
	if err != nil {
		logger.Error("bad -to flag", "value", *to, "err", err)
		os.Exit(2)
	}

	q := request{cell: coord.NewOffset(*x, *y), other: other, radius: *radius}
	if err := run(os.Stdout, g, query, q); err != nil {
		logger.Error("query failed", "query", query, "err", err)
		os.Exit(1)
	}
}

// request holds the parsed cell arguments of one query.
type request struct {
	cell, other coord.Offset
	radius      int
}

// run executes query against g and writes the answer to w.
func run(w io.Writer, g *grid.Grid, query string, q request) error {
	switch query {
	case "info":
		fmt.Fprintf(w, "layout=%s inscribed=%g described=%g\n", g.Layout(), g.InscribedRadius(), g.DescribedRadius())
		fmt.Fprintf(w, "horizontal=%g vertical=%g first-neighbor=%g°\n", g.HorizontalOffset(), g.VerticalOffset(), g.AngleToFirstNeighbor())
		c := g.OffsetToCubic(q.cell)
		fmt.Fprintf(w, "%v = %v = %v\n", q.cell, c.Axial(), c)
	case "center":
		fmt.Fprintln(w, g.OffsetToPoint(q.cell))
	case "corners":
		for i, p := range g.Corners(g.OffsetToPoint(q.cell)) {
			fmt.Fprintf(w, "%d %v\n", i, p)
		}
	case "neighbors":
		i := 0
		for n := range g.OffsetNeighbors(q.cell) {
			fmt.Fprintf(w, "%d %v\n", i, n)
			i++
		}
	case "ring":
		for n := range g.OffsetNeighborsRing(q.cell, q.radius) {
			fmt.Fprintln(w, n)
		}
	case "spiral":
		for n := range g.OffsetNeighborsAround(q.cell, q.radius) {
			fmt.Fprintln(w, n)
		}
	case "distance":
		fmt.Fprintln(w, g.OffsetDistance(q.cell, q.other))
	case "between":
		p, err := g.OffsetPointBetweenNeighbors(q.cell, q.other)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, p)
	case "line":
		for _, n := range g.OffsetLine(q.cell, q.other) {
			fmt.Fprintln(w, n)
		}
	default:
		return fmt.Errorf("unknown query %q", query)
	}
	return nil
}

// parseOffset reads "x,y".
func parseOffset(s string) (coord.Offset, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return coord.Offset{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return coord.Offset{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return coord.Offset{}, err
	}
	return coord.NewOffset(x, y), nil
}
