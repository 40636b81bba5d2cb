package tourio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/uncross/geom"
	"github.com/katalvlaran/uncross/tour"
)

// Write emits one "x y" line per point.
func Write(w io.Writer, points []geom.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%d %d\n", p.X, p.Y); err != nil {
			return fmt.Errorf("write point: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush points: %w", err)
	}
	return nil
}

// WriteTour writes the points of t in tour order.
func WriteTour(w io.Writer, t tour.Tour) error {
	return Write(w, t.Points())
}

// Read parses the text format. It returns the points in file order; the
// caller decides whether they form a valid tour. Coordinates beyond
// geom.MaxCoord are a ParseError.
func Read(r io.Reader) ([]geom.Point, error) {
	var (
		sc     = bufio.NewScanner(r)
		out    []geom.Point
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	return out, nil
}

// parseLine accepts exactly two integer fields within geom.MaxCoord.
func parseLine(text string) (geom.Point, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return geom.Point{}, fmt.Errorf("got %d fields, want 2", len(fields))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return geom.Point{}, err
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return geom.Point{}, err
	}
	p := geom.Pt(x, y)
	if !p.InRange() {
		return geom.Point{}, fmt.Errorf("coordinate outside [-%d, %d]", geom.MaxCoord, geom.MaxCoord)
	}
	return p, nil
}

// CheckBounds verifies that every coordinate lies in [-bound, bound].
func CheckBounds(points []geom.Point, bound int) error {
	for i, p := range points {
		if p.X < -bound || p.X > bound || p.Y < -bound || p.Y > bound {
			return &BoundsError{Index: i, Point: p, Bound: bound}
		}
	}
	return nil
}

// Format renders points in the console form "[ (x,y), (x,y), ]".
func Format(points []geom.Point) string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, p := range points {
		sb.WriteString(p.String())
		sb.WriteString(", ")
	}
	sb.WriteByte(']')
	return sb.String()
}
