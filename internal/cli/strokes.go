package cli

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/types"
)

// parseStroke reads "x,y x,y ..." into a stroke. Timestamps are assigned
// from start in steps of 10ms, continuing across strokes.
func parseStroke(spec string, start int64) (types.Stroke, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return types.Stroke{}, errors.New(errors.ErrInvalidInput, "stroke has no points")
	}

	points := make([]types.Point, 0, len(fields))
	for i, field := range fields {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return types.Stroke{}, errors.Newf(errors.ErrInvalidInput, "point %q is not x,y", field)
		}
		x, err := strconv.ParseFloat(xs, 32)
		if err != nil {
			return types.Stroke{}, errors.Wrapf(err, errors.ErrInvalidInput, "bad x in point %q", field)
		}
		y, err := strconv.ParseFloat(ys, 32)
		if err != nil {
			return types.Stroke{}, errors.Wrapf(err, errors.ErrInvalidInput, "bad y in point %q", field)
		}
		points = append(points, types.Point{
			X:         float32(x),
			Y:         float32(y),
			Timestamp: start + int64(i)*10,
		})
	}
	return types.Stroke{Points: points}, nil
}

// parseGesture builds a gesture from one or more stroke specs
func parseGesture(id int64, specs []string) (types.Gesture, error) {
	if len(specs) == 0 {
		return types.Gesture{}, errors.New(errors.ErrInvalidInput, "at least one --stroke is required")
	}

	g := types.Gesture{ID: id}
	var ts int64
	for _, spec := range specs {
		stroke, err := parseStroke(spec, ts)
		if err != nil {
			return types.Gesture{}, err
		}
		ts += int64(len(stroke.Points)) * 10
		g.Strokes = append(g.Strokes, stroke)
	}
	return g, nil
}
