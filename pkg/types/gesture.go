package types

// Point is a single timed sample of a stroke
type Point struct {
	X         float32 `msgpack:"x" yaml:"x" toml:"x"`
	Y         float32 `msgpack:"y" yaml:"y" toml:"y"`
	Timestamp int64   `msgpack:"t" yaml:"t" toml:"t"`
}

// Stroke is a continuous sequence of points
type Stroke struct {
	Points []Point `msgpack:"points" yaml:"points" toml:"points"`
}

// Gesture is one recorded sample stored under an entry label
type Gesture struct {
	ID      int64    `msgpack:"id" yaml:"id" toml:"id"`
	Strokes []Stroke `msgpack:"strokes" yaml:"strokes" toml:"strokes"`
}

// PointCount returns the total number of points across all strokes
func (g Gesture) PointCount() int {
	n := 0
	for _, s := range g.Strokes {
		n += len(s.Points)
	}
	return n
}

// Clone returns a deep copy of the gesture
func (g Gesture) Clone() Gesture {
	out := Gesture{ID: g.ID}
	if g.Strokes == nil {
		return out
	}
	out.Strokes = make([]Stroke, len(g.Strokes))
	for i, s := range g.Strokes {
		if s.Points != nil {
			out.Strokes[i].Points = append([]Point(nil), s.Points...)
		}
	}
	return out
}
