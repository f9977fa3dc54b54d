package gradient

import (
	"errors"
	"math"
	"sort"

	"github.com/grayramp/grayramp/internal/typeid"
)

// MaxPoints is the capacity of a PointSet and the length of the shading
// stage's uniform array.
const MaxPoints = 10

var (
	ErrCapacityExceeded = errors.New("point set is full")
	ErrInvalidPoint     = errors.New("point coordinates must be finite")
)

// ControlPoint is one user-placed anchor of the gradient.
type ControlPoint struct {
	ID        string  `json:"id,omitempty"`
	Position  float64 `json:"x"`
	Intensity float64 `json:"gray"`
}

// PointSet is a fixed-capacity collection of control points kept sorted
// ascending by position. It is not safe for concurrent use.
type PointSet struct {
	points [MaxPoints]ControlPoint
	n      int
}

// NewPointSet creates a point set holding the given seed points.
// Seed points beyond MaxPoints are rejected with ErrCapacityExceeded.
func NewPointSet(seed ...ControlPoint) (*PointSet, error) {
	s := &PointSet{}
	for _, p := range seed {
		if _, err := s.Insert(p.Position, p.Intensity); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Insert adds a point and restores the sort order. Coordinates are clamped to
// [0,1]. A point sharing its position with existing points is placed after
// them, so ties keep insertion order.
func (s *PointSet) Insert(position, intensity float64) (ControlPoint, error) {
	if !finite(position) || !finite(intensity) {
		return ControlPoint{}, ErrInvalidPoint
	}
	if s.n == MaxPoints {
		return ControlPoint{}, ErrCapacityExceeded
	}

	p := ControlPoint{
		ID:        typeid.NewPointID(),
		Position:  clamp01(position),
		Intensity: clamp01(intensity),
	}

	i := sort.Search(s.n, func(i int) bool {
		return s.points[i].Position > p.Position
	})
	copy(s.points[i+1:s.n+1], s.points[i:s.n])
	s.points[i] = p
	s.n++
	return p, nil
}

// Metric measures how far a stored point is from some query.
type Metric func(p ControlPoint) float64

// RemoveNear removes the first point whose distance is strictly below radius.
// It reports the removed point, or false when nothing was close enough.
func (s *PointSet) RemoveNear(dist Metric, radius float64) (ControlPoint, bool) {
	for i := 0; i < s.n; i++ {
		if dist(s.points[i]) < radius {
			removed := s.points[i]
			copy(s.points[i:s.n-1], s.points[i+1:s.n])
			s.n--
			s.points[s.n] = ControlPoint{}
			return removed, true
		}
	}
	return ControlPoint{}, false
}

// Clear removes every point.
func (s *PointSet) Clear() {
	s.points = [MaxPoints]ControlPoint{}
	s.n = 0
}

// Len returns the number of points.
func (s *PointSet) Len() int { return s.n }

// Full reports whether another Insert would fail with ErrCapacityExceeded.
func (s *PointSet) Full() bool { return s.n == MaxPoints }

// At returns the i-th point in position order.
func (s *PointSet) At(i int) ControlPoint { return s.points[:s.n][i] }

// Snapshot returns a copy of the points in position order.
func (s *PointSet) Snapshot() []ControlPoint {
	out := make([]ControlPoint, s.n)
	copy(out, s.points[:s.n])
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
