package gradient

// Smoothstep is the cubic Hermite ease 3t²-2t³ with t clamped to [0,1].
func Smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// Evaluate returns the gray level of the gradient at x for points sorted by
// position. Outside the first and last points the gradient is flat.
//
// Pairs of points sharing a position are skipped, which makes the gradient a
// step at that position instead of dividing by zero. An empty slice yields 0;
// renderers fill black for an empty set rather than calling Evaluate.
func Evaluate(points []ControlPoint, x float64) float64 {
	n := len(points)
	switch {
	case n == 0:
		return 0
	case n == 1:
		return points[0].Intensity
	}

	first, last := points[0], points[n-1]
	if x <= first.Position {
		return first.Intensity
	}
	if x >= last.Position {
		return last.Intensity
	}

	for i := 0; i < n-1; i++ {
		a, b := points[i], points[i+1]
		if b.Position <= a.Position {
			continue
		}
		if x >= a.Position && x <= b.Position {
			t := (x - a.Position) / (b.Position - a.Position)
			return lerp(a.Intensity, b.Intensity, Smoothstep(t))
		}
	}

	return last.Intensity
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
