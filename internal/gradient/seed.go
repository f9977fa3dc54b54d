package gradient

// DefaultSeed returns the alternating low/high pattern the editor starts with.
func DefaultSeed() []ControlPoint {
	return []ControlPoint{
		{Position: 0.0, Intensity: 0.2},
		{Position: 0.2, Intensity: 1.0},
		{Position: 0.4, Intensity: 0.2},
		{Position: 0.6, Intensity: 1.0},
		{Position: 0.8, Intensity: 0.2},
		{Position: 1.0, Intensity: 0.7},
	}
}
