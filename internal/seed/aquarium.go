package seed

// Aquarium returns the builtin three-channel creature, an 18x24 patch that
// stays alive and swims under the default kernel table. Callers get their
// own copy.
func Aquarium() Pattern {
	out := make(Pattern, len(aquariumPattern))
	for c, ch := range aquariumPattern {
		out[c] = make([][]float64, len(ch))
		for r, row := range ch {
			out[c][r] = append([]float64(nil), row...)
		}
	}
	return out
}

var aquariumPattern = Pattern{
	{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.04, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0.49, 1, 0, 0.03, 0.49, 0.49, 0.28, 0.16, 0.03, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.6, 0.47, 0.31, 0.58, 0.51, 0.35, 0.28, 0.22, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0.15, 0.32, 0.17, 0.61, 0.97, 0.29, 0.67, 0.59, 0.88, 1, 0.92, 0.8, 0.61, 0.42, 0.19, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0.25, 0.64, 0.26, 0.92, 0.04, 0.24, 0.97, 1, 1, 1, 1, 0.97, 0.71, 0.33, 0.12, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0.38, 0.84, 0.99, 0.78, 0.67, 1, 1, 1, 1, 1, 1, 1, 0.95, 0.62, 0.37, 0, 0},
		{0, 0, 0, 0, 0.04, 0.11, 0, 0.69, 0.75, 0.75, 0.91, 1, 1, 0.89, 1, 1, 1, 1, 1, 1, 0.81, 0.42, 0.07, 0},
		{0, 0, 0, 0, 0.44, 0.63, 0.04, 0, 0, 0, 0.11, 0.14, 0, 0.05, 0.64, 1, 1, 1, 1, 1, 0.92, 0.56, 0.23, 0},
		{0, 0, 0, 0, 0.11, 0.36, 0.35, 0.2, 0, 0, 0, 0, 0, 0, 0.63, 1, 1, 1, 1, 1, 0.96, 0.49, 0.26, 0},
		{0, 0, 0, 0, 0, 0.4, 0.37, 0.18, 0, 0, 0, 0, 0, 0.04, 0.41, 0.52, 0.67, 0.82, 1, 1, 0.91, 0.4, 0.23, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.04, 0, 0.05, 0.45, 0.89, 1, 0.66, 0.35, 0.09, 0},
		{0, 0, 0.22, 0, 0, 0, 0.05, 0.36, 0.6, 0.13, 0.02, 0.04, 0.24, 0.34, 0.1, 0, 0.04, 0.62, 1, 1, 0.44, 0.25, 0, 0},
		{0, 0, 0, 0.43, 0.53, 0.58, 0.78, 0.9, 0.96, 1, 1, 1, 1, 0.71, 0.46, 0.51, 0.81, 1, 1, 0.93, 0.19, 0.06, 0, 0},
		{0, 0, 0, 0, 0.23, 0.26, 0.37, 0.51, 0.71, 0.89, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0.42, 0.06, 0, 0, 0},
		{0, 0, 0, 0, 0.03, 0, 0, 0.11, 0.35, 0.62, 0.81, 0.93, 1, 1, 1, 1, 1, 0.64, 0.15, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0.06, 0.1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0.05, 0.09, 0.05, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.02, 0.28, 0.42, 0.44, 0.34, 0.18, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.34, 1, 1, 1, 1, 1, 0.91, 0.52, 0.14, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.01, 0.17, 0.75, 1, 1, 1, 1, 1, 1, 0.93, 0.35, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.22, 0.92, 1, 1, 1, 1, 1, 1, 0.59, 0.09},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.75, 1, 1, 1, 1, 1, 1, 1, 0.71, 0.16},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.01, 0.67, 0.83, 0.85, 1, 1, 1, 1, 1, 1, 0.68, 0.17},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.21, 0.04, 0.12, 0.58, 0.95, 1, 1, 1, 1, 1, 0.57, 0.13},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.07, 0, 0, 0, 0.2, 0.64, 0.96, 1, 1, 1, 0.9, 0.24, 0.01},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.13, 0.29, 0, 0, 0, 0.25, 0.9, 1, 1, 1, 1, 0.45, 0.05, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.13, 0.31, 0.07, 0, 0.46, 0.96, 1, 1, 1, 1, 0.51, 0.12, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0.26, 0.82, 1, 0.95, 1, 1, 1, 1, 1, 1, 1, 0.3, 0.05, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0.28, 0.74, 1, 0.95, 0.87, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0.07, 0.69, 1, 1, 1, 1, 1, 0.96, 0.25, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.4, 0.72, 0.9, 0.83, 0.7, 0.56, 0.43, 0.14, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.04, 0.25, 0.37, 0.44, 0.37, 0.24, 0.11, 0.04, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0.19, 1, 1, 1, 1, 1, 1, 1, 0.75, 0.4, 0.15, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0.14, 0.48, 0.83, 1, 1, 1, 1, 1, 1, 1, 1, 0.4, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0.62, 0.78, 0.94, 1, 1, 1, 1, 1, 1, 1, 1, 0.64, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0.02, 0.65, 0.98, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0.78, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0.15, 0.48, 0.93, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0.79, 0.05, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0.33, 0.56, 0.8, 1, 1, 1, 0.37, 0.6, 0.94, 1, 1, 1, 1, 0.68, 0.05, 0, 0, 0},
		{0, 0, 0, 0, 0.35, 0.51, 0.76, 0.89, 1, 1, 0.72, 0.15, 0, 0.29, 0.57, 0.69, 0.86, 1, 0.92, 0.49, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0.38, 0.86, 1, 1, 0.96, 0.31, 0, 0, 0, 0, 0.02, 0.2, 0.52, 0.37, 0.11, 0, 0, 0, 0},
		{0, 0, 0.01, 0, 0, 0.07, 0.75, 1, 1, 1, 0.48, 0.03, 0, 0, 0, 0, 0, 0.18, 0.07, 0, 0, 0, 0, 0},
		{0, 0.11, 0.09, 0.22, 0.15, 0.32, 0.71, 0.94, 1, 1, 0.97, 0.54, 0.12, 0.02, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0.06, 0.33, 0.47, 0.51, 0.58, 0.77, 0.95, 1, 1, 1, 1, 0.62, 0.12, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0.04, 0.4, 0.69, 0.88, 0.95, 1, 1, 1, 1, 1, 0.93, 0.68, 0.22, 0.02, 0, 0, 0.01, 0, 0, 0, 0, 0, 0, 0},
		{0, 0.39, 0.69, 0.91, 1, 1, 1, 1, 1, 0.85, 0.52, 0.35, 0.24, 0.17, 0.07, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0.29, 0.82, 1, 1, 1, 1, 1, 1, 0.67, 0.29, 0.02, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0.2, 0.51, 0.77, 0.96, 0.93, 0.71, 0.4, 0.16, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0.08, 0.07, 0.03, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
}
