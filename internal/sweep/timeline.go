package sweep

// DefaultStep is the sweep time increment between frames.
const DefaultStep = 3

// Frames returns the half-width of the sweep range for an image height.
func Frames(height, step int) int {
	return height * step
}

// Timeline returns the sweep times -frames, -frames+step, ..., +frames.
// A non-positive step is treated as DefaultStep.
func Timeline(height, step int) []int {
	if step <= 0 {
		step = DefaultStep
	}
	frames := Frames(height, step)
	times := make([]int, 0, 2*frames/step+1)
	for t := -frames; t <= frames; t += step {
		times = append(times, t)
	}
	return times
}
