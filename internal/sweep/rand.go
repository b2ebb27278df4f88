package sweep

import "math/rand/v2"

// Source draws integers for jitter and rotation.
type Source interface {
	// Intn returns an integer in the inclusive range [lo, hi].
	Intn(lo, hi int) int
}

type mathSource struct {
	r *rand.Rand
}

// NewSource returns a Source backed by math/rand/v2. A zero seed uses the
// runtime's random state.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return mathSource{}
	}
	return mathSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s mathSource) Intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	if s.r == nil {
		return lo + rand.IntN(hi-lo+1)
	}
	return lo + s.r.IntN(hi-lo+1)
}
