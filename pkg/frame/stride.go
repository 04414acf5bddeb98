package frame

// stride enumerates indices in [start, stop): at every step it emits run
// consecutive indices starting from the current base.
//
// stride{0, 18, 6, 2} yields 0, 1, 6, 7, 12, 13.
type stride struct {
	start, stop, step, run int
}

func (s stride) indices() []int {
	out := make([]int, 0, s.count())
	for base := s.start; base < s.stop; base += s.step {
		for i := base; i < base+s.run && i < s.stop; i++ {
			out = append(out, i)
		}
	}
	return out
}

func (s stride) count() int {
	if s.stop <= s.start {
		return 0
	}
	n := s.stop - s.start
	full := n / s.step
	rest := n % s.step
	if rest > s.run {
		rest = s.run
	}
	return full*s.run + rest
}
