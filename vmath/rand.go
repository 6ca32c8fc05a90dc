package vmath

// Source is the randomness contract consumed by the item factory
// Float64 returns a uniform value in [0, 1)
type Source interface {
	Float64() float64
}

// FastRand is a seedable xorshift64 generator
// Not safe for concurrent use; each game owns its own instance
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits so every result is exactly representable and < 1
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// ScriptedSource replays a fixed sequence of rolls, then repeats the last one
// Used to force spawn decisions in tests and demos
type ScriptedSource struct {
	rolls []float64
	pos   int
}

func NewScriptedSource(rolls ...float64) *ScriptedSource {
	return &ScriptedSource{rolls: rolls}
}

func (s *ScriptedSource) Float64() float64 {
	if len(s.rolls) == 0 {
		return 0
	}
	if s.pos >= len(s.rolls) {
		return s.rolls[len(s.rolls)-1]
	}
	v := s.rolls[s.pos]
	s.pos++
	return v
}

// Remaining reports how many scripted rolls have not been consumed
func (s *ScriptedSource) Remaining() int {
	return len(s.rolls) - s.pos
}
