package engine

// Stream is a deterministic pseudo-random source seeded from an opaque
// identifier. The same identifier and call sequence always reproduce the
// same values, which keeps generated formulas reproducible end to end.
type Stream struct {
	state uint64
}

// NewStream seeds a stream from the identifier using an FNV-1a fold.
func NewStream(identifier string) *Stream {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	var h uint64 = offset64
	for i := 0; i < len(identifier); i++ {
		h ^= uint64(identifier[i])
		h *= prime64
	}
	if h == 0 {
		h = offset64
	}
	return &Stream{state: h}
}

// Next advances the stream and returns a value in [0, 1). The offset folds a
// call-site discriminator into the state so sibling candidates drawing from
// the same stream land on distinct values.
func (s *Stream) Next(offset int) float64 {
	s.state += 0x9E3779B97F4A7C15 + uint64(offset)*0xBF58476D1CE4E5B9
	z := s.state
	z ^= z >> 30
	z *= 0xBF58476D1CE4E5B9
	z ^= z >> 27
	z *= 0x94D049BB133111EB
	z ^= z >> 31
	return float64(z>>11) / (1 << 53)
}
