package catalog

// SeedSequence hands out consecutive seeds to generated definitions.
type SeedSequence struct {
	next int64
}

// NewSeedSequence starts a sequence at start.
func NewSeedSequence(start int64) *SeedSequence {
	return &SeedSequence{next: start}
}

// Next returns the current seed and advances the sequence.
func (s *SeedSequence) Next() int64 {
	v := s.next
	s.next++
	return v
}
