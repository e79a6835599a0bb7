package inflect

// Attestation reports whether the spelling identified by a candidate
// FormID occurs in the reference corpus. Implementations must be safe for
// concurrent use and must not block for long: the engine calls Attested
// once per candidate.
type Attestation interface {
	Attested(id FormID) bool
}

// AttestationFunc adapts a plain function to Attestation.
type AttestationFunc func(id FormID) bool

func (f AttestationFunc) Attested(id FormID) bool {
	return f(id)
}

// noAttestation is used when an engine is built without a corpus.
type noAttestation struct{}

func (noAttestation) Attested(FormID) bool { return false }

// CorpusSet is a prefetched set of attested candidate ids. Fill it before
// sharing it; Add is not safe to call concurrently with Attested.
type CorpusSet struct {
	ids map[FormID]struct{}
}

// NewCorpusSet returns a set holding ids.
func NewCorpusSet(ids ...FormID) *CorpusSet {
	s := &CorpusSet{ids: make(map[FormID]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *CorpusSet) Add(id FormID) {
	s.ids[id] = struct{}{}
}

func (s *CorpusSet) Attested(id FormID) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

func (s *CorpusSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}
