package generator

// slotTag discriminates the three states a slot can be in.
type slotTag int8

const (
	slotEmpty slotTag = iota
	slotValue
	slotError
)

// slot is the single-value holding cell between the producer and the
// consumer: it holds exactly one of nothing, a produced value, or a
// captured failure. Empty doubles as the finished marker; the producer
// clears the slot when the generator function returns normally.
//
// The slot is written only by the producer at its suspend points and
// read only by the consumer while the producer is suspended, so the
// channel handoff in frame is the only synchronization it needs.
type slot[T any] struct {
	tag   slotTag
	value T
	err   error
}

func (s *slot[T]) setValue(v T) {
	s.tag = slotValue
	s.value = v
	s.err = nil
}

func (s *slot[T]) setError(err error) {
	var zero T
	s.tag = slotError
	s.value = zero
	s.err = err
}

func (s *slot[T]) clear() {
	var zero T
	s.tag = slotEmpty
	s.value = zero
	s.err = nil
}

// currentValue returns the stored value; ok is false when the slot does
// not hold one.
func (s *slot[T]) currentValue() (v T, ok bool) {
	if s.tag != slotValue {
		return v, false
	}
	return s.value, true
}

// currentError returns the captured failure, or nil. The read is
// non-destructive; the failure stays in the slot.
func (s *slot[T]) currentError() error {
	if s.tag != slotError {
		return nil
	}
	return s.err
}

// finished reports whether the slot is empty, which is how the producer
// marks normal completion.
func (s *slot[T]) finished() bool {
	return s.tag == slotEmpty
}
