package generator

// An Iterator is a single-pass cursor over the values produced by a
// generator. It references the generator's frame without owning it; the
// zero value is the past-the-end sentinel.
//
// Iterators are comparable: two iterators are equal when they reference
// the same frame, or when both are the sentinel. The idiomatic loop is
//
//	for it := g.Begin(); it != g.End(); it.Advance() {
//		v, err := it.Value()
//		...
//	}
//
// Because advancing resumes shared frame state, iterators constructed
// from the same Generator observe the same position; they are cursors
// into one sequence, not independent traversals.
type Iterator[T any] struct {
	p *Promise[T]
}

// Advance resumes the generator until it produces its next value or
// finishes. Once the generator has finished, the iterator becomes equal
// to the sentinel and further calls are no-ops.
//
// Advancing past a position that holds a captured failure discards the
// failure: failures are observable only by reading the value at their
// position, never by advancing over it.
func (it *Iterator[T]) Advance() {
	if it.p == nil {
		return
	}
	if it.p.frame.done {
		// The cursor sits on a terminal position, which it can only
		// do when that position holds a failure. Moving on drops it.
		it.p.slot.clear()
		it.p = nil
		return
	}
	it.p.frame.resume()
	if it.p.slot.finished() {
		it.p = nil
	}
}

// Value reads the value at the current position. If the generator
// function failed at this position, the captured failure is returned
// instead. The read is repeatable: calling Value again without advancing
// returns the same outcome.
//
// Value panics when called on the past-the-end sentinel.
func (it Iterator[T]) Value() (T, error) {
	if it.p == nil {
		panic("generator: Value called on a past-the-end iterator")
	}
	if err := it.p.slot.currentError(); err != nil {
		var zero T
		return zero, err
	}
	v, ok := it.p.slot.currentValue()
	if !ok {
		panic("generator: no value at the current position")
	}
	return v, nil
}
