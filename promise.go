package generator

import "runtime"

// A Promise is the producer-side state of one generator function
// invocation. It owns the slot through which values and failures travel
// to the consumer, and it is the handle on which the generator function
// yields. One Promise exists per frame; the two are created together by
// New and torn down together by the owning Generator.
//
// The Promise must only be used from inside the generator function it
// was passed to, and must not be retained after that function returns.
type Promise[T any] struct {
	slot  slot[T]
	frame *frame
}

// Yield publishes v to the consumer and suspends the generator function
// until the consumer asks for the next value.
//
// When the owning Generator is stopped while the function is suspended
// here, Yield does not return; the goroutine unwinds, calling each defer
// statement in the inverse order that it was declared.
func (p *Promise[T]) Yield(v T) {
	p.slot.setValue(v)
	p.frame.next <- struct{}{}
	<-p.frame.next
	if p.frame.stop {
		runtime.Goexit()
	}
}

// finish marks normal completion: the slot is cleared so the consumer
// observes the frame as finished rather than holding a stale value.
func (p *Promise[T]) finish() {
	p.slot.clear()
}

// fail records err as the terminal state of the sequence. The failure is
// not propagated to the resumer; it is re-raised only when the consumer
// reads the value at the failure position.
func (p *Promise[T]) fail(err error) {
	p.slot.setError(err)
}
