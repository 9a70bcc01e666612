package generator

// frame is the paused execution state of a single generator function
// invocation: its locals live on a goroutine stack, and the resume point
// is wherever that goroutine last blocked on the handoff channel.
//
// Control passes over the unbuffered next channel: the consumer sends to
// hand control to the producer, and the producer sends back (or closes
// the channel when it reaches its terminal state) to hand control to the
// consumer. At most one of the two sides runs at a time, which is why
// the stop and done flags need no further synchronization: stop is
// written by the consumer while the producer is parked, and done is
// written by the producer before the close that wakes the consumer.
type frame struct {
	next chan struct{}
	stop bool
	done bool
}

func newFrame() *frame {
	return &frame{next: make(chan struct{})}
}

// resume hands control to the producer until it reaches its next suspend
// point. It reports whether the producer suspended at a yield; false
// means the frame reached its terminal state. Resuming a terminal frame
// is a no-op.
func (f *frame) resume() bool {
	if f.done {
		return false
	}
	f.next <- struct{}{}
	_, ok := <-f.next
	return ok
}

// destroy tears the frame down. If the producer is still suspended it is
// resumed one last time with the stop flag set, so that it unwinds
// instead of returning from its yield point, running every deferred
// cleanup in the generator function body. destroy is idempotent: once
// the frame is terminal, further calls have no effect.
func (f *frame) destroy() {
	if f.done {
		return
	}
	f.stop = true
	f.resume()
}
