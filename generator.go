package generator

// Func is a generator function: it produces values by calling Yield on
// the promise it receives and finishes by returning. A non-nil error is
// captured as the terminal failure of the sequence and surfaces when the
// consumer reads the value at that position.
type Func[T any] func(*Promise[T]) error

// A Generator is the consumer-side handle on one invocation of a
// generator function. It exclusively owns the underlying frame for its
// entire lifetime: iteration reaching the end never destroys the frame,
// only Stop does.
//
// Generators are created by New, never constructed directly. The handle
// must not be duplicated into a second owner; copying the pointer merely
// aliases the one owner, and Stop is idempotent so releasing through an
// alias is harmless.
type Generator[T any] struct {
	p *Promise[T]
}

// New invokes f as a generator function. f does not run yet: its frame
// is suspended before the first instruction of f executes, and produces
// nothing until the generator is driven through Begin.
//
// The caller owns the returned Generator and must eventually call Stop
// to release the frame, unless iteration is known to have driven the
// generator to completion.
func New[T any](f Func[T]) *Generator[T] {
	p := &Promise[T]{frame: newFrame()}

	go func() {
		defer func() {
			if v := recover(); v != nil {
				p.fail(newPanicError(v))
			}
			p.frame.done = true
			close(p.frame.next)
		}()

		<-p.frame.next
		if p.frame.stop {
			return
		}

		if err := f(p); err != nil {
			p.fail(err)
			return
		}
		p.finish()
	}()

	return &Generator[T]{p: p}
}

// Begin performs the first resume, running the generator function until
// it yields its first value or finishes. If no value was produced, the
// returned iterator equals End; a failure raised before the first value
// is discarded.
//
// Each call to Begin resumes the frame, so only the first call starts a
// traversal from the first value; later calls continue from wherever the
// shared frame state currently is.
func (g *Generator[T]) Begin() Iterator[T] {
	g.p.frame.resume()
	if _, ok := g.p.slot.currentValue(); !ok {
		return Iterator[T]{}
	}
	return Iterator[T]{p: g.p}
}

// End returns the past-the-end sentinel iterator. It has no side effects
// and may be called any number of times.
func (g *Generator[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// Stop destroys the frame unconditionally, whether the generator
// function never ran, is suspended mid-yield, or has already finished.
// A suspended function unwinds through its defer statements, so every
// resource held inside the body is released exactly once. Stop is
// idempotent.
//
// The Generator and any Iterator derived from it must not be used after
// Stop returns. A failure the consumer never read is discarded.
func (g *Generator[T]) Stop() {
	g.p.frame.destroy()
}

// Run drives g from Begin to End, calling f for each produced value. It
// stops early when f returns false, or when a position holds a captured
// failure, which Run returns. The generator is torn down before Run
// returns even if f panics.
func Run[T any](g *Generator[T], f func(T) bool) error {
	defer g.Stop()

	for it := g.Begin(); it != g.End(); it.Advance() {
		v, err := it.Value()
		if err != nil {
			return err
		}
		if !f(v) {
			return nil
		}
	}
	return nil
}

// Collect drives g to completion and returns the produced values in
// order. When the generator fails after producing some values, Collect
// returns those values together with the failure.
func Collect[T any](g *Generator[T]) ([]T, error) {
	var values []T
	err := Run(g, func(v T) bool {
		values = append(values, v)
		return true
	})
	return values, err
}
