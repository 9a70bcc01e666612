package generator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/stealthrocket/generator"
)

func TestFailureSurfacesOnValue(t *testing.T) {
	defer goleak.VerifyNone(t)

	errBoom := errors.New("boom")
	g := generator.New(func(p *generator.Promise[string]) error {
		p.Yield("a")
		return errBoom
		// "b" would have been yielded here had the function continued.
	})
	defer g.Stop()

	it := g.Begin()
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	// Advancing into the failure position succeeds; the failure is not
	// raised by the advance itself.
	it.Advance()
	require.True(t, it != g.End())

	v, err = it.Value()
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, v)

	// Moving past the failure position discards the failure.
	it.Advance()
	assert.True(t, it == g.End())
	it.Advance()
	assert.True(t, it == g.End())
}

func TestAdvanceOnlyNeverObservesFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := generator.New(func(p *generator.Promise[int]) error {
		p.Yield(1)
		return errors.New("never read")
	})
	defer g.Stop()

	// A traversal that never dereferences the failure position
	// finishes cleanly.
	it := g.Begin()
	it.Advance()
	it.Advance()
	assert.True(t, it == g.End())
}

func TestPanicCaptured(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := generator.New(func(p *generator.Promise[int]) error {
		p.Yield(13)
		panic("yikes!")
	})
	defer g.Stop()

	it := g.Begin()
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 13, v)

	it.Advance()
	require.True(t, it != g.End())

	_, err = it.Value()
	var panicErr *generator.PanicError
	require.ErrorAs(t, err, &panicErr)
	assert.Equal(t, "yikes!", panicErr.Value)
	assert.NotEmpty(t, panicErr.Stack)
}

func TestRepeatableRead(t *testing.T) {
	defer goleak.VerifyNone(t)

	errBoom := errors.New("boom")
	g := generator.New(func(p *generator.Promise[int]) error {
		p.Yield(42)
		return errBoom
	})
	defer g.Stop()

	it := g.Begin()
	for i := 0; i < 3; i++ {
		v, err := it.Value()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}

	it.Advance()
	for i := 0; i < 3; i++ {
		_, err := it.Value()
		assert.ErrorIs(t, err, errBoom)
	}
}

func TestValueOnSentinelPanics(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := generator.New(func(p *generator.Promise[int]) error {
		return nil
	})
	defer g.Stop()

	assert.Panics(t, func() {
		g.End().Value()
	})
}

func TestIteratorEquality(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := count(0, 2)
	defer g.Stop()

	assert.True(t, g.End() == g.End())

	it := g.Begin()
	jt := it
	assert.True(t, it == jt, "iterators referencing the same frame compare equal")
	assert.True(t, it != g.End())

	it.Advance()
	it.Advance()
	assert.True(t, it == g.End())
	assert.True(t, it != jt, "a finished cursor no longer equals one still referencing the frame")
}
