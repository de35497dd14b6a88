package source

import "github.com/katalvlaran/flux/seq"

// Generator is the pull-based coroutine source (SPEC_FULL.md §5.1). Go
// has no native stackful coroutine; Generator represents the suspended/
// has-value/done state machine that's the natural Go rendering for
// non-coroutine languages: a goroutine plus a request/reply channel
// handshake, the same producer-goroutine pattern used elsewhere in the
// ecosystem for Channel()/IntoChannel()-style pull adapters.
//
// A Generator owns its goroutine: abandoning one without draining it to
// IsLast or calling Close leaks a blocked goroutine (SPEC_FULL.md §9).
type Generator[T any] struct {
	resume    chan struct{}
	values    chan genMsg[T]
	done      bool
	cur       T
	closed    bool
	hasPulled bool
}

type genMsg[T any] struct {
	val   T
	ok    bool // false means the producer is finished
	panic any  // non-nil if the producer func panicked
}

// Yield is the callback handed to a Generator's producer function; it
// blocks until the consumer requests the next value.
type Yield[T any] func(T)

// Generate starts produce on its own goroutine and returns a Generator
// that pulls one value at a time from it via yield.
func Generate[T any](produce func(yield Yield[T])) *Generator[T] {
	g := &Generator[T]{
		resume: make(chan struct{}),
		values: make(chan genMsg[T]),
	}
	go g.run(produce)
	return g
}

func (g *Generator[T]) run(produce func(yield Yield[T])) {
	defer func() {
		if r := recover(); r != nil {
			g.values <- genMsg[T]{panic: r}
			return
		}
		g.values <- genMsg[T]{ok: false}
	}()

	yield := func(v T) {
		g.values <- genMsg[T]{val: v, ok: true}
		if _, open := <-g.resume; !open {
			panic(generatorClosed{})
		}
	}
	produce(yield)
}

// generatorClosed unwinds the producer goroutine when Close is called
// before the source is drained; it is recovered inside run and never
// reaches the consumer.
type generatorClosed struct{}

func (g *Generator[T]) pull() {
	if g.done {
		return
	}
	msg, open := <-g.values
	if !open {
		g.done = true
		return
	}
	if msg.panic != nil {
		g.done = true
		panic(msg.panic)
	}
	if !msg.ok {
		g.done = true
		return
	}
	g.cur = msg.val
}

// First primes the pipeline with the producer's first value on its
// first call; later calls (a single-pass source may still be asked for
// First more than once by generic algorithms) are idempotent.
func (g *Generator[T]) First() seq.Cur {
	if !g.hasPulled {
		g.hasPulled = true
		g.pull()
	}
	return 0
}

func (g *Generator[T]) IsLast(seq.Cur) bool { return g.done }

func (g *Generator[T]) ReadAt(seq.Cur) T {
	if g.done {
		seq.Fail(seq.ErrOutOfBounds)
	}
	return g.cur
}

func (g *Generator[T]) MoveAt(seq.Cur) T {
	// The generator has no independent storage to hand off beyond cur;
	// MoveAt is documented as "caller takes ownership, do not read
	// again" per SPEC_FULL.md §4, but in Go there is nothing unsafe
	// about returning the same value twice, so this simply mirrors
	// ReadAt.
	return g.ReadAt(nil)
}

func (g *Generator[T]) Inc(c *seq.Cur) {
	if g.done {
		seq.Fail(seq.ErrIncAtEnd)
	}
	g.resume <- struct{}{}
	g.pull()
}

// Close releases the producer goroutine without draining it. Safe to
// call multiple times and safe to call after the source is already
// done.
func (g *Generator[T]) Close() {
	if g.closed || g.done {
		return
	}
	g.closed = true
	close(g.resume)
	<-g.values // wait for run() to unwind and send its final message
	g.done = true
}
