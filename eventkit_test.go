package eventkit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionInfo(t *testing.T) {
	prev := GitCommit
	defer func() { GitCommit = prev }()

	GitCommit = ""
	assert.Equal(t, "go-eventkit "+Version, VersionInfo())

	GitCommit = "0123456789abcdef"
	assert.Contains(t, VersionInfo(), "(01234567)")
}

func TestEmitter_CancelThroughSource(t *testing.T) {
	src := NewSource()
	em := NewEmitter[string](WithEmitterName("jobs"))
	store := NewStore()
	defer store.Dispose()

	var got []string
	em.Event().Subscribe(func(s string) {
		got = append(got, s)
		if s == "stop" {
			src.Cancel()
		}
	}, CollectInto(store))

	em.Fire("a")
	assert.False(t, src.Token().IsCancellationRequested())

	em.Fire("stop")
	assert.True(t, src.Token().IsCancellationRequested())
	assert.Equal(t, []string{"a", "stop"}, got)
	assert.Equal(t, KindCancelled, KindOf(src.Token()))

	store.Dispose()
	assert.False(t, em.HasListeners())
}

func TestTokens_Singletons(t *testing.T) {
	assert.Equal(t, KindEmpty, KindOf(EmptyToken))
	assert.Equal(t, KindCancelled, KindOf(CancelledToken))
	assert.Equal(t, KindEmpty, KindOf(NewSource().Token()))

	NoopDisposable.Dispose()
}

func TestWithToken_CancelCause(t *testing.T) {
	src := NewSource()
	ctx, cancel := WithToken(context.Background(), src.Token())
	defer cancel()

	src.Cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}
	assert.True(t, errors.Is(context.Cause(ctx), ErrCancellationRequested))
}

func TestPump_Sequential(t *testing.T) {
	p := NewPump(nil, WithMaxPending(8))
	defer p.Dispose()

	var mu sync.Mutex
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		require.NoError(t, p.Post(func(context.Context) error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.WaitForAllActions(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestPump_DisposedErrors(t *testing.T) {
	p := NewPump(nil)
	p.Dispose()

	assert.ErrorIs(t, p.Post(func(context.Context) error { return nil }), ErrDisposed)
	assert.ErrorIs(t, p.WaitForAllActions(context.Background()), ErrDisposed)
	assert.ErrorIs(t, p.Post(nil), ErrNilAction)
}

func TestSetFaultHandler(t *testing.T) {
	var mu sync.Mutex
	var faults []error
	restore := SetFaultHandler(func(err error) {
		mu.Lock()
		faults = append(faults, err)
		mu.Unlock()
	})
	defer restore()

	em := NewEmitter[int]()
	em.Event().Subscribe(func(int) { panic("boom") })

	var delivered bool
	em.Event().Subscribe(func(int) { delivered = true })

	em.Fire(1)
	assert.True(t, delivered)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, faults, 1)
	var pe *PanicError
	assert.ErrorAs(t, faults[0], &pe)
}
