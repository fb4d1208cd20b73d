package cancellation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-eventkit/internal/core/disposable"
	"github.com/dep2p/go-eventkit/tests/mocks"
	"github.com/dep2p/go-eventkit/tests/testutil"
)

func TestWithToken_Cancel(t *testing.T) {
	src := NewSource()
	ctx, stop := WithToken(context.Background(), src.Token())
	defer stop()

	assert.NoError(t, ctx.Err())
	src.Cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context 未取消")
	}
	assert.ErrorIs(t, context.Cause(ctx), ErrCancellationRequested)
}

func TestWithToken_AlreadyCancelled(t *testing.T) {
	ctx, stop := WithToken(context.Background(), Cancelled)
	defer stop()

	require.Error(t, ctx.Err())
	assert.ErrorIs(t, context.Cause(ctx), ErrCancellationRequested)
}

func TestWithToken_Empty(t *testing.T) {
	ctx, stop := WithToken(context.Background(), Empty)
	assert.NoError(t, ctx.Err())

	stop()
	assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
}

func TestWithToken_StopRemovesSubscription(t *testing.T) {
	tok := mocks.NewMockToken()
	ctx, stop := WithToken(context.Background(), tok)
	require.Equal(t, 1, tok.ListenerCount())

	stop()
	assert.Equal(t, 0, tok.ListenerCount())
	assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
}

func TestWithToken_External(t *testing.T) {
	tok := mocks.NewMockToken()
	ctx, stop := WithToken(context.Background(), tok)
	defer stop()

	tok.SetCancelled()
	assert.ErrorIs(t, context.Cause(ctx), ErrCancellationRequested)
}

func TestFromContext_Background(t *testing.T) {
	tok, d := FromContext(context.Background())
	assert.Equal(t, Empty, tok)
	assert.Equal(t, disposable.Empty, d)
}

func TestFromContext_AlreadyDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tok, _ := FromContext(ctx)
	assert.Equal(t, Cancelled, tok)
}

func TestFromContext_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tok, d := FromContext(ctx)
	defer d.Dispose()
	require.Equal(t, KindMutable, KindOf(tok))

	fired := make(chan struct{})
	tok.OnCancellationRequested().Subscribe(func(struct{}) { close(fired) })

	cancel()
	testutil.WaitForSignal(t, fired, time.Second, "ctx 结束后令牌应被取消")
	assert.True(t, tok.IsCancellationRequested())
}

func TestFromContext_DisposeDetaches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tok, d := FromContext(ctx)
	d.Dispose()
	cancel()

	testutil.Never(t, 20*time.Millisecond, tok.IsCancellationRequested, "解除桥接后不应取消")
}
