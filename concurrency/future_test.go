package concurrency_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/authcorp/optics/concurrency"
	"github.com/authcorp/optics/concurrency/errgroup"
)

// Property 1: Join keeps input order regardless of completion order.
func TestProperty_JoinPreservesOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		delays := rapid.SliceOfN(rapid.IntRange(0, 3), 0, 8).Draw(t, "delays")
		futures := make([]*concurrency.Future[int], len(delays))
		for i, d := range delays {
			futures[i] = concurrency.NewFuture(func() (int, error) {
				time.Sleep(time.Duration(d) * time.Millisecond)
				return i, nil
			})
		}

		got, err := concurrency.Join(futures...).Get()
		if err != nil {
			t.Fatalf("join failed: %v", err)
		}
		for i, v := range got {
			if v != i {
				t.Fatalf("result %d out of order: %v", i, got)
			}
		}
	})
}

// Property 2: FlatMap propagates failure without calling the continuation.
func TestProperty_FlatMapPropagatesError(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := rapid.StringMatching(`[a-z]{1,10}`).Draw(t, "msg")
		boom := errors.New(msg)
		called := false

		_, err := concurrency.FlatMap(concurrency.Reject[int](boom), func(int) *concurrency.Future[int] {
			called = true
			return concurrency.Resolve(0)
		}).Get()

		if !errors.Is(err, boom) || called {
			t.Fatalf("expected %v without continuation, got %v (called=%v)", boom, err, called)
		}
	})
}

func TestJoinFailsWithAnyBranch(t *testing.T) {
	boom := errors.New("boom")
	_, err := concurrency.Join(
		concurrency.Resolve(1),
		concurrency.Reject[int](boom),
		concurrency.Resolve(3),
	).Get()
	assert.ErrorIs(t, err, boom)
}

func TestJoinEmpty(t *testing.T) {
	got, err := concurrency.Join[int]().Get()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWaitContextCancelled(t *testing.T) {
	f := concurrency.NewFuture(func() (int, error) {
		time.Sleep(time.Second)
		return 1, nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := f.WaitContext(ctx)
	assert.True(t, result.IsErr())
	assert.ErrorIs(t, result.UnwrapErr(), context.Canceled)
	assert.False(t, f.IsDone())
}

func TestMap(t *testing.T) {
	got, err := concurrency.Map(concurrency.Resolve(2), func(x int) string {
		return string(rune('a' + x))
	}).Get()
	require.NoError(t, err)
	assert.Equal(t, "c", got)
}

func TestErrgroupKeepsSubmissionOrder(t *testing.T) {
	g := errgroup.New[int]()
	for i := range 5 {
		g.Go(func() (int, error) {
			time.Sleep(time.Duration(5-i) * time.Millisecond)
			return i * i, nil
		})
	}
	got, err := g.Wait()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, got)
}

func TestErrgroupFailureLetsSiblingsFinish(t *testing.T) {
	var finished atomic.Bool
	g := errgroup.New[int]()
	g.Go(func() (int, error) { return 0, errors.New("fail") })
	g.Go(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		finished.Store(true)
		return 1, nil
	})

	got, err := g.Wait()
	assert.EqualError(t, err, "fail")
	assert.Nil(t, got)
	assert.True(t, finished.Load(), "Wait returns only after every function")
}
