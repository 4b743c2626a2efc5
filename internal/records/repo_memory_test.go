package records

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"string-analyzer/internal/shared/errors"
)

var fixedTime = time.Date(2025, time.August, 27, 10, 0, 0, 0, time.UTC)

func TestMemoryRepoInsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	rec := New("racecar", fixedTime)

	stored, err := repo.Insert(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, rec, stored)

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestMemoryRepoInsertDuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	_, err := repo.Insert(ctx, New("hello", fixedTime))
	require.NoError(t, err)

	_, err = repo.Insert(ctx, New("hello", fixedTime.Add(time.Minute)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, errors.KindConflict, errors.KindOf(err))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryRepoGetMissing(t *testing.T) {
	_, err := NewMemoryRepo().GetByID(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
}

func TestMemoryRepoFindByText(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	_, err := repo.Insert(ctx, New("hello world", fixedTime))
	require.NoError(t, err)

	got, err := repo.FindByText(ctx, "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got.Value)

	_, err = repo.FindByText(ctx, "Hello world")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryRepoDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	rec := New("delete me", fixedTime)
	_, err := repo.Insert(ctx, rec)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err = repo.GetByID(ctx, rec.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = repo.Delete(ctx, rec.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	// the same text can be analyzed again once deleted
	_, err = repo.Insert(ctx, rec)
	assert.NoError(t, err)
}

func TestMemoryRepoListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	texts := []string{"zeta", "alpha", "mid", "beta"}
	for _, text := range texts {
		_, err := repo.Insert(ctx, New(text, fixedTime))
		require.NoError(t, err)
	}
	require.NoError(t, repo.Delete(ctx, New("mid", fixedTime).ID))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "zeta", list[0].Value)
	assert.Equal(t, "alpha", list[1].Value)
	assert.Equal(t, "beta", list[2].Value)
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	rec := New("aab", fixedTime)
	_, err := repo.Insert(ctx, rec)
	require.NoError(t, err)

	rec.Properties.CharacterFrequencyMap["a"] = 100
	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	got.Properties.CharacterFrequencyMap["b"] = 100

	again, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, again.Properties.CharacterFrequencyMap)
}

func TestMemoryRepoConcurrentInsertOfSameID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	rec := New("contended", fixedTime)

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		conflicts atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Insert(ctx, rec)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, ErrConflict):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(49), conflicts.Load())
}

func TestMemoryRepoHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryRepo().Insert(ctx, New("x", fixedTime))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryRepoReset(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	_, err := repo.Insert(ctx, New("x", fixedTime))
	require.NoError(t, err)

	repo.Reset()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
