package client_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aperture/client"
)

func TestStoreFetch(t *testing.T) {
	t.Run("successful fetch becomes ready", func(t *testing.T) {
		store := client.NewStore[string]()

		store.Fetch(context.Background(), "photos", func(ctx context.Context) (string, error) {
			return "loaded", nil
		})

		res, ok := store.Get("photos")
		require.True(t, ok)
		assert.Equal(t, client.StatusReady, res.Status)
		assert.Equal(t, "loaded", res.Value)
	})

	t.Run("failed fetch keeps the error", func(t *testing.T) {
		store := client.NewStore[string]()
		fetchErr := errors.New("connection refused")

		store.Fetch(context.Background(), "photos", func(ctx context.Context) (string, error) {
			return "", fetchErr
		})

		res, ok := store.Get("photos")
		require.True(t, ok)
		assert.Equal(t, client.StatusFailed, res.Status)
		assert.Equal(t, fetchErr, res.Err)
	})

	t.Run("unknown key", func(t *testing.T) {
		store := client.NewStore[string]()

		_, ok := store.Get("gallery")

		assert.False(t, ok)
	})

	t.Run("refetch cancels the previous request", func(t *testing.T) {
		store := client.NewStore[string]()

		started := make(chan struct{})
		canceled := make(chan struct{})

		go store.Fetch(context.Background(), "photos", func(ctx context.Context) (string, error) {
			close(started)
			<-ctx.Done()
			close(canceled)

			return "stale", ctx.Err()
		})

		<-started

		store.Fetch(context.Background(), "photos", func(ctx context.Context) (string, error) {
			return "fresh", nil
		})

		<-canceled

		res, ok := store.Get("photos")
		require.True(t, ok)
		assert.Equal(t, client.StatusReady, res.Status)
		assert.Equal(t, "fresh", res.Value)
	})

	t.Run("stale response is discarded", func(t *testing.T) {
		store := client.NewStore[string]()

		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})

		go func() {
			store.Fetch(context.Background(), "photos", func(ctx context.Context) (string, error) {
				close(started)
				<-release

				return "stale", nil
			})
			close(done)
		}()

		<-started

		store.Fetch(context.Background(), "photos", func(ctx context.Context) (string, error) {
			return "fresh", nil
		})

		close(release)
		<-done

		res, ok := store.Get("photos")
		require.True(t, ok)
		assert.Equal(t, "fresh", res.Value)
	})
}

func TestStoreInvalidate(t *testing.T) {
	store := client.NewStore[string]()

	store.Fetch(context.Background(), "photos", func(ctx context.Context) (string, error) {
		return "loaded", nil
	})

	store.Invalidate("photos")

	_, ok := store.Get("photos")
	assert.False(t, ok)
}
