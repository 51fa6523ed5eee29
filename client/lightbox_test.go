package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aperture/client"
)

func newPhotoLightbox(ids ...string) *client.Lightbox[testPhoto] {
	items := make([]testPhoto, 0, len(ids))
	for _, id := range ids {
		items = append(items, testPhoto{ID: id})
	}

	return client.NewLightbox(items, func(p testPhoto) string { return p.ID })
}

func TestLightboxOpenClose(t *testing.T) {
	t.Run("starts closed", func(t *testing.T) {
		lightbox := newPhotoLightbox("a", "b")

		assert.False(t, lightbox.IsOpen())
		assert.Nil(t, lightbox.Current())
	})

	t.Run("open by id", func(t *testing.T) {
		lightbox := newPhotoLightbox("a", "b")

		lightbox.Open("b")

		require.True(t, lightbox.IsOpen())
		assert.Equal(t, "b", lightbox.Current().ID)
	})

	t.Run("open with unknown id stays closed", func(t *testing.T) {
		lightbox := newPhotoLightbox("a", "b")

		lightbox.Open("z")

		assert.False(t, lightbox.IsOpen())
	})

	t.Run("close clears current", func(t *testing.T) {
		lightbox := newPhotoLightbox("a")

		lightbox.Open("a")
		lightbox.Close()

		assert.False(t, lightbox.IsOpen())
	})
}

func TestLightboxNavigation(t *testing.T) {
	t.Run("next and prev wrap", func(t *testing.T) {
		lightbox := newPhotoLightbox("a", "b", "c")

		lightbox.Open("c")
		lightbox.Next()
		require.NotNil(t, lightbox.Current())
		assert.Equal(t, "a", lightbox.Current().ID)

		lightbox.Prev()
		assert.Equal(t, "c", lightbox.Current().ID)
	})

	t.Run("navigation is a no-op while closed", func(t *testing.T) {
		lightbox := newPhotoLightbox("a", "b")

		lightbox.Next()
		lightbox.Prev()

		assert.Nil(t, lightbox.Current())
	})

	t.Run("navigation follows a refiltered list", func(t *testing.T) {
		lightbox := newPhotoLightbox("a", "b", "c")

		lightbox.Open("b")
		lightbox.SetItems([]testPhoto{{ID: "b"}, {ID: "d"}})
		lightbox.Next()

		require.NotNil(t, lightbox.Current())
		assert.Equal(t, "d", lightbox.Current().ID)
	})
}

func TestLightboxHandleKey(t *testing.T) {
	t.Run("keys are ignored while closed", func(t *testing.T) {
		lightbox := newPhotoLightbox("a", "b")

		assert.False(t, lightbox.HandleKey(client.KeyEscape))
		assert.False(t, lightbox.HandleKey(client.KeyArrowRight))
	})

	t.Run("escape closes", func(t *testing.T) {
		lightbox := newPhotoLightbox("a", "b")

		lightbox.Open("a")

		assert.True(t, lightbox.HandleKey(client.KeyEscape))
		assert.False(t, lightbox.IsOpen())
	})

	t.Run("arrows navigate", func(t *testing.T) {
		lightbox := newPhotoLightbox("a", "b")

		lightbox.Open("a")

		assert.True(t, lightbox.HandleKey(client.KeyArrowRight))
		assert.Equal(t, "b", lightbox.Current().ID)

		assert.True(t, lightbox.HandleKey(client.KeyArrowLeft))
		assert.Equal(t, "a", lightbox.Current().ID)
	})

	t.Run("unhandled key", func(t *testing.T) {
		lightbox := newPhotoLightbox("a")

		lightbox.Open("a")

		assert.False(t, lightbox.HandleKey("Enter"))
	})
}
