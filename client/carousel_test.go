package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aperture/client"
)

func TestCarousel(t *testing.T) {
	t.Run("empty carousel is rejected", func(t *testing.T) {
		_, err := client.NewCarousel(0)

		assert.ErrorIs(t, err, client.ErrEmptyCarousel)
	})

	t.Run("next wraps to the first item", func(t *testing.T) {
		carousel, err := client.NewCarousel(3)
		require.NoError(t, err)

		assert.Equal(t, 1, carousel.Next())
		assert.Equal(t, 2, carousel.Next())
		assert.Equal(t, 0, carousel.Next())
	})

	t.Run("prev wraps to the last item", func(t *testing.T) {
		carousel, err := client.NewCarousel(3)
		require.NoError(t, err)

		assert.Equal(t, 2, carousel.Prev())
		assert.Equal(t, 1, carousel.Prev())
	})

	t.Run("single item is a fixed point", func(t *testing.T) {
		carousel, err := client.NewCarousel(1)
		require.NoError(t, err)

		assert.Equal(t, 0, carousel.Next())
		assert.Equal(t, 0, carousel.Prev())
		assert.Equal(t, 0, carousel.Index())
	})
}
