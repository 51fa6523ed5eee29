package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aperture/client"
)

type testPhoto struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestClientGet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/photos/abc", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"id":"abc","title":"Golden Hour Portrait"}}`))
		}))
		defer server.Close()

		c := client.New(server.URL)

		photo, err := client.Get[testPhoto](context.Background(), c, "/photos/abc")

		require.NoError(t, err)
		assert.Equal(t, "abc", photo.ID)
		assert.Equal(t, "Golden Hour Portrait", photo.Title)
	})

	t.Run("error envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"photo not found"}`))
		}))
		defer server.Close()

		c := client.New(server.URL)

		_, err := client.Get[testPhoto](context.Background(), c, "/photos/missing")

		require.Error(t, err)

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "photo not found", apiErr.Message)
	})

	t.Run("canceled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":null}`))
		}))
		defer server.Close()

		c := client.New(server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Get[testPhoto](ctx, c, "/photos")

		require.Error(t, err)
	})
}

func TestClientBearerToken(t *testing.T) {
	t.Run("token set after login is sent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"data":{"id":"new","title":"City Landscape"}}`))
		}))
		defer server.Close()

		c := client.New(server.URL)
		c.SetToken("secret-token")

		photo, err := client.Post[testPhoto](context.Background(), c, "/photos", testPhoto{Title: "City Landscape"})

		require.NoError(t, err)
		assert.Equal(t, "new", photo.ID)
	})

	t.Run("no header without token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))

			_, _ = w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		c := client.New(server.URL)

		_, err := client.Get[[]testPhoto](context.Background(), c, "/photos")

		require.NoError(t, err)
	})
}

func TestClientDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)

		_, _ = w.Write([]byte(`{"message":"photo deleted successfully"}`))
	}))
	defer server.Close()

	c := client.New(server.URL, client.WithToken("secret-token"))

	err := c.Delete(context.Background(), "/photos/abc")

	require.NoError(t, err)
}
