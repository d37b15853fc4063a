package deepl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/translate", r.URL.Path)
		assert.Equal(t, "DeepL-Auth-Key test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "cat", r.PostForm.Get("text"))
		assert.Equal(t, "EN", r.PostForm.Get("source_lang"))
		assert.Equal(t, "ES", r.PostForm.Get("target_lang"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"translations":[{"detected_source_language":"EN","text":"gato"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "test-key")

	translation, err := client.Translate(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, "cat", translation.Original)
	assert.Equal(t, "gato", translation.Translation)
}

func TestClient_Translate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "bad-key")

	_, err := client.Translate(context.Background(), "cat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deepl api error: 403")
}

func TestClient_Translate_EmptyTranslations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"translations":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "test-key")

	_, err := client.Translate(context.Background(), "cat")
	assert.Error(t, err)
}

func TestClient_Translate_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "test-key")

	_, err := client.Translate(context.Background(), "cat")
	assert.Error(t, err)
}
