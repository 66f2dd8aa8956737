package compreface

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cannedRecognition = `{"result":[{"subjects":[{"subject":"Abdulai Mohammed","similarity":0.91},{"subject":"Fuseini Issah","similarity":0.42}]}]}`

func TestClient_Recognize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/recognition/recognize", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "aGVsbG8=", payload["file"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(cannedRecognition))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)
	result, err := client.Recognize(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	require.Len(t, result.Result, 1)
	require.Len(t, result.Result[0].Subjects, 2)
	assert.Equal(t, "Abdulai Mohammed", result.Result[0].Subjects[0].Subject)
	assert.InDelta(t, 0.91, result.Result[0].Subjects[0].Similarity, 1e-9)
}

func TestClient_Recognize_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad api key"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "wrong-key", 5*time.Second)
	_, err := client.Recognize(context.Background(), "aGVsbG8=")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_RecognizeRaw_Passthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"no face found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)
	body, status, err := client.RecognizeRaw(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"no face found"}`, string(body))
}
