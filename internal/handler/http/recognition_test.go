package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/proodentit/tolon-attendance/internal/pkg/compreface"
	"github.com/stretchr/testify/assert"
)

func TestProxyHandler_ForwardsVendorResponse(t *testing.T) {
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/recognition/recognize", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result":[{"subjects":[{"subject":"Abdulai Mohammed","similarity":0.91}]}]}`))
	}))
	defer vendor.Close()

	h := NewRecognitionHandler(compreface.NewClient(vendor.URL, "k", 5*time.Second))

	req := httptest.NewRequest(http.MethodPost, "/api/proxy/face-recognition", strings.NewReader(`{"image":"aGVsbG8="}`))
	rec := httptest.NewRecorder()
	h.Proxy(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":[{"subjects":[{"subject":"Abdulai Mohammed","similarity":0.91}]}]}`, rec.Body.String())
}

func TestProxyHandler_ForwardsVendorErrorStatus(t *testing.T) {
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"no face found"}`))
	}))
	defer vendor.Close()

	h := NewRecognitionHandler(compreface.NewClient(vendor.URL, "k", 5*time.Second))

	req := httptest.NewRequest(http.MethodPost, "/api/proxy/face-recognition", strings.NewReader(`{"image":"aGVsbG8="}`))
	rec := httptest.NewRecorder()
	h.Proxy(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProxyHandler_MissingImage(t *testing.T) {
	h := NewRecognitionHandler(compreface.NewClient("http://compreface.invalid", "k", time.Second))

	req := httptest.NewRequest(http.MethodPost, "/api/proxy/face-recognition", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Proxy(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProxyHandler_VendorUnreachable(t *testing.T) {
	h := NewRecognitionHandler(compreface.NewClient("http://127.0.0.1:1", "k", time.Second))

	req := httptest.NewRequest(http.MethodPost, "/api/proxy/face-recognition", strings.NewReader(`{"image":"aGVsbG8="}`))
	rec := httptest.NewRecorder()
	h.Proxy(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
