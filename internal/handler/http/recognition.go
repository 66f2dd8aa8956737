package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/proodentit/tolon-attendance/internal/handler/http/response"
	"github.com/proodentit/tolon-attendance/internal/pkg/compreface"
	"github.com/proodentit/tolon-attendance/internal/pkg/validator"
)

type RecognitionHandler interface {
	Proxy(w http.ResponseWriter, r *http.Request)
}

type recognitionHandlerImpl struct {
	client *compreface.Client
}

func NewRecognitionHandler(client *compreface.Client) RecognitionHandler {
	return &recognitionHandlerImpl{
		client: client,
	}
}

type proxyRequest struct {
	Image string `json:"image"`
}

// Proxy forwards a captured photo to CompreFace and relays the vendor
// response verbatim, status code included. The browser applies the
// similarity threshold for its preview; the attendance flow re-checks
// server-side.
func (h *recognitionHandlerImpl) Proxy(w http.ResponseWriter, r *http.Request) {
	var req proxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode proxy request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if validator.IsEmpty(req.Image) {
		response.BadRequest(w, "Field 'image' is required", nil)
		return
	}

	body, status, err := h.client.RecognizeRaw(r.Context(), req.Image)
	if err != nil {
		slog.Error("Face recognition proxy failed", "error", err)
		response.InternalServerError(w, "Face recognition service unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
