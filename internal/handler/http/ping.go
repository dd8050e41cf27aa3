package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-dashboard/internal/app"
)

func (h *Handler) ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(app.MsgPong))
}
