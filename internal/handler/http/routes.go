package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// UsersPath is the directory listing path, matching the remote API layout.
const UsersPath = "/api/1.1/obj/user"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get(UsersPath, h.getUsers)
	router.Get("/ping", h.ping)
	router.Get("/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
