// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/xkcdbot/internal/platform/apperr"
	requestutil "github.com/taibuivan/xkcdbot/internal/platform/request"
	"github.com/taibuivan/xkcdbot/internal/platform/respond"
	"github.com/taibuivan/xkcdbot/pkg/convert"
)

// # Handler Implementation

// Handler exposes the resolve/render pipeline over HTTP for operators.
//
// It answers exactly what a chat entry point would send, plus the resolved
// entity, which makes archive problems easy to diagnose without Discord.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comic [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the preview endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/latest", handler.previewLatest)
	router.Get("/{number}", handler.previewNumber)

	return router
}

// previewResponse is the data block of a preview.
type previewResponse struct {
	Comic   *Comic  `json:"comic"`
	Payload Payload `json:"payload"`
}

// previewLatest handles GET /comics/latest.
func (handler *Handler) previewLatest(writer http.ResponseWriter, request *http.Request) {
	handler.preview(writer, request, Latest())
}

// previewNumber handles GET /comics/{number}.
func (handler *Handler) previewNumber(writer http.ResponseWriter, request *http.Request) {
	ordinal, ok := convert.ToUint32(requestutil.Param(request, "number"))
	if !ok {
		respond.Error(writer, request, apperr.ValidationError("Invalid comic number", apperr.FieldError{
			Field:   "number",
			Message: "Must be an unsigned integer",
		}))
		return
	}
	handler.preview(writer, request, Number(ordinal))
}

func (handler *Handler) preview(writer http.ResponseWriter, request *http.Request, ref Reference) {
	// Reject unknown modes before spending an archive round-trip
	mode, err := ParseMode("mode", requestutil.Query(request, "mode", string(ModeRich)))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comic, err := handler.service.Resolve(request.Context(), ref)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, previewResponse{
		Comic:   comic,
		Payload: Render(mode, comic),
	})
}
