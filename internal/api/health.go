// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"log/slog"
	"net/http"

	"github.com/taibuivan/xkcdbot/internal/platform/apperr"
	"github.com/taibuivan/xkcdbot/internal/platform/constants"
	"github.com/taibuivan/xkcdbot/internal/platform/ctxutil"
	"github.com/taibuivan/xkcdbot/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckSession reports whether the Discord gateway session is connected.
	CheckSession func() error
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	dependencies HealthDependencies
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

// readiness handles GET /ready (Readiness probe).
//
// A failing check answers 503 SERVICE_UNAVAILABLE with one detail per
// failing dependency.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 1)
	var failures []apperr.FieldError

	if handler.dependencies.CheckSession != nil {
		result := checkResult{Name: "discord", IsOK: true}
		if err := handler.dependencies.CheckSession(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			failures = append(failures, apperr.FieldError{Field: result.Name, Message: result.Error})
			ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "readiness_check_failed",
				slog.String("dependency", result.Name),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	if len(failures) > 0 {
		notReady := apperr.ServiceUnavailable("Service not ready")
		notReady.Details = failures
		respond.Error(writer, request, notReady)
		return
	}

	respond.OK(writer, map[string]any{
		constants.FieldStatus: "ready",
		constants.FieldChecks: results,
	})
}
