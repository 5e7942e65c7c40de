// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction so handlers do
not import chi directly.
*/
package requestutil

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query retrieves a query string value, or def when it is absent or empty.
*/
func Query(request *http.Request, name, def string) string {
	if value := request.URL.Query().Get(name); value != "" {
		return value
	}
	return def
}
