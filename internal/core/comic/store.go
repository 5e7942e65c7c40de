// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import "context"

// # Archive Access

// Fetcher defines the transport contract the resolver depends on.
//
// *httpclient.Client satisfies it in production; tests may pass stubs.
type Fetcher interface {

	/*
		Fetch performs a single GET against an absolute archive URL.

		Parameters:
		  - context: context.Context
		  - url: string ({base}/info.0.json or {base}/{num}/info.0.json)

		Returns:
		  - []byte: the body of a success response
		  - error: apperr TRANSPORT_FAILURE on network errors or non-2xx statuses
	*/
	Fetch(context context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a plain function to [Fetcher].
type FetcherFunc func(context context.Context, url string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(context context.Context, url string) ([]byte, error) {
	return f(context, url)
}
