// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/xkcdbot/internal/platform/apperr"
	"github.com/taibuivan/xkcdbot/internal/platform/constants"
	"github.com/taibuivan/xkcdbot/internal/platform/ctxutil"
	"github.com/taibuivan/xkcdbot/internal/platform/httpclient"
)

// # Service Layer

// Service resolves [Reference] values into [Comic] entities.
//
// It holds no mutable state and is safe for concurrent use by any number of
// chat events and HTTP requests.
type Service struct {
	fetcher Fetcher
	baseURL string
}

// NewService constructs a [Service] over the given transport and archive base
// URL. An empty baseURL selects the public archive.
func NewService(fetcher Fetcher, baseURL string) *Service {
	if baseURL == "" {
		baseURL = constants.DefaultArchiveBaseURL
	}
	return &Service{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// # URL Construction

// URLFor returns the metadata document URL for ref.
func (service *Service) URLFor(ref Reference) string {
	if ref.IsLatest() {
		return service.baseURL + "/" + constants.ArchiveInfoFile
	}
	return fmt.Sprintf("%s/%d/%s", service.baseURL, ref.Ordinal(), constants.ArchiveInfoFile)
}

// Permalink returns the archive page of comic num, used when a record has no link.
func (service *Service) Permalink(num uint32) string {
	return fmt.Sprintf("%s/%d/", service.baseURL, num)
}

// # Resolution

/*
Resolve fetches, validates and assembles the comic selected by ref.

Description: Any stage failure aborts the whole resolution; there are no
retries and no partial results. When a specific ordinal is requested the
archive must answer with that same ordinal.

Parameters:
  - context: context.Context
  - ref: Reference (Latest or Number(n))

Returns:
  - *Comic: the assembled entity
  - error: apperr TRANSPORT_FAILURE or DECODE_FAILURE
*/
func (service *Service) Resolve(context context.Context, ref Reference) (*Comic, error) {
	logger := ctxutil.GetLogger(context).With(slog.String("comic_ref", ref.String()))

	comic, err := service.resolve(context, ref)
	if err != nil {
		logger.WarnContext(context, "comic_resolution_failed",
			slog.String("code", apperr.CodeOf(err)),
			slog.Bool("archive_not_found", archiveNotFound(err)),
			slog.Any("error", err),
		)
		return nil, err
	}

	logger.DebugContext(context, "comic_resolved", slog.Uint64("num", uint64(comic.Num)))
	return comic, nil
}

func (service *Service) resolve(context context.Context, ref Reference) (*Comic, error) {

	// 1. Fetch the metadata document
	body, err := service.fetcher.Fetch(context, service.URLFor(ref))
	if err != nil {
		if !apperr.IsAppError(err) {
			err = apperr.TransportFailure(err)
		}
		return nil, err
	}

	// 2. Decode and validate the record
	record, err := DecodeRecord(body)
	if err != nil {
		return nil, err
	}

	// 3. The archive must not substitute a different comic
	if !ref.IsLatest() && record.Num != ref.Ordinal() {
		return nil, apperr.DecodeFailure(
			fmt.Errorf("comic: requested %d, archive returned %d", ref.Ordinal(), record.Num),
			apperr.FieldError{Field: "num", Message: "Does not match the requested ordinal"},
		)
	}

	// 4. Normalize the publication date
	date, err := NormalizeDate(record.Day, record.Month, record.Year)
	if err != nil {
		return nil, err
	}

	// 5. Assemble with the permalink fallback
	link := record.Link
	if link == "" {
		link = service.Permalink(record.Num)
	}

	return &Comic{
		Title:      record.Title,
		SafeTitle:  record.SafeTitle,
		Num:        record.Num,
		Date:       date,
		ImageURL:   record.Img,
		Alt:        record.Alt,
		Transcript: record.Transcript,
		News:       record.News,
		Link:       link,
	}, nil
}

// archiveNotFound reports whether err came from an archive 404.
func archiveNotFound(err error) bool {
	var statusErr *httpclient.StatusError
	return errors.As(err, &statusErr) && statusErr.NotFound()
}
