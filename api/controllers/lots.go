package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/RostislavK636/B2B-marketplace/api/responses"
	"github.com/RostislavK636/B2B-marketplace/internal/lots"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/RostislavK636/B2B-marketplace/pkg/logger"
)

// LotsList returns every lot still accepting shares.
func LotsList(svc lots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "lots service unavailable"))
			return
		}

		open, err := svc.ListOpenLots(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, open)
	}
}

// LotDetail returns one lot with its computed progress fields.
func LotDetail(svc lots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "lots service unavailable"))
			return
		}

		lotID, err := parseIDParam(r, "lotId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lot, err := svc.GetLot(r.Context(), lotID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, lot)
	}
}

// LotQuote prices a hypothetical share of the lot. Share bounds beyond the
// numeric parse are enforced by the service against the lot's own minimum.
func LotQuote(svc lots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "lots service unavailable"))
			return
		}

		lotID, err := parseIDParam(r, "lotId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		raw := strings.TrimSpace(r.URL.Query().Get("share"))
		if raw == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "share is required"))
			return
		}
		share, err := strconv.Atoi(raw)
		if err != nil || share <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "share must be a positive integer"))
			return
		}

		quote, err := svc.QuoteShare(r.Context(), lotID, share)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}
