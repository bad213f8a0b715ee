package controllers

import (
	"net/http"
	"strings"

	"github.com/RostislavK636/B2B-marketplace/api/responses"
	"github.com/RostislavK636/B2B-marketplace/internal/catalog"
	"github.com/RostislavK636/B2B-marketplace/pkg/enums"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/RostislavK636/B2B-marketplace/pkg/logger"
)

type browsePage struct {
	Products []catalog.DisplayProduct `json:"products"`
	Total    int                      `json:"total"`
}

// CatalogBrowse runs the normalize/filter/sort pipeline over the full
// catalog. Filter dimensions accept "all" or an empty value to opt out.
func CatalogBrowse(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		input, err := parseBrowseQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		listings, err := svc.Browse(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if listings == nil {
			listings = []catalog.DisplayProduct{}
		}

		responses.WriteSuccess(w, browsePage{Products: listings, Total: len(listings)})
	}
}

// CatalogProduct returns one normalized listing with its wholesale tiers.
func CatalogProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := parseIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.GetProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

func parseBrowseQuery(r *http.Request) (catalog.BrowseInput, error) {
	query := r.URL.Query()

	category := strings.TrimSpace(query.Get("category"))
	if !criteriaSkipsDimension(category) {
		if _, err := enums.ParseCategory(category); err != nil {
			return catalog.BrowseInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
	}

	price := strings.TrimSpace(query.Get("price"))
	if !criteriaSkipsDimension(price) {
		if _, err := enums.ParsePriceBucket(price); err != nil {
			return catalog.BrowseInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price bucket")
		}
	}

	sortKey := enums.SortKeyPopular
	if raw := strings.TrimSpace(query.Get("sort")); raw != "" {
		parsed, err := enums.ParseSortKey(raw)
		if err != nil {
			return catalog.BrowseInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key")
		}
		sortKey = parsed
	}

	return catalog.BrowseInput{
		Criteria: catalog.FilterCriteria{
			Search:      strings.TrimSpace(query.Get("search")),
			Category:    category,
			Material:    strings.TrimSpace(query.Get("material")),
			PriceBucket: price,
		},
		SortKey: sortKey,
	}, nil
}

func criteriaSkipsDimension(value string) bool {
	return value == "" || strings.EqualFold(value, catalog.CriteriaAll)
}
