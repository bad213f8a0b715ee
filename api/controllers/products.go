package controllers

import (
	"net/http"
	"strings"

	"github.com/RostislavK636/B2B-marketplace/api/middleware"
	"github.com/RostislavK636/B2B-marketplace/api/responses"
	"github.com/RostislavK636/B2B-marketplace/api/validators"
	product "github.com/RostislavK636/B2B-marketplace/internal/products"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/RostislavK636/B2B-marketplace/pkg/logger"
	"github.com/shopspring/decimal"
)

type createProductRequest struct {
	Name                string                 `json:"name" validate:"required"`
	Availability        int                    `json:"availability" validate:"min=0"`
	Description         *string                `json:"description,omitempty"`
	DetailedDescription *string                `json:"detailedDescription,omitempty"`
	ProductDetails      *productDetailsRequest `json:"productDetails,omitempty"`
	ProductPriceRanges  []priceRangeRequest    `json:"productPriceRanges" validate:"required,min=1,dive"`
}

type productDetailsRequest struct {
	Size                   *string `json:"size,omitempty"`
	Weight                 *string `json:"weight,omitempty"`
	MinimumOrderStartsFrom *int    `json:"minimumOrderStartsFrom,omitempty" validate:"omitempty,min=0"`
	Material               *string `json:"material,omitempty"`
	Color                  *string `json:"color,omitempty"`
	LoadCapacity           *string `json:"loadCapacity,omitempty"`
}

type priceRangeRequest struct {
	InitialQuantity int             `json:"initialQuantity" validate:"min=0"`
	FinalQuantity   *int            `json:"finalQuantity,omitempty"`
	PricePerRange   decimal.Decimal `json:"pricePerRange"`
}

func (req createProductRequest) toCreateInput() product.CreateProductInput {
	input := product.CreateProductInput{
		Name:                strings.TrimSpace(req.Name),
		Availability:        req.Availability,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
	}

	if details := req.ProductDetails; details != nil {
		input.Details = &product.DetailsInput{
			Size:                   details.Size,
			Weight:                 details.Weight,
			MinimumOrderStartsFrom: details.MinimumOrderStartsFrom,
			Material:               details.Material,
			Color:                  details.Color,
			LoadCapacity:           details.LoadCapacity,
		}
	}

	for _, tier := range req.ProductPriceRanges {
		input.PriceRanges = append(input.PriceRanges, product.PriceRangeInput{
			InitialQuantity: tier.InitialQuantity,
			FinalQuantity:   tier.FinalQuantity,
			PricePerRange:   tier.PricePerRange,
		})
	}
	return input
}

// SellerCreateProduct creates a listing owned by the authenticated seller.
func SellerCreateProduct(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		sellerID := middleware.SellerIDFromContext(r.Context())
		if sellerID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "seller context missing"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateProduct(r.Context(), sellerID, payload.toCreateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// SellerListProducts returns the authenticated seller's own listings.
func SellerListProducts(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		sellerID := middleware.SellerIDFromContext(r.Context())
		if sellerID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "seller context missing"))
			return
		}

		listings, err := svc.ListProducts(r.Context(), sellerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, listings)
	}
}

// SellerClearProducts wipes the authenticated seller's whole inventory.
func SellerClearProducts(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		sellerID := middleware.SellerIDFromContext(r.Context())
		if sellerID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "seller context missing"))
			return
		}

		removed, err := svc.ClearProducts(r.Context(), sellerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]int64{"deleted": removed})
	}
}

// SellerDeleteProduct removes one of the authenticated seller's listings.
func SellerDeleteProduct(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		sellerID := middleware.SellerIDFromContext(r.Context())
		if sellerID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "seller context missing"))
			return
		}

		productID, err := parseIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteProduct(r.Context(), sellerID, productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
