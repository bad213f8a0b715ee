package controllers

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/go-chi/chi/v5"
)

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid identifier").WithDetails(map[string]any{"param": name})
	}
	return id, nil
}
