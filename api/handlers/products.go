package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/shopfront/api/responses"
	"github.com/angelmondragon/shopfront/internal/catalog"
	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
	"github.com/angelmondragon/shopfront/pkg/logger"
)

// ListProducts serves the catalog as a bare JSON array, the shape the app's
// catalog client expects.
func ListProducts(source catalog.ProductSource, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := source.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products"))
			return
		}
		if records == nil {
			records = []catalog.ProductRecord{}
		}
		responses.WriteJSON(w, http.StatusOK, records)
	}
}

// GetProduct serves a single record by id.
func GetProduct(source catalog.ProductSource, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := catalog.ProductID(strings.TrimSpace(chi.URLParam(r, "productId")))
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}
		records, err := source.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products"))
			return
		}
		record, ok := catalog.FindByID(records, id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteJSON(w, http.StatusOK, record)
	}
}
