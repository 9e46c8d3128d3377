package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hydrolog/hydration-tracker/internal/domain"
)

// CatalogHandler serves the static drink catalog. The catalog is fixed at
// compile time, so no service layer sits behind it.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// List handles GET /v1/catalog/drinks
// @Summary List the drink catalog
// @Description Returns every known beverage type with its hydration factor, flags and nutrition
// @Tags catalog
// @Produce json
// @Success 200 {object} domain.CatalogResponse
// @Router /catalog/drinks [get]
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	variants := domain.AllVariants()
	response := domain.CatalogResponse{
		Drinks: make([]domain.CatalogEntryResponse, 0, len(variants)),
	}
	for _, v := range variants {
		info, ok := domain.CatalogEntry(v)
		if !ok {
			continue
		}
		response.Drinks = append(response.Drinks, domain.CatalogEntryResponse{
			Variant:   v,
			DrinkInfo: info,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
