package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hydrolog/hydration-tracker/internal/domain"
)

func TestCatalogHandler_List(t *testing.T) {
	handler := NewCatalogHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/drinks", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("List() status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp domain.CatalogResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(resp.Drinks) != len(domain.AllVariants()) {
		t.Errorf("got %d catalog entries, want %d", len(resp.Drinks), len(domain.AllVariants()))
	}

	first := resp.Drinks[0]
	if first.Variant != domain.DrinkWater || first.HydrationFactor != 1.0 {
		t.Errorf("first entry = %+v, want WATER with factor 1.0", first)
	}

	for _, entry := range resp.Drinks {
		if !entry.Variant.Valid() {
			t.Errorf("catalog listed unknown variant %q", entry.Variant)
		}
		if entry.ContainsAlcohol && entry.HydrationFactor >= 0 {
			t.Errorf("%s contains alcohol but has factor %v", entry.Variant, entry.HydrationFactor)
		}
	}
}
