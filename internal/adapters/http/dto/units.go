package dto

import "github.com/jsamuelsen/pipe-sizing/internal/domain"

// UnitResponse describes one catalogued unit.
type UnitResponse struct {
	Symbol    string `json:"symbol"`
	System    string `json:"system"`
	Qualified string `json:"qualified"`
	Canonical bool   `json:"canonical"`
}

// CategoryResponse lists the units of one category.
type CategoryResponse struct {
	Category string         `json:"category"`
	Units    []UnitResponse `json:"units"`
}

// CatalogueResponse is the response of GET /units.
type CatalogueResponse struct {
	Systems    []string           `json:"systems"`
	Categories []CategoryResponse `json:"categories"`
}

// FromCatalogueEntry converts one category of the catalogue.
func FromCatalogueEntry(e domain.CatalogueEntry) CategoryResponse {
	units := make([]UnitResponse, len(e.Units))
	for i, u := range e.Units {
		units[i] = UnitResponse{
			Symbol:    u.Symbol,
			System:    string(u.System),
			Qualified: u.Qualified(),
			Canonical: u.Canonical(),
		}
	}

	return CategoryResponse{Category: string(e.Category), Units: units}
}

// FromCatalogue converts the whole catalogue.
func FromCatalogue(entries []domain.CatalogueEntry) CatalogueResponse {
	systems := domain.Systems()

	resp := CatalogueResponse{
		Systems:    make([]string, len(systems)),
		Categories: make([]CategoryResponse, len(entries)),
	}

	for i, s := range systems {
		resp.Systems[i] = string(s)
	}

	for i, e := range entries {
		resp.Categories[i] = FromCatalogueEntry(e)
	}

	return resp
}
