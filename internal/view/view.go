// Package view implements the storefront render contract: every surface
// exposes one typed partial-update operation that assigns exactly the fields
// present in the patch and returns the surface's root node for composition.
// Applying an empty patch changes nothing; fields absent from a patch keep
// their previous value.
package view

import (
	"fmt"
	"strings"

	"github.com/larekshop/storefront/internal/catalog"
)

// Surface is the minimal seam every display object satisfies.
type Surface interface {
	Root() *Node
}

// Config carries the display-only knobs shared by all surfaces.
type Config struct {
	CDNBaseURL    string
	CurrencyLabel string
}

// Price is a displayable price; Priceless marks the null sentinel.
type Price struct {
	Amount    int64
	Priceless bool
}

// PriceOf converts the catalog's nullable price into a displayable one.
func PriceOf(value *int64) Price {
	if value == nil {
		return Price{Priceless: true}
	}
	return Price{Amount: *value}
}

// FormatPrice renders a price with the configured unit label.
func (c Config) FormatPrice(p Price) string {
	if p.Priceless {
		return "priceless"
	}
	return fmt.Sprintf("%d %s", p.Amount, c.CurrencyLabel)
}

// ImageURL prefixes a catalog image path with the CDN base.
func (c Config) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimRight(c.CDNBaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// CardPatchFor derives the card attributes for a catalog product.
func CardPatchFor(p catalog.Product) CardPatch {
	price := PriceOf(p.Price)
	return CardPatch{
		ID:       &p.ID,
		Category: &p.Category,
		Title:    &p.Title,
		Image:    &p.Image,
		Price:    &price,
	}
}

// PreviewPatchFor derives the detail attributes for a catalog product.
func PreviewPatchFor(p catalog.Product) PreviewPatch {
	price := PriceOf(p.Price)
	return PreviewPatch{
		ID:          &p.ID,
		Category:    &p.Category,
		Title:       &p.Title,
		Image:       &p.Image,
		Description: &p.Description,
		Price:       &price,
	}
}
