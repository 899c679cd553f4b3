package shop

import (
	"context"

	"github.com/larekshop/storefront/pkg/logger"
)

func price(v int64) *int64 { return &v }

// defaultCatalog is the demo product set served when the database starts
// empty. One item is deliberately priceless to exercise the storefront's
// sanitization path.
var defaultCatalog = []Product{
	{ID: "854cef69-976d-4c2a-a18c-2aa45046c390", Title: "+1 hour in a day", Description: "Spend it wisely or lose it forever.", Image: "/5_Dots.svg", Category: "soft-skill", Price: price(750)},
	{ID: "c101ab44-ed99-4a54-990d-47aa2bb4e7d9", Title: "HEX backlight", Description: "Glow in the terminal dark.", Image: "/Shell.svg", Category: "other", Price: price(450)},
	{ID: "b06cde61-912f-4663-9751-09956c0eed67", Title: "Extra pair of hands", Description: "Types while you think.", Image: "/Pill.svg", Category: "additional", Price: price(1450)},
	{ID: "412bcf81-7e75-4e70-bdb9-d3c73c9803b7", Title: "Self-assembling backend", Description: "Deploys itself on a full moon.", Image: "/Polygon.svg", Category: "button", Price: price(2500)},
	{ID: "1c521d84-c48d-48fa-8cfb-9d911fa515fd", Title: "Mage hat", Description: "Debugs by pointing.", Image: "/Mithosis.svg", Category: "other", Price: price(1000)},
	{ID: "f3867296-45c7-4603-bd34-29cea3a061d5", Title: "Focus pocus", Description: "An uninterrupted afternoon.", Image: "/Butterfly.svg", Category: "hard-skill", Price: price(1750)},
	{ID: "54df7dcb-1213-4b3c-ab61-92ed5f845535", Title: "Framework of everything", Description: "Too powerful to ship with a price tag.", Image: "/Soft_Flower.svg", Category: "other", Price: nil},
	{ID: "6a834fb8-350a-440c-ab55-d0e9b959b6e3", Title: "Rubber duck, senior grade", Description: "Asks the hard questions back.", Image: "/Leaf.svg", Category: "soft-skill", Price: price(300)},
}

// SeedIfEmpty populates the catalog with the demo product set when no
// products exist yet.
func SeedIfEmpty(ctx context.Context, repo *Repository, logg *logger.Logger) error {
	count, err := repo.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := repo.InsertProducts(ctx, defaultCatalog); err != nil {
		return err
	}
	if logg != nil {
		ctx = logg.WithField(ctx, "products", len(defaultCatalog))
		logg.Info(ctx, "seeded demo catalog")
	}
	return nil
}
