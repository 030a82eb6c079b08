package export

import (
	"encoding/json"
	"time"

	"github.com/opiegroup/boscotek2026-sub003/internal/catalog"
	"github.com/opiegroup/boscotek2026-sub003/internal/ifc"
	"github.com/opiegroup/boscotek2026-sub003/internal/models"
)

// Datasheet is the companion JSON document uploaded next to each IFC file.
// It repeats the resolved figures the geometry was built from so downstream
// tooling never has to parse STEP to answer "how wide is this unit".
type Datasheet struct {
	ReferenceCode string             `json:"reference_code"`
	ProductFamily string             `json:"product_family"`
	ProductName   string             `json:"product_name,omitempty"`
	Manufacturer  string             `json:"manufacturer"`
	GeneratedAt   time.Time          `json:"generated_at"`
	Dimensions    DatasheetDims      `json:"dimensions_mm"`
	Selections    []DatasheetOption  `json:"selections,omitempty"`
	DrawerHeights []float64          `json:"drawer_heights_mm,omitempty"`
	DrawerCode    string             `json:"drawer_configuration,omitempty"`
	LiftModel     string             `json:"lift_model,omitempty"`
	Pricing       *DatasheetPricing  `json:"pricing,omitempty"`
}

type DatasheetDims struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

type DatasheetOption struct {
	Group string `json:"group"`
	Code  string `json:"code,omitempty"`
	Label string `json:"label"`
}

type DatasheetPricing struct {
	BasePrice  float64 `json:"base_price"`
	TotalPrice float64 `json:"total_price"`
	Currency   string  `json:"currency"`
}

func buildDatasheet(cfg *models.Configuration, product *models.Product, pricing models.Pricing, referenceCode string, now time.Time) ([]byte, error) {
	summary, err := ifc.Summarize(cfg, product)
	if err != nil {
		return nil, err
	}

	ds := Datasheet{
		ReferenceCode: referenceCode,
		ProductFamily: string(summary.Family),
		Manufacturer:  "Boscotek",
		GeneratedAt:   now.UTC(),
		Dimensions: DatasheetDims{
			Width:  summary.Width,
			Height: summary.Height,
			Depth:  summary.Depth,
		},
		DrawerHeights: summary.DrawerHeights,
		DrawerCode:    summary.DrawerCode,
		LiftModel:     summary.LiftModel,
	}
	if product != nil {
		ds.ProductName = product.Name
		ds.Selections = selectionRows(cfg, product)
	}
	if pricing.TotalPrice > 0 || pricing.BasePrice > 0 {
		ds.Pricing = &DatasheetPricing{
			BasePrice:  pricing.BasePrice,
			TotalPrice: pricing.TotalPrice,
			Currency:   pricing.Currency,
		}
	}

	return json.MarshalIndent(ds, "", "  ")
}

// selectionRows walks the product's group order so rows come out stable.
func selectionRows(cfg *models.Configuration, product *models.Product) []DatasheetOption {
	var rows []DatasheetOption
	for _, group := range product.Groups {
		id, ok := cfg.Selected(group.ID)
		if !ok {
			continue
		}
		opt, found := product.FindOption(group.ID, id)
		if !found {
			rows = append(rows, DatasheetOption{Group: group.ID, Label: id})
			continue
		}
		label := opt.Label
		switch group.ID {
		case catalog.GroupColourBody, catalog.GroupColourFront:
			label = catalog.ColourName(opt.Code)
		}
		if label == "" {
			label = opt.Code
		}
		rows = append(rows, DatasheetOption{Group: group.ID, Code: opt.Code, Label: label})
	}
	return rows
}
