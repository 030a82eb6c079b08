package models

// Option is one selectable value inside an option group. Value carries a raw
// numeric magnitude in millimetres where the option is dimensional; Meta holds
// catalogue metadata such as "dimension_mm" or "drawer_heights".
type Option struct {
	ID    string                 `json:"id" validate:"required"`
	Code  string                 `json:"code"`
	Label string                 `json:"label"`
	Value *float64               `json:"value,omitempty"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

type OptionGroup struct {
	ID      string   `json:"id" validate:"required"`
	Options []Option `json:"options"`
}

type Product struct {
	ID          string        `json:"id" validate:"required"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Groups      []OptionGroup `json:"groups"`
}

// FindOption resolves a group/option pair against the catalogue. A missing
// group or option is a configuration defect, not a failure: callers fall back
// to family defaults.
func (p *Product) FindOption(groupID, optionID string) (*Option, bool) {
	for i := range p.Groups {
		if p.Groups[i].ID != groupID {
			continue
		}
		for j := range p.Groups[i].Options {
			if p.Groups[i].Options[j].ID == optionID {
				return &p.Groups[i].Options[j], true
			}
		}
	}
	return nil, false
}

// Pricing is computed upstream and passed through to the property set.
type Pricing struct {
	BasePrice  float64 `json:"base_price" validate:"gte=0"`
	TotalPrice float64 `json:"total_price" validate:"gte=0"`
	Currency   string  `json:"currency" validate:"required,len=3"`
}
