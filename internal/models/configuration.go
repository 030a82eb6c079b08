package models

// ProductFamily identifies one of the supported furniture families. The set is
// closed: geometry generation rejects anything else.
type ProductFamily string

const (
	FamilyHDCabinet       ProductFamily = "hd-cabinet"
	FamilyWorkbench       ProductFamily = "workbench"
	FamilyToolCart        ProductFamily = "tool-cart"
	FamilyServerRack      ProductFamily = "server-rack"
	FamilyStorageCupboard ProductFamily = "storage-cupboard"
	FamilyLiftBench       ProductFamily = "lift-bench"
)

func (f ProductFamily) Valid() bool {
	switch f {
	case FamilyHDCabinet, FamilyWorkbench, FamilyToolCart,
		FamilyServerRack, FamilyStorageCupboard, FamilyLiftBench:
		return true
	}
	return false
}

// Dimensions are overall external dimensions in millimetres.
type Dimensions struct {
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
	Depth  float64 `json:"depth" validate:"gt=0"`
}

// Drawer describes a single drawer by its front height in millimetres.
type Drawer struct {
	Height float64 `json:"height" validate:"gt=0"`
	Code   string  `json:"code,omitempty"`
}

// Configuration is the user's selection for one product. It is supplied once
// per export call and never mutated by the engine.
type Configuration struct {
	ProductFamily   ProductFamily     `json:"product_family" validate:"required"`
	Selections      map[string]string `json:"selections"`
	Dimensions      *Dimensions       `json:"dimensions,omitempty"`
	CustomDrawers   []Drawer          `json:"custom_drawers,omitempty"`
	SubAssemblies   []Configuration   `json:"sub_assemblies,omitempty"`
	AccessoryCounts map[string]int    `json:"accessory_counts,omitempty"`
}

// Selected returns the option id chosen for a group, if any.
func (c *Configuration) Selected(groupID string) (string, bool) {
	if c.Selections == nil {
		return "", false
	}
	id, ok := c.Selections[groupID]
	return id, ok
}
