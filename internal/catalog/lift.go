package catalog

// LiftModel describes an electric lift frame for the height-adjustable bench
// family. Exports always use MaxHeight: the file exists for clearance
// checking, never for a "current" height.
type LiftModel struct {
	Code        string
	CapacityKg  float64
	SpeedMmSec  float64
	MinHeightMm float64
	MaxHeightMm float64
}

var liftModels = map[string]LiftModel{
	"DL2": {Code: "DL2", CapacityKg: 150, SpeedMmSec: 25, MinHeightMm: 710, MaxHeightMm: 1110},
	"DL4": {Code: "DL4", CapacityKg: 300, SpeedMmSec: 30, MinHeightMm: 680, MaxHeightMm: 1180},
	"DL6": {Code: "DL6", CapacityKg: 600, SpeedMmSec: 38, MinHeightMm: 650, MaxHeightMm: 1250},
	"DL8": {Code: "DL8", CapacityKg: 900, SpeedMmSec: 32, MinHeightMm: 640, MaxHeightMm: 1290},
}

// DefaultLiftModel is used when the configuration carries no lift selection.
const DefaultLiftModel = "DL4"

func LiftModelByCode(code string) (LiftModel, bool) {
	m, ok := liftModels[code]
	return m, ok
}
