package catalog

// Powder-coat colour codes resolved to catalogue descriptions. The table is
// closed; unknown codes pass through unchanged so the property set never loses
// the original code.
var colourNames = map[string]string{
	"X15": "Graphite Ripple",
	"B51": "Bright Blue",
	"Y23": "Safety Yellow",
	"R13": "Signal Red",
	"G52": "Mist Green",
	"W04": "Pearl White",
	"S11": "Silver Grey",
	"O26": "Hi-Vis Orange",
}

func ColourName(code string) string {
	if name, ok := colourNames[code]; ok {
		return name
	}
	return code
}
