package ifc

import (
	"strconv"
	"strings"
)

// Parameter values are tagged at the call site so serialization never has to
// guess what a number means. Untagged numerics still exist for callers that
// feed raw values; those go through the content heuristic in classifyNumber,
// which is kept bit-for-bit compatible with the historical writer.

// Ref is a reference to a previously created entity (#id).
type Ref int

// Enum is an enumerated token, serialized in the .TOKEN. delimiter form. The
// delimiters are required for interoperability even though one known consumer
// chokes on them.
type Enum string

// Boolean tokens are fixed and pass through the enum form unchanged.
const (
	True  Enum = "T"
	False Enum = "F"
)

func Bool(v bool) Enum {
	if v {
		return True
	}
	return False
}

// Str is quoted text. Apostrophes are doubled per ISO 10303-21.
type Str string

// Real always serializes with a decimal point, even for whole numbers.
type Real float64

// Int serializes as a bare integer and is never mistaken for a reference.
type Int int64

// Measure wraps a value in a typed measure, e.g. IFCLENGTHMEASURE(700.).
// Counts and money are written through measures precisely so the bare-number
// heuristic never has to classify them.
type Measure struct {
	Kind string
	Val  interface{}
}

func LengthMeasure(v float64) Measure   { return Measure{Kind: "IFCLENGTHMEASURE", Val: Real(v)} }
func MassMeasure(v float64) Measure     { return Measure{Kind: "IFCMASSMEASURE", Val: Real(v)} }
func MonetaryMeasure(v float64) Measure { return Measure{Kind: "IFCMONETARYMEASURE", Val: Real(v)} }
func CountMeasure(v int64) Measure      { return Measure{Kind: "IFCCOUNTMEASURE", Val: Int(v)} }
func Label(v string) Measure            { return Measure{Kind: "IFCLABEL", Val: Str(v)} }
func Text(v string) Measure             { return Measure{Kind: "IFCTEXT", Val: Str(v)} }
func Identifier(v string) Measure       { return Measure{Kind: "IFCIDENTIFIER", Val: Str(v)} }
func BoolValue(v bool) Measure          { return Measure{Kind: "IFCBOOLEAN", Val: Bool(v)} }
func IntValue(v int64) Measure          { return Measure{Kind: "IFCINTEGER", Val: Int(v)} }

// List serializes as a parenthesised parameter list.
type List []interface{}

// Star is the derived-attribute placeholder (*), used by IFCSIUNIT.
type star struct{}

var Star star

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "$"
	case star:
		return "*"
	case Ref:
		return "#" + strconv.Itoa(int(val))
	case Enum:
		return "." + string(val) + "."
	case Str:
		return quote(string(val))
	case Real:
		return formatReal(float64(val))
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Measure:
		return val.Kind + "(" + formatValue(val.Val) + ")"
	case List:
		return formatList([]interface{}(val))
	case string:
		return quote(val)
	case bool:
		return formatValue(Bool(val))
	case float64:
		return classifyNumber(val)
	case float32:
		return classifyNumber(float64(val))
	case int:
		return classifyNumber(float64(val))
	case int64:
		return classifyNumber(float64(val))
	case []interface{}:
		return formatList(val)
	case []float64:
		generic := make([]interface{}, len(val))
		for i, f := range val {
			generic[i] = f
		}
		return formatList(generic)
	case []Ref:
		parts := make([]string, len(val))
		for i, r := range val {
			parts[i] = formatValue(r)
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return "$"
	}
}

// classifyNumber is the legacy content heuristic for untagged numbers: zero,
// negative, and non-integral values are coordinates; positive integers are
// entity references. A coordinate that happens to land on a small positive
// integer (exactly 1.0) therefore classifies as a reference. Callers inside
// this package always tag values; the heuristic exists for raw input only.
func classifyNumber(v float64) string {
	if v == 0 || v < 0 || v != float64(int64(v)) {
		return formatReal(v)
	}
	return "#" + strconv.FormatInt(int64(v), 10)
}

// formatList applies the heuristic list-wide: one coordinate-looking member
// makes the whole list coordinates. Non-numeric members force element-wise
// rendering with reference prefixing for the numeric members only.
func formatList(items []interface{}) string {
	numeric := make([]float64, 0, len(items))
	allNumeric := true
	for _, item := range items {
		f, ok := asNumber(item)
		if !ok {
			allNumeric = false
			break
		}
		numeric = append(numeric, f)
	}

	if allNumeric && len(items) > 0 {
		coords := false
		for _, f := range numeric {
			if f == 0 || f < 0 || f != float64(int64(f)) {
				coords = true
				break
			}
		}
		parts := make([]string, len(numeric))
		for i, f := range numeric {
			if coords {
				parts[i] = formatReal(f)
			} else {
				parts[i] = "#" + strconv.FormatInt(int64(f), 10)
			}
		}
		return "(" + strings.Join(parts, ",") + ")"
	}

	parts := make([]string, len(items))
	for i, item := range items {
		if f, ok := asNumber(item); ok {
			parts[i] = "#" + strconv.FormatInt(int64(f), 10)
			continue
		}
		parts[i] = formatValue(item)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func formatReal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
