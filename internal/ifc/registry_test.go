package ifc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIdentifiersAreContiguous(t *testing.T) {
	reg := NewRegistry()

	first := reg.Create("IFCCARTESIANPOINT", List{Real(0), Real(0), Real(0)})
	second := reg.Create("IFCDIRECTION", List{Real(0), Real(0), Real(1)})
	third := reg.Create("IFCAXIS2PLACEMENT3D", first, second, nil)

	assert.Equal(t, Ref(1), first)
	assert.Equal(t, Ref(2), second)
	assert.Equal(t, Ref(3), third)
	assert.Equal(t, 3, reg.Count())
}

func TestRegistryReferencesPointBackward(t *testing.T) {
	reg := NewRegistry()

	point := reg.Create("IFCCARTESIANPOINT", List{Real(0), Real(0), Real(0)})
	placement := reg.Create("IFCAXIS2PLACEMENT3D", point, nil, nil)

	lines := strings.Split(strings.TrimSpace(reg.Lines()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "#1=IFCCARTESIANPOINT((0.,0.,0.));", lines[0])
	assert.Equal(t, "#2=IFCAXIS2PLACEMENT3D(#1,$,$);", lines[1])
	assert.Greater(t, int(placement), int(point))
}

func TestRegistryIsolation(t *testing.T) {
	// Two registries never share identifiers or lines.
	a := NewRegistry()
	b := NewRegistry()

	refA := a.Create("IFCPERSON", nil, nil, Str("A"), nil, nil, nil, nil, nil)
	refB := b.Create("IFCPERSON", nil, nil, Str("B"), nil, nil, nil, nil, nil)

	assert.Equal(t, Ref(1), refA)
	assert.Equal(t, Ref(1), refB)
	assert.Contains(t, a.Lines(), "'A'")
	assert.NotContains(t, a.Lines(), "'B'")
}

func TestRegistryEmptyParams(t *testing.T) {
	reg := NewRegistry()
	reg.Create("IFCSTYLEDITEM")
	assert.Equal(t, "#1=IFCSTYLEDITEM();\n", reg.Lines())
}
