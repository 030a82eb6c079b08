package ifc

import (
	"strconv"
	"strings"
)

// Registry allocates entity identifiers and accumulates the serialized record
// lines for one generation call. Identifiers start at 1, ascend without gaps
// and are never reused; a Ref is only meaningful within the registry that
// issued it. A Registry must not be shared across concurrent generation calls.
type Registry struct {
	next int
	buf  strings.Builder
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Create allocates the next identifier, serializes one record line and
// returns the reference. It cannot fail: parameter values are rendered by
// their tags, and untagged values fall back to the content heuristic.
func (r *Registry) Create(entityType string, params ...interface{}) Ref {
	r.next++
	r.buf.WriteByte('#')
	r.buf.WriteString(strconv.Itoa(r.next))
	r.buf.WriteByte('=')
	r.buf.WriteString(entityType)
	r.buf.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			r.buf.WriteByte(',')
		}
		r.buf.WriteString(formatValue(p))
	}
	r.buf.WriteString(");\n")
	return Ref(r.next)
}

// Count reports the number of entities created so far.
func (r *Registry) Count() int {
	return r.next
}

// Lines returns the accumulated DATA section body.
func (r *Registry) Lines() string {
	return r.buf.String()
}
