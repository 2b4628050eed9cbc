package fplot

import (
	"strings"
)

// Serie is the sampled form of one FunctionSpec, ready to be rendered.
type Serie struct {
	Id              string
	Index           int
	Kind            Kind
	Closed          bool
	SkipBoundsCheck bool
	Attr            map[string]string
	Segments        []Segment

	Err error
}

func makeSerie(index int, spec FunctionSpec) Serie {
	return Serie{
		Id:              serieName(index, spec),
		Index:           index,
		Kind:            spec.Kind,
		Closed:          spec.Closed,
		SkipBoundsCheck: spec.SkipBoundsCheck,
		Attr:            spec.Attr,
	}
}

// Class gives the classes of the serie: the base classes followed by the one
// given in the class attribute, if any.
func (s Serie) Class(base ...string) []string {
	list := append([]string{}, base...)
	if c := strings.TrimSpace(s.Attr[AttrClass]); c != "" {
		list = append(list, strings.Fields(c)...)
	}
	return list
}

func (s Serie) Points() int {
	var n int
	for _, g := range s.Segments {
		n += g.Len()
	}
	return n
}
