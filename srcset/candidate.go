package srcset

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// NodeSpan is a range of rune indexes in the parsed attribute value,
// Start inclusive and End exclusive.
type NodeSpan struct {
	Start int32 `json:"start"`
	End   int32 `json:"end"`
}

// Source is the URL part of an image candidate. Value has any trailing commas
// already stripped; Span covers the URL token as it appeared in the input, so
// input[Span.Start:Span.End] is the unstripped token.
type Source struct {
	Value string
	Span  NodeSpan
}

func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value       string `json:"value"`
		StartOffset int32  `json:"startOffset"`
	}{s.Value, s.Span.Start})
}

// Dimension is the value of a width (w) or height (h) descriptor, always a
// positive integer.
type Dimension struct {
	Value int64 `json:"value"`
}

// Density is the value of a pixel density (x) descriptor, always >= 0.
type Density struct {
	Value float64 `json:"value"`
}

// A Candidate is a single image candidate string: a source URL plus the
// sizing descriptors attached to it. At most one of {Width, Density} and at
// most one of {Height, Density} is set; Width and Height may co-occur.
// Candidates are immutable once returned by Parse.
type Candidate struct {
	Source  Source     `json:"source"`
	Width   *Dimension `json:"width,omitempty"`
	Density *Density   `json:"density,omitempty"`
	Height  *Dimension `json:"height,omitempty"`
}

// String returns the candidate in canonical form: the URL followed by its
// descriptors, space separated.
func (c Candidate) String() string {
	var b strings.Builder
	b.WriteString(c.Source.Value)

	if c.Width != nil {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(c.Width.Value, 10))
		b.WriteByte('w')
	}
	if c.Density != nil {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(c.Density.Value, 'g', -1, 64))
		b.WriteByte('x')
	}
	if c.Height != nil {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(c.Height.Value, 10))
		b.WriteByte('h')
	}

	return b.String()
}

// Serialize returns a srcset attribute value listing the given candidates in
// canonical form. The result parses back to the same candidates, offsets
// aside.
func Serialize(candidates []Candidate) string {
	parts := make([]string, len(candidates))
	for i, candidate := range candidates {
		parts[i] = candidate.String()
	}
	return strings.Join(parts, ", ")
}
