package srcset

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	WIDTH_UNIT   = 'w'
	DENSITY_UNIT = 'x'
	HEIGHT_UNIT  = 'h'
)

var (
	//numeric-prefix grammars of the descriptor micro-syntax. Width and height
	//prefixes are non-negative integers (no sign, no fraction, no exponent);
	//density prefixes are floating-point numbers (optional leading minus, no
	//leading plus, at least one digit after a decimal point). Digit-sequence
	//requirements rule out Infinity/NaN spellings by construction.
	NON_NEGATIVE_INT_REGEX = regexp.MustCompile(`^\d+$`)
	FLOAT_REGEX            = regexp.MustCompile(`^-?(?:\d+|\d*\.\d+)(?:[eE][+-]?\d+)?$`)
)

// Parse parses a srcset attribute value into its image candidates, in order
// of appearance. The input is assumed to be already entity-decoded; URLs are
// not resolved or validated.
//
// Parse fails with a *ParsingError of kind EmptyCandidateSet when the value
// contains no candidate at all, and of kind InvalidDescriptor when any
// descriptor of any candidate is invalid. There are no partial results: one
// invalid descriptor fails the whole attribute value.
func Parse(input string) ([]Candidate, error) {
	p := &parser{
		s:     []rune(input),
		input: input,
	}
	p.len = len32(p.s)

	return p.parseImageCandidates()
}

// A parser parses a single srcset attribute value. It cannot recover: the
// first invalid descriptor fails the whole parse.
type parser struct {
	s   []rune //attribute value
	i   int32  //rune index
	len int32

	input string //only used in error messages
}

// parseImageCandidates is the splitting loop. Each iteration skips a
// separator run, collects one URL token and resolves its descriptors before
// the next iteration begins.
func (p *parser) parseImageCandidates() ([]Candidate, error) {
	var candidates []Candidate

	for {
		p.i = eatWhitespaceAndCommas(p.s, p.i)

		if p.i >= p.len {
			if len(candidates) == 0 {
				return nil, &ParsingError{EmptyCandidateSet, SRCSET_SHOULD_CONTAIN_ONE_OR_MORE_CANDIDATES}
			}
			return candidates, nil
		}

		start := p.i
		p.i = eatNonWhitespace(p.s, p.i)

		source := Source{
			Value: string(p.s[start:p.i]),
			Span:  NodeSpan{start, p.i},
		}

		var descriptors []string

		if strings.HasSuffix(source.Value, ",") {
			//the URL run swallowed the commas separating this candidate from
			//the next one: strip them all, the candidate has no descriptors.
			source.Value = strings.TrimRight(source.Value, ",")
		} else {
			descriptors = p.tokenizeDescriptors()
		}

		candidate, parsingErr := p.makeCandidate(source, descriptors)
		if parsingErr != nil {
			return nil, parsingErr
		}

		candidates = append(candidates, candidate)
	}
}

// makeCandidate validates a candidate's descriptor list and constructs the
// candidate. Descriptors are classified by their trailing unit letter; the
// numeric prefix is checked against the grammar of that unit before being
// parsed.
func (p *parser) makeCandidate(source Source, descriptors []string) (Candidate, *ParsingError) {
	candidate := Candidate{Source: source}

	for _, descriptor := range descriptors {
		if !applyDescriptor(&candidate, descriptor) {
			return Candidate{}, &ParsingError{InvalidDescriptor, fmtInvalidDescriptorFoundIn(p.input, descriptor)}
		}
	}

	return candidate, nil
}

// applyDescriptor records one descriptor on the candidate. It reports false
// for a malformed prefix, an unrecognized or wrong-case unit letter, a
// duplicated descriptor kind, a zero width or height, a negative density, or
// a violated mutual-exclusion rule (density excludes both width and height).
func applyDescriptor(candidate *Candidate, descriptor string) bool {
	runes := []rune(descriptor)
	if len(runes) < 2 {
		return false
	}

	value := string(runes[:len(runes)-1])
	unit := runes[len(runes)-1]

	switch {
	case unit == WIDTH_UNIT && NON_NEGATIVE_INT_REGEX.MatchString(value):
		if candidate.Width != nil || candidate.Density != nil {
			return false
		}
		width, err := strconv.ParseInt(value, 10, 64)
		if err != nil || width <= 0 {
			return false
		}
		candidate.Width = &Dimension{width}

	case unit == DENSITY_UNIT && FLOAT_REGEX.MatchString(value):
		if candidate.Width != nil || candidate.Density != nil || candidate.Height != nil {
			return false
		}
		density, err := strconv.ParseFloat(value, 64)
		if err != nil || density < 0 { //-0 is not negative
			return false
		}
		candidate.Density = &Density{density}

	case unit == HEIGHT_UNIT && NON_NEGATIVE_INT_REGEX.MatchString(value):
		if candidate.Height != nil || candidate.Density != nil {
			return false
		}
		height, err := strconv.ParseInt(value, 10, 64)
		if err != nil || height <= 0 {
			return false
		}
		candidate.Height = &Dimension{height}

	default:
		return false
	}

	return true
}
