package srcset

import "fmt"

const (
	SRCSET_SHOULD_CONTAIN_ONE_OR_MORE_CANDIDATES = "must contain one or more image candidate strings"
)

type ParsingErrorKind int

const (
	UnspecifiedParsingError ParsingErrorKind = iota

	//EmptyCandidateSet means the attribute value contained no image candidate
	//strings, only whitespace and commas (or nothing at all).
	EmptyCandidateSet

	//InvalidDescriptor means a descriptor failed classification or violated a
	//mutual-exclusion rule. One invalid descriptor fails the whole parse.
	InvalidDescriptor
)

type ParsingError struct {
	Kind    ParsingErrorKind `json:"kind"`
	Message string           `json:"message"`
}

func (err *ParsingError) Error() string {
	return err.Message
}

func fmtInvalidDescriptorFoundIn(input, descriptor string) string {
	return fmt.Sprintf("invalid descriptor found in '%s' at '%s'", input, descriptor)
}
