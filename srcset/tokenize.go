package srcset

type tokenizerState int

const (
	inDescriptor tokenizerState = iota
	inParens
	afterDescriptor
)

// tokenizeDescriptors splits the characters following a URL token into
// descriptor substrings, stopping after a top-level comma or at end of input.
// End of input is handled as a distinct symbol, not a character.
//
// Whitespace and commas lose their separator meaning inside parentheses; an
// unterminated group is tolerated and flushed when the input ends. The state
// machine is re-entered fresh for every candidate: the buffer and descriptor
// list below never outlive one call.
func (p *parser) tokenizeDescriptors() []string {
	var (
		descriptors []string
		buf         []rune
		state       = inDescriptor
	)

	pushBuf := func() {
		descriptors = append(descriptors, string(buf))
		buf = buf[:0]
	}

	for {
		eof := p.i >= p.len
		var c rune
		if !eof {
			c = p.s[p.i]
		}

		switch state {
		case inDescriptor:
			switch {
			case eof:
				if len(buf) > 0 {
					pushBuf()
				}
				return descriptors
			case isASCIIWhitespace(c):
				if len(buf) > 0 {
					pushBuf()
					state = afterDescriptor
				}
			case c == ',':
				//the comma ends the whole candidate, not just one descriptor
				p.i++
				if len(buf) > 0 {
					pushBuf()
				}
				return descriptors
			case c == '(':
				buf = append(buf, c)
				state = inParens
			default:
				buf = append(buf, c)
			}

		case inParens:
			switch {
			case eof:
				pushBuf()
				return descriptors
			case c == ')':
				buf = append(buf, c)
				state = inDescriptor
			default:
				buf = append(buf, c)
			}

		case afterDescriptor:
			switch {
			case eof:
				return descriptors
			case isASCIIWhitespace(c):
				//collapse the whitespace run
			default:
				//reprocess c as the first character of the next descriptor
				state = inDescriptor
				p.i--
			}
		}

		p.i++
	}
}
