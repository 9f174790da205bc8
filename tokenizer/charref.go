package tokenizer

import (
	"strconv"
	"unicode"

	"github.com/renato-zannon/html5ever/internal/constants"
	"github.com/renato-zannon/html5ever/herrors"
)

// charRefPhase names the character-reference sub-machine's own small state
// (WHATWG HTML §13.2.5.72-80): it is a distinct machine that temporarily
// takes ownership of the owning Tokenizer's input stream, rather than a
// case mixed into the main states.
type charRefPhase int

const (
	crInitial charRefPhase = iota
	crNumericStart
	crHex
	crDecimal
	crNamed
)

// charRefTokenizer is created when the main tokenizer sees '&' and is
// driven by (*Tokenizer).stepCharRef until it reports done or needsMore.
// additionalAllowed is the character that, if seen first, aborts reference
// processing without substitution — used inside quoted attribute values.
type charRefTokenizer struct {
	phase             charRefPhase
	inAttribute       bool
	additionalAllowed rune
	hasAdditional     bool

	temp      []rune // characters consumed since '&', for push-back on failure
	isHex     bool
	numText   []rune
	nameText  []rune

	done    bool
	result  []rune // chars to emit in place of '&...'; nil+done means literal '&'
}

func newCharRefTokenizer(inAttribute bool, additionalAllowed rune, hasAdditional bool) *charRefTokenizer {
	return &charRefTokenizer{inAttribute: inAttribute, additionalAllowed: additionalAllowed, hasAdditional: hasAdditional}
}

// crStepResult tells the caller whether the sub-machine made progress.
type crStepResult int

const (
	crDone crStepResult = iota
	crStuck              // needs more buffered input; caller must return and retry on next Feed/End
)

// stepCharRef advances the active character-reference sub-machine as far
// as currently-buffered input allows.
func (t *Tokenizer) stepCharRef(cr *charRefTokenizer) crStepResult {
	for {
		switch cr.phase {
		case crInitial:
			c, ok := t.buf.Peek()
			if !ok {
				if t.atEOF {
					cr.done, cr.result = true, nil
					return crDone
				}
				return crStuck
			}
			if cr.hasAdditional && c == cr.additionalAllowed {
				cr.done, cr.result = true, nil
				return crDone
			}
			switch {
			case c == '#':
				t.buf.Next()
				cr.temp = append(cr.temp, c)
				cr.phase = crNumericStart
			case constants.IsASCIIAlphaNum(c):
				cr.phase = crNamed
			default:
				cr.done, cr.result = true, nil
				return crDone
			}

		case crNumericStart:
			c, ok := t.buf.Peek()
			if !ok {
				if t.atEOF {
					return t.finishNumeric(cr)
				}
				return crStuck
			}
			if c == 'x' || c == 'X' {
				t.buf.Next()
				cr.temp = append(cr.temp, c)
				cr.isHex = true
				cr.phase = crHex
			} else {
				cr.isHex = false
				cr.phase = crDecimal
			}

		case crHex, crDecimal:
			c, ok := t.buf.Peek()
			if !ok {
				if t.atEOF {
					return t.finishNumeric(cr)
				}
				return crStuck
			}
			isDigit := constants.IsASCIIDigit(c)
			if cr.phase == crHex {
				isDigit = constants.IsASCIIHexDigit(c)
			}
			if isDigit {
				t.buf.Next()
				cr.temp = append(cr.temp, c)
				cr.numText = append(cr.numText, c)
				continue
			}
			return t.finishNumeric(cr)

		case crNamed:
			c, ok := t.buf.Peek()
			if !ok {
				if t.atEOF {
					return t.finishNamed(cr)
				}
				return crStuck
			}
			if constants.IsASCIIAlphaNum(c) {
				t.buf.Next()
				cr.temp = append(cr.temp, c)
				cr.nameText = append(cr.nameText, c)
				if !hasNamedEntityWithPrefix(string(cr.nameText)) {
					// No entity shares this prefix any further; stop growing
					// and resolve against what we have so far.
					return t.finishNamed(cr)
				}
				continue
			}
			return t.finishNamed(cr)
		}
	}
}

func hasNamedEntityWithPrefix(prefix string) bool {
	for name := range constants.NamedEntities {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func (t *Tokenizer) finishNumeric(cr *charRefTokenizer) crStepResult {
	if len(cr.numText) == 0 {
		// "absence of digits": not a reference at all; caller pushes the
		// consumed '#'/'x' back and emits a literal '&'.
		t.reportParseError(herrors.AbsenceOfDigitsInNumericCharReference)
		t.buf.PushFront(cr.temp)
		cr.done, cr.result = true, nil
		return crDone
	}

	if c, ok := t.buf.Peek(); ok && c == ';' {
		t.buf.Next()
	} else {
		t.reportParseError(herrors.MissingSemicolonAfterCharacterReference)
	}

	base := 10
	if cr.isHex {
		base = 16
	}
	cp, err := strconv.ParseInt(string(cr.numText), base, 64)
	if err != nil {
		cr.done, cr.result = true, []rune{unicode.ReplacementChar}
		return crDone
	}

	cr.done, cr.result = true, []rune{t.resolveNumericReference(int(cp))}
	return crDone
}

func (t *Tokenizer) resolveNumericReference(cp int) rune {
	if cp == 0 {
		t.reportParseError(herrors.NullCharacterReference)
		return unicode.ReplacementChar
	}
	if cp > 0x10FFFF {
		t.reportParseError(herrors.CharacterReferenceOutsideUnicodeRange)
		return unicode.ReplacementChar
	}
	if cp >= 0xD800 && cp <= 0xDFFF {
		t.reportParseError(herrors.SurrogateCharacterReference)
		return unicode.ReplacementChar
	}
	if r, ok := constants.NumericReplacements[cp]; ok {
		t.reportParseError(herrors.ControlCharacterReference)
		return r
	}
	if cp >= 0x80 && cp <= 0x9F {
		t.reportParseError(herrors.ControlCharacterReference)
	}
	return rune(cp)
}

func (t *Tokenizer) finishNamed(cr *charRefTokenizer) crStepResult {
	name := string(cr.nameText)
	// Find the longest matching prefix that is itself a known entity name.
	matchLen := 0
	for l := len(name); l > 0; l-- {
		if _, ok := constants.NamedEntities[name[:l]]; ok {
			matchLen = l
			break
		}
	}
	if matchLen == 0 {
		if len(name) > 0 {
			t.reportParseError(herrors.UnknownNamedCharacterReference)
		}
		t.buf.PushFront(cr.temp)
		cr.done, cr.result = true, nil
		return crDone
	}

	matched := name[:matchLen]
	trailingAfterMatch := []rune(name[matchLen:])
	value := constants.NamedEntities[matched]
	hasSemicolon := false
	if len(trailingAfterMatch) == 0 {
		if c, ok := t.buf.Peek(); ok && c == ';' {
			t.buf.Next()
			hasSemicolon = true
		}
	}

	if !hasSemicolon {
		legacy := constants.LegacyEntities[matched]
		if !legacy {
			t.reportParseError(herrors.MissingSemicolonAfterCharacterReference)
			t.buf.PushFront(cr.temp)
			cr.done, cr.result = true, nil
			return crDone
		}
		if cr.inAttribute && len(trailingAfterMatch) == 0 {
			if c, ok := t.buf.Peek(); ok && (c == '=' || constants.IsASCIIAlphaNum(c)) {
				t.buf.PushFront(cr.temp)
				cr.done, cr.result = true, nil
				return crDone
			}
		}
		t.reportParseError(herrors.MissingSemicolonAfterCharacterReference)
	}

	// Put back any extra alphanumerics collected beyond the matched entity
	// name (the greedy scan above over-reads by at most the gap between a
	// prefix and its longest sibling).
	if len(trailingAfterMatch) > 0 {
		t.buf.PushFront(trailingAfterMatch)
	}

	cr.done, cr.result = true, []rune(value)
	return crDone
}
