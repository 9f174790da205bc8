// Package herrors defines the advisory parse-error vocabulary shared by the
// tokenizer and tree builder. No error in this package is ever fatal: it is
// reported through a sink's ParseError method and parsing continues.
package herrors

// Error codes as named by the WHATWG HTML5 parsing-errors table. These
// identifiers are spec vocabulary, not an invention of this module.
const (
	AbruptClosingOfEmptyComment                               = "abrupt-closing-of-empty-comment"
	AbruptDoctypePublicIdentifier                             = "abrupt-doctype-public-identifier"
	AbruptDoctypeSystemIdentifier                             = "abrupt-doctype-system-identifier"
	AbsenceOfDigitsInNumericCharReference                     = "absence-of-digits-in-numeric-character-reference"
	CDATAInHTMLContent                                        = "cdata-in-html-content"
	CharacterReferenceOutsideUnicodeRange                     = "character-reference-outside-unicode-range"
	ControlCharacterInInputStream                             = "control-character-in-input-stream"
	ControlCharacterReference                                 = "control-character-reference"
	DuplicateAttribute                                        = "duplicate-attribute"
	EndTagWithAttributes                                      = "end-tag-with-attributes"
	EndTagWithTrailingSolidus                                 = "end-tag-with-trailing-solidus"
	EOFBeforeTagName                                          = "eof-before-tag-name"
	EOFInCDATA                                                = "eof-in-cdata"
	EOFInComment                                               = "eof-in-comment"
	EOFInDoctype                                              = "eof-in-doctype"
	EOFInScriptHTMLCommentLikeText                            = "eof-in-script-html-comment-like-text"
	EOFInTag                                                  = "eof-in-tag"
	IncorrectlyClosedComment                                  = "incorrectly-closed-comment"
	IncorrectlyOpenedComment                                  = "incorrectly-opened-comment"
	InvalidCharacterSequenceAfterDoctypeName                  = "invalid-character-sequence-after-doctype-name"
	InvalidFirstCharacterOfTagName                            = "invalid-first-character-of-tag-name"
	MissingAttributeValue                                     = "missing-attribute-value"
	MissingDoctypeName                                        = "missing-doctype-name"
	MissingDoctypePublicIdentifier                            = "missing-doctype-public-identifier"
	MissingDoctypeSystemIdentifier                            = "missing-doctype-system-identifier"
	MissingEndTagName                                         = "missing-end-tag-name"
	MissingQuoteBeforeDoctypePublicIdentifier                 = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeDoctypeSystemIdentifier                 = "missing-quote-before-doctype-system-identifier"
	MissingSemicolonAfterCharacterReference                   = "missing-semicolon-after-character-reference"
	MissingWhitespaceAfterDoctypePublicKeyword                = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterDoctypeSystemKeyword                = "missing-whitespace-after-doctype-system-keyword"
	MissingWhitespaceBeforeDoctypeName                        = "missing-whitespace-before-doctype-name"
	MissingWhitespaceBetweenAttributes                        = "missing-whitespace-between-attributes"
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers = "missing-whitespace-between-doctype-public-and-system-identifiers"
	NestedComment                                             = "nested-comment"
	NoncharacterCharacterReference                            = "noncharacter-character-reference"
	NoncharacterInInputStream                                 = "noncharacter-in-input-stream"
	NonVoidHTMLElementStartTagWithTrailingSolidus             = "non-void-html-element-start-tag-with-trailing-solidus"
	NullCharacterReference                                    = "null-character-reference"
	SurrogateCharacterReference                               = "surrogate-character-reference"
	SurrogateInInputStream                                    = "surrogate-in-input-stream"
	UnexpectedCharacterAfterDoctypeSystemIdentifier           = "unexpected-character-after-doctype-system-identifier"
	UnexpectedCharacterInAttributeName                        = "unexpected-character-in-attribute-name"
	UnexpectedCharacterInUnquotedAttributeValue               = "unexpected-character-in-unquoted-attribute-value"
	UnexpectedEqualsSignBeforeAttributeName                   = "unexpected-equals-sign-before-attribute-name"
	UnexpectedNullCharacter                                   = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTagName                    = "unexpected-question-mark-instead-of-tag-name"
	UnexpectedSolidusInTag                                    = "unexpected-solidus-in-tag"
	UnknownNamedCharacterReference                            = "unknown-named-character-reference"

	// Tree-construction errors.
	NonSpaceCharacterInTableText = "non-space-character-in-table-text"
	FosterParentedCharacter     = "foster-parented-character"
	UnexpectedDoctype           = "unexpected-doctype"
	UnexpectedStartTag          = "unexpected-start-tag"
	UnexpectedEndTag            = "unexpected-end-tag"
	UnexpectedTokenInForeignContent = "unexpected-token-in-foreign-content"
	SelfClosingFlagNotAcknowledged  = "non-void-html-element-start-tag-with-trailing-solidus"
)

var messages = map[string]string{
	AbruptClosingOfEmptyComment:           "an empty comment was abruptly closed by '>'",
	AbruptDoctypePublicIdentifier:         "'>' appeared inside a DOCTYPE public identifier",
	AbruptDoctypeSystemIdentifier:         "'>' appeared inside a DOCTYPE system identifier",
	AbsenceOfDigitsInNumericCharReference: "a numeric character reference had no digits",
	CDATAInHTMLContent:                    "a CDATA section appeared outside foreign content",
	CharacterReferenceOutsideUnicodeRange:  "a numeric character reference exceeded U+10FFFF",
	ControlCharacterInInputStream:         "a disallowed control character appeared in the input",
	ControlCharacterReference:             "a numeric character reference resolved to a control character",
	DuplicateAttribute:                    "an attribute name was repeated on the same tag",
	EndTagWithAttributes:                  "an end tag carried attributes",
	EndTagWithTrailingSolidus:              "an end tag had a trailing '/'",
	EOFBeforeTagName:                      "end of file where a tag name was expected",
	EOFInCDATA:                            "end of file inside a CDATA section",
	EOFInComment:                          "end of file inside a comment",
	EOFInDoctype:                          "end of file inside a DOCTYPE",
	EOFInScriptHTMLCommentLikeText:        "end of file inside a script comment-like text span",
	EOFInTag:                              "end of file inside a tag",
	IncorrectlyClosedComment:              "a comment was closed incorrectly",
	IncorrectlyOpenedComment:              "a comment was opened incorrectly",
	InvalidCharacterSequenceAfterDoctypeName: "an invalid character sequence followed a DOCTYPE name",
	InvalidFirstCharacterOfTagName:         "a tag name began with an invalid character",
	MissingAttributeValue:                 "an attribute name was not followed by a value",
	MissingDoctypeName:                    "a DOCTYPE was missing its name",
	MissingDoctypePublicIdentifier:        "a DOCTYPE public identifier was missing",
	MissingDoctypeSystemIdentifier:        "a DOCTYPE system identifier was missing",
	MissingEndTagName:                     "an end tag had no name",
	MissingQuoteBeforeDoctypePublicIdentifier: "a DOCTYPE public identifier had no leading quote",
	MissingQuoteBeforeDoctypeSystemIdentifier: "a DOCTYPE system identifier had no leading quote",
	MissingSemicolonAfterCharacterReference: "a character reference was not terminated by ';'",
	MissingWhitespaceAfterDoctypePublicKeyword: "no whitespace followed the DOCTYPE PUBLIC keyword",
	MissingWhitespaceAfterDoctypeSystemKeyword: "no whitespace followed the DOCTYPE SYSTEM keyword",
	MissingWhitespaceBeforeDoctypeName:     "no whitespace preceded the DOCTYPE name",
	MissingWhitespaceBetweenAttributes:     "no whitespace separated two attributes",
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers: "no whitespace separated the DOCTYPE public and system identifiers",
	NestedComment:                          "a comment contained a nested '<!--'",
	NoncharacterCharacterReference:         "a character reference resolved to a noncharacter",
	NoncharacterInInputStream:              "a noncharacter appeared in the input",
	NonVoidHTMLElementStartTagWithTrailingSolidus: "a non-void element's start tag had a trailing '/' that was not acknowledged",
	NullCharacterReference:                 "a character reference resolved to U+0000",
	SurrogateCharacterReference:            "a character reference resolved to a surrogate",
	SurrogateInInputStream:                 "a surrogate code point appeared in the input",
	UnexpectedCharacterAfterDoctypeSystemIdentifier: "unexpected character after a DOCTYPE system identifier",
	UnexpectedCharacterInAttributeName:     "an unexpected character appeared in an attribute name",
	UnexpectedCharacterInUnquotedAttributeValue: "an unexpected character appeared in an unquoted attribute value",
	UnexpectedEqualsSignBeforeAttributeName: "an '=' appeared before an attribute name",
	UnexpectedNullCharacter:                "an unexpected U+0000 NULL was replaced",
	UnexpectedQuestionMarkInsteadOfTagName:  "a '?' appeared where a tag name was expected",
	UnexpectedSolidusInTag:                 "an unexpected '/' appeared inside a tag",
	UnknownNamedCharacterReference:         "an unrecognized named character reference was used",
	NonSpaceCharacterInTableText:           "non-whitespace character data appeared directly inside a table",
	FosterParentedCharacter:                "character data was foster-parented out of a table",
	UnexpectedDoctype:                      "a DOCTYPE appeared where it is not allowed",
	UnexpectedStartTag:                     "a start tag was not allowed in the current insertion mode",
	UnexpectedEndTag:                       "an end tag did not match any open element",
	UnexpectedTokenInForeignContent:        "a token was not allowed inside foreign content",
}

// Message returns the exact_errors-mode message for a code, or a generic
// fallback for unrecognized codes.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "parse error"
}
