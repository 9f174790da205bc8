package tokenizer

// State names one node of the tokenizer's state machine, one of the ~80
// named states in WHATWG HTML §13.2.5. Grouped as in the WHATWG tokenization
// spec: text
// content states, tag/attribute states, script-data escape variants,
// markup-declaration (comment/doctype/CDATA) states, and the
// character-reference sub-machine's own states.
type State int

// InvalidState marks "no override" where an optional State is needed.
const InvalidState State = -1

const (
	DataState State = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState

	TagOpenState
	EndTagOpenState
	TagNameState

	RCDATALessThanSignState
	RCDATAEndTagOpenState
	RCDATAEndTagNameState

	RAWTEXTLessThanSignState
	RAWTEXTEndTagOpenState
	RAWTEXTEndTagNameState

	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState

	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState

	BogusCommentState
	MarkupDeclarationOpenState
	CommentStartState
	CommentStartDashState
	CommentState
	CommentLessThanSignState
	CommentLessThanSignBangState
	CommentLessThanSignBangDashState
	CommentLessThanSignBangDashDashState
	CommentEndDashState
	CommentEndState
	CommentEndBangState

	DOCTYPEState
	BeforeDOCTYPENameState
	DOCTYPENameState
	AfterDOCTYPENameState
	AfterDOCTYPEPublicKeywordState
	BeforeDOCTYPEPublicIdentifierState
	DOCTYPEPublicIdentifierDoubleQuotedState
	DOCTYPEPublicIdentifierSingleQuotedState
	AfterDOCTYPEPublicIdentifierState
	BetweenDOCTYPEPublicAndSystemIdentifiersState
	AfterDOCTYPESystemKeywordState
	BeforeDOCTYPESystemIdentifierState
	DOCTYPESystemIdentifierDoubleQuotedState
	DOCTYPESystemIdentifierSingleQuotedState
	AfterDOCTYPESystemIdentifierState
	BogusDOCTYPEState

	CDATASectionState
	CDATASectionBracketState
	CDATASectionEndState

	CharacterReferenceState
	NamedCharacterReferenceState
	AmbiguousAmpersandState
	NumericCharacterReferenceState
	HexadecimalCharacterReferenceStartState
	DecimalCharacterReferenceStartState
	HexadecimalCharacterReferenceState
	DecimalCharacterReferenceState
	NumericCharacterReferenceEndState

	stateCount
)

var stateNames = [...]string{
	"Data", "RCDATA", "RAWTEXT", "ScriptData", "PLAINTEXT",
	"TagOpen", "EndTagOpen", "TagName",
	"RCDATALessThanSign", "RCDATAEndTagOpen", "RCDATAEndTagName",
	"RAWTEXTLessThanSign", "RAWTEXTEndTagOpen", "RAWTEXTEndTagName",
	"ScriptDataLessThanSign", "ScriptDataEndTagOpen", "ScriptDataEndTagName",
	"ScriptDataEscapeStart", "ScriptDataEscapeStartDash",
	"ScriptDataEscaped", "ScriptDataEscapedDash", "ScriptDataEscapedDashDash",
	"ScriptDataEscapedLessThanSign", "ScriptDataEscapedEndTagOpen", "ScriptDataEscapedEndTagName",
	"ScriptDataDoubleEscapeStart", "ScriptDataDoubleEscaped",
	"ScriptDataDoubleEscapedDash", "ScriptDataDoubleEscapedDashDash",
	"ScriptDataDoubleEscapedLessThanSign", "ScriptDataDoubleEscapeEnd",
	"BeforeAttributeName", "AttributeName", "AfterAttributeName",
	"BeforeAttributeValue", "AttributeValueDoubleQuoted", "AttributeValueSingleQuoted",
	"AttributeValueUnquoted", "AfterAttributeValueQuoted", "SelfClosingStartTag",
	"BogusComment", "MarkupDeclarationOpen", "CommentStart", "CommentStartDash",
	"Comment", "CommentLessThanSign", "CommentLessThanSignBang",
	"CommentLessThanSignBangDash", "CommentLessThanSignBangDashDash",
	"CommentEndDash", "CommentEnd", "CommentEndBang",
	"DOCTYPE", "BeforeDOCTYPEName", "DOCTYPEName", "AfterDOCTYPEName",
	"AfterDOCTYPEPublicKeyword", "BeforeDOCTYPEPublicIdentifier",
	"DOCTYPEPublicIdentifierDoubleQuoted", "DOCTYPEPublicIdentifierSingleQuoted",
	"AfterDOCTYPEPublicIdentifier", "BetweenDOCTYPEPublicAndSystemIdentifiers",
	"AfterDOCTYPESystemKeyword", "BeforeDOCTYPESystemIdentifier",
	"DOCTYPESystemIdentifierDoubleQuoted", "DOCTYPESystemIdentifierSingleQuoted",
	"AfterDOCTYPESystemIdentifier", "BogusDOCTYPE",
	"CDATASection", "CDATASectionBracket", "CDATASectionEnd",
	"CharacterReference", "NamedCharacterReference", "AmbiguousAmpersand",
	"NumericCharacterReference", "HexadecimalCharacterReferenceStart",
	"DecimalCharacterReferenceStart", "HexadecimalCharacterReference",
	"DecimalCharacterReference", "NumericCharacterReferenceEnd",
}

// String implements fmt.Stringer for diagnostics and profiling labels.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}
