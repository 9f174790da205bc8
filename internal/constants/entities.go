package constants

// NamedEntities maps an entity name (without the leading '&' or trailing
// ';') to its expansion. Entries also present in LegacyEntities may be
// matched without a trailing semicolon, per the HTML5 named-character-
// reference state; all other entries require the semicolon.
//
// This is a curated subset of the WHATWG table (github.com/whatwg/html
// entities.json has ~2,200 entries generated from an external data file;
// hand-transcribing it in full is out of scope for a faithful port — see
// DESIGN.md). It covers the legacy two-character references every HTML
// document can rely on plus the named references a typical corpus uses.
var NamedEntities = map[string]string{
	// Legacy (semicolon-optional) references, apart from apos, which is not
	// in LegacyEntities and needs its semicolon.
	"amp":   "&",
	"lt":    "<",
	"gt":    ">",
	"quot":  "\"",
	"apos":  "'",
	"nbsp":  " ",
	"copy":  "©",
	"reg":   "®",
	"AMP":   "&",
	"LT":    "<",
	"GT":    ">",
	"QUOT":  "\"",
	"COPY":  "©",
	"REG":   "®",
	"iexcl": "¡",
	"cent":  "¢",
	"pound": "£",
	"curren": "¤",
	"yen":   "¥",
	"brvbar": "¦",
	"sect":  "§",
	"uml":   "¨",
	"ordf":  "ª",
	"laquo": "«",
	"not":   "¬",
	"shy":   "­",
	"macr":  "¯",
	"deg":   "°",
	"plusmn": "±",
	"sup2":  "²",
	"sup3":  "³",
	"acute": "´",
	"micro": "µ",
	"para":  "¶",
	"middot": "·",
	"cedil": "¸",
	"sup1":  "¹",
	"ordm":  "º",
	"raquo": "»",
	"frac14": "¼",
	"frac12": "½",
	"frac34": "¾",
	"iquest": "¿",
	"times": "×",
	"divide": "÷",

	// Latin-1 letters used often enough to matter.
	"Agrave": "À", "Aacute": "Á", "Acirc": "Â", "Atilde": "Ã",
	"Auml": "Ä", "Aring": "Å", "AElig": "Æ", "Ccedil": "Ç",
	"Egrave": "È", "Eacute": "É", "Ecirc": "Ê", "Euml": "Ë",
	"Igrave": "Ì", "Iacute": "Í", "Icirc": "Î", "Iuml": "Ï",
	"ETH": "Ð", "Ntilde": "Ñ", "Ograve": "Ò", "Oacute": "Ó",
	"Ocirc": "Ô", "Otilde": "Õ", "Ouml": "Ö", "Oslash": "Ø",
	"Ugrave": "Ù", "Uacute": "Ú", "Ucirc": "Û", "Uuml": "Ü",
	"Yacute": "Ý", "THORN": "Þ", "szlig": "ß",
	"agrave": "à", "aacute": "á", "acirc": "â", "atilde": "ã",
	"auml": "ä", "aring": "å", "aelig": "æ", "ccedil": "ç",
	"egrave": "è", "eacute": "é", "ecirc": "ê", "euml": "ë",
	"igrave": "ì", "iacute": "í", "icirc": "î", "iuml": "ï",
	"eth": "ð", "ntilde": "ñ", "ograve": "ò", "oacute": "ó",
	"ocirc": "ô", "otilde": "õ", "ouml": "ö", "oslash": "ø",
	"ugrave": "ù", "uacute": "ú", "ucirc": "û", "uuml": "ü",
	"yacute": "ý", "thorn": "þ", "yuml": "ÿ",

	// Common typographic/punctuation references (semicolon required).
	"hellip": "…", "mdash": "—", "ndash": "–",
	"lsquo": "‘", "rsquo": "’", "ldquo": "“", "rdquo": "”",
	"bull": "•", "dagger": "†", "Dagger": "‡", "permil": "‰",
	"trade": "™", "euro": "€", "sbquo": "‚", "bdquo": "„",

	// Math/logic references.
	"forall": "∀", "part": "∂", "exist": "∃", "empty": "∅",
	"nabla": "∇", "isin": "∈", "notin": "∉", "ni": "∋",
	"prod": "∏", "sum": "∑", "minus": "−", "lowast": "∗",
	"radic": "√", "prop": "∝", "infin": "∞", "ang": "∠",
	"and": "∧", "or": "∨", "cap": "∩", "cup": "∪",
	"int": "∫", "there4": "∴", "sim": "∼", "cong": "≅",
	"asymp": "≈", "ne": "≠", "equiv": "≡", "le": "≤",
	"ge": "≥", "sub": "⊂", "sup": "⊃", "nsub": "⊄",
	"sube": "⊆", "supe": "⊇", "oplus": "⊕", "otimes": "⊗",
	"perp": "⊥", "sdot": "⋅",

	// Arrows.
	"larr": "←", "uarr": "↑", "rarr": "→", "darr": "↓",
	"harr": "↔", "crarr": "↵", "lArr": "⇐", "uArr": "⇑",
	"rArr": "⇒", "dArr": "⇓", "hArr": "⇔",

	// Greek letters.
	"Alpha": "Α", "Beta": "Β", "Gamma": "Γ", "Delta": "Δ",
	"Epsilon": "Ε", "Zeta": "Ζ", "Eta": "Η", "Theta": "Θ",
	"Iota": "Ι", "Kappa": "Κ", "Lambda": "Λ", "Mu": "Μ",
	"Nu": "Ν", "Xi": "Ξ", "Omicron": "Ο", "Pi": "Π",
	"Rho": "Ρ", "Sigma": "Σ", "Tau": "Τ", "Upsilon": "Υ",
	"Phi": "Φ", "Chi": "Χ", "Psi": "Ψ", "Omega": "Ω",
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ",
	"iota": "ι", "kappa": "κ", "lambda": "λ", "mu": "μ",
	"nu": "ν", "xi": "ξ", "omicron": "ο", "pi": "π",
	"rho": "ρ", "sigmaf": "ς", "sigma": "σ", "tau": "τ",
	"upsilon": "υ", "phi": "φ", "chi": "χ", "psi": "ψ",
	"omega": "ω",

	// Spacing references used heavily in prose and tables.
	"ensp": " ", "emsp": " ", "thinsp": " ", "zwnj": "‌",
	"zwj": "‍", "lrm": "‎", "rlm": "‏",
}

// LegacyEntities names the subset of NamedEntities that may be matched
// without a trailing semicolon (the historical HTML4 entity set), per the
// named-character-reference state's "legacy" branch.
var LegacyEntities = map[string]bool{
	"amp": true, "lt": true, "gt": true, "quot": true,
	"AMP": true, "LT": true, "GT": true, "QUOT": true,
	"nbsp": true, "copy": true, "reg": true, "COPY": true, "REG": true,
	"iexcl": true, "cent": true, "pound": true, "curren": true, "yen": true,
	"brvbar": true, "sect": true, "uml": true, "ordf": true, "laquo": true,
	"not": true, "shy": true, "macr": true, "deg": true, "plusmn": true,
	"sup2": true, "sup3": true, "acute": true, "micro": true, "para": true,
	"middot": true, "cedil": true, "sup1": true, "ordm": true, "raquo": true,
	"frac14": true, "frac12": true, "frac34": true, "iquest": true,
	"times": true, "divide": true,
	"Agrave": true, "Aacute": true, "Acirc": true, "Atilde": true, "Auml": true,
	"Aring": true, "AElig": true, "Ccedil": true, "Egrave": true, "Eacute": true,
	"Ecirc": true, "Euml": true, "Igrave": true, "Iacute": true, "Icirc": true,
	"Iuml": true, "ETH": true, "Ntilde": true, "Ograve": true, "Oacute": true,
	"Ocirc": true, "Otilde": true, "Ouml": true, "Oslash": true, "Ugrave": true,
	"Uacute": true, "Ucirc": true, "Uuml": true, "Yacute": true, "THORN": true,
	"szlig": true, "agrave": true, "aacute": true, "acirc": true, "atilde": true,
	"auml": true, "aring": true, "aelig": true, "ccedil": true, "egrave": true,
	"eacute": true, "ecirc": true, "euml": true, "igrave": true, "iacute": true,
	"icirc": true, "iuml": true, "eth": true, "ntilde": true, "ograve": true,
	"oacute": true, "ocirc": true, "otilde": true, "ouml": true, "oslash": true,
	"ugrave": true, "uacute": true, "ucirc": true, "uuml": true, "yacute": true,
	"thorn": true, "yuml": true,
}

// NumericReplacements implements the Windows-1252 remapping table for the
// C1 control range (0x80-0x9F) referenced by the numeric character
// reference end state (WHATWG HTML §13.2.5.80).
var NumericReplacements = map[int]rune{
	0x80: '€', 0x82: '‚', 0x83: 'ƒ', 0x84: '„',
	0x85: '…', 0x86: '†', 0x87: '‡', 0x88: 'ˆ',
	0x89: '‰', 0x8A: 'Š', 0x8B: '‹', 0x8C: 'Œ',
	0x8E: 'Ž', 0x91: '‘', 0x92: '’', 0x93: '“',
	0x94: '”', 0x95: '•', 0x96: '–', 0x97: '—',
	0x98: '˜', 0x99: '™', 0x9A: 'š', 0x9B: '›',
	0x9C: 'œ', 0x9E: 'ž', 0x9F: 'Ÿ',
}
