// Package constants holds the closed element/attribute/namespace tables the
// tree-construction and foreign-content dispatch stages are driven by.
package constants

// Namespace URLs used throughout tokenization and tree construction.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
	NamespaceXLink  = "http://www.w3.org/1999/xlink"
	NamespaceXML    = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS  = "http://www.w3.org/2000/xmlns/"
)

// VoidElements never have an end tag or children.
var VoidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// RawTextElements switch the tokenizer to RAWTEXT/script-data on start tag.
var RawTextElements = map[string]bool{
	"script": true, "style": true,
}

// EscapableRawTextElements switch the tokenizer to RCDATA on start tag.
var EscapableRawTextElements = map[string]bool{
	"textarea": true, "title": true,
}

// SpecialElements terminate the adoption-agency "furthest block" search and
// bound generate-implied-end-tags.
var SpecialElements = map[string]bool{
	"address": true, "applet": true, "area": true, "article": true, "aside": true,
	"base": true, "basefont": true, "bgsound": true, "blockquote": true, "body": true,
	"br": true, "button": true, "caption": true, "center": true, "col": true,
	"colgroup": true, "dd": true, "details": true, "dialog": true, "dir": true,
	"div": true, "dl": true, "dt": true, "embed": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true, "frame": true,
	"frameset": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "head": true, "header": true, "hgroup": true, "hr": true,
	"html": true, "iframe": true, "img": true, "input": true, "keygen": true,
	"li": true, "link": true, "listing": true, "main": true, "marquee": true,
	"menu": true, "menuitem": true, "meta": true, "nav": true, "noembed": true,
	"noframes": true, "noscript": true, "object": true, "ol": true, "p": true,
	"param": true, "plaintext": true, "pre": true, "script": true, "search": true,
	"section": true, "select": true, "source": true, "style": true, "summary": true,
	"table": true, "tbody": true, "td": true, "template": true, "textarea": true,
	"tfoot": true, "th": true, "thead": true, "title": true, "tr": true,
	"track": true, "ul": true, "wbr": true,
}

// FormattingElements are tracked in the active-formatting-elements list and
// are subject to the adoption agency algorithm.
var FormattingElements = map[string]bool{
	"a": true, "b": true, "big": true, "code": true, "em": true, "font": true,
	"i": true, "nobr": true, "s": true, "small": true, "strike": true,
	"strong": true, "tt": true, "u": true,
}

// TableFosterTargets are the elements whose presence on the stack of open
// elements triggers foster parenting of non-table content.
var TableFosterTargets = map[string]bool{
	"table": true, "tbody": true, "tfoot": true, "thead": true, "tr": true,
}

// ImpliedEndTagElements may be popped implicitly by generate-implied-end-tags.
var ImpliedEndTagElements = map[string]bool{
	"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
	"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
}

// ThoroughlyImpliedEndTagElements extends ImpliedEndTagElements for the
// "thoroughly" variant used when popping the stack down to a table context.
var ThoroughlyImpliedEndTagElements = map[string]bool{
	"caption": true, "colgroup": true, "dd": true, "dt": true, "li": true,
	"optgroup": true, "option": true, "p": true, "rb": true, "rp": true,
	"rt": true, "rtc": true, "tbody": true, "td": true, "tfoot": true,
	"th": true, "thead": true, "tr": true,
}

// ForeignAttribute describes a namespace adjustment applied to one foreign
// attribute name during insertion into SVG/MathML content.
type ForeignAttribute struct {
	Prefix       string
	LocalName    string
	NamespaceURL string
}

// SVGTagNameAdjustments maps lowercased SVG tag names to their camelCase spelling.
var SVGTagNameAdjustments = map[string]string{
	"altglyph": "altGlyph", "altglyphdef": "altGlyphDef", "altglyphitem": "altGlyphItem",
	"animatecolor": "animateColor", "animatemotion": "animateMotion", "animatetransform": "animateTransform",
	"clippath": "clipPath", "feblend": "feBlend", "fecolormatrix": "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer", "fecomposite": "feComposite",
	"feconvolvematrix": "feConvolveMatrix", "fediffuselighting": "feDiffuseLighting",
	"fedisplacementmap": "feDisplacementMap", "fedistantlight": "feDistantLight",
	"feflood": "feFlood", "fefunca": "feFuncA", "fefuncb": "feFuncB", "fefuncg": "feFuncG",
	"fefuncr": "feFuncR", "fegaussianblur": "feGaussianBlur", "feimage": "feImage",
	"femerge": "feMerge", "femergenode": "feMergeNode", "femorphology": "feMorphology",
	"feoffset": "feOffset", "fepointlight": "fePointLight", "fespecularlighting": "feSpecularLighting",
	"fespotlight": "feSpotLight", "fetile": "feTile", "feturbulence": "feTurbulence",
	"foreignobject": "foreignObject", "glyphref": "glyphRef", "lineargradient": "linearGradient",
	"radialgradient": "radialGradient", "textpath": "textPath",
}

// SVGAttributeAdjustments maps lowercased SVG attribute names to their camelCase spelling.
var SVGAttributeAdjustments = map[string]string{
	"attributename": "attributeName", "attributetype": "attributeType",
	"basefrequency": "baseFrequency", "baseprofile": "baseProfile", "calcmode": "calcMode",
	"clippathunits": "clipPathUnits", "diffuseconstant": "diffuseConstant", "edgemode": "edgeMode",
	"filterunits": "filterUnits", "glyphref": "glyphRef", "gradienttransform": "gradientTransform",
	"gradientunits": "gradientUnits", "kernelmatrix": "kernelMatrix", "kernelunitlength": "kernelUnitLength",
	"keypoints": "keyPoints", "keysplines": "keySplines", "keytimes": "keyTimes",
	"lengthadjust": "lengthAdjust", "limitingconeangle": "limitingConeAngle",
	"markerheight": "markerHeight", "markerunits": "markerUnits", "markerwidth": "markerWidth",
	"maskcontentunits": "maskContentUnits", "maskunits": "maskUnits", "numoctaves": "numOctaves",
	"pathlength": "pathLength", "patterncontentunits": "patternContentUnits",
	"patterntransform": "patternTransform", "patternunits": "patternUnits",
	"pointsatx": "pointsAtX", "pointsaty": "pointsAtY", "pointsatz": "pointsAtZ",
	"preservealpha": "preserveAlpha", "preserveaspectratio": "preserveAspectRatio",
	"primitiveunits": "primitiveUnits", "refx": "refX", "refy": "refY",
	"repeatcount": "repeatCount", "repeatdur": "repeatDur", "requiredextensions": "requiredExtensions",
	"requiredfeatures": "requiredFeatures", "specularconstant": "specularConstant",
	"specularexponent": "specularExponent", "spreadmethod": "spreadMethod", "startoffset": "startOffset",
	"stddeviation": "stdDeviation", "stitchtiles": "stitchTiles", "surfacescale": "surfaceScale",
	"systemlanguage": "systemLanguage", "tablevalues": "tableValues", "targetx": "targetX",
	"targety": "targetY", "textlength": "textLength", "viewbox": "viewBox", "viewtarget": "viewTarget",
	"xchannelselector": "xChannelSelector", "ychannelselector": "yChannelSelector", "zoomandpan": "zoomAndPan",
}

// MathMLAttributeAdjustments maps lowercased MathML attribute names to their spelling.
var MathMLAttributeAdjustments = map[string]string{
	"definitionurl": "definitionURL",
}

// ForeignAttributeAdjustments maps lowercased attribute names onto a
// namespace + local-name pair for the xlink/xml/xmlns foreign attributes.
var ForeignAttributeAdjustments = map[string]ForeignAttribute{
	"xlink:actuate": {Prefix: "xlink", LocalName: "actuate", NamespaceURL: NamespaceXLink},
	"xlink:arcrole": {Prefix: "xlink", LocalName: "arcrole", NamespaceURL: NamespaceXLink},
	"xlink:href":    {Prefix: "xlink", LocalName: "href", NamespaceURL: NamespaceXLink},
	"xlink:role":    {Prefix: "xlink", LocalName: "role", NamespaceURL: NamespaceXLink},
	"xlink:show":    {Prefix: "xlink", LocalName: "show", NamespaceURL: NamespaceXLink},
	"xlink:title":   {Prefix: "xlink", LocalName: "title", NamespaceURL: NamespaceXLink},
	"xlink:type":    {Prefix: "xlink", LocalName: "type", NamespaceURL: NamespaceXLink},
	"xml:lang":      {Prefix: "xml", LocalName: "lang", NamespaceURL: NamespaceXML},
	"xml:space":     {Prefix: "xml", LocalName: "space", NamespaceURL: NamespaceXML},
	"xmlns":         {Prefix: "", LocalName: "xmlns", NamespaceURL: NamespaceXMLNS},
	"xmlns:xlink":   {Prefix: "xmlns", LocalName: "xlink", NamespaceURL: NamespaceXMLNS},
}

// IntegrationPoint identifies a foreign element by (namespace, local name).
type IntegrationPoint struct {
	Namespace string
	LocalName string
}

// HTMLIntegrationPoints are foreign elements whose children are parsed with
// HTML insertion-mode rules.
var HTMLIntegrationPoints = map[IntegrationPoint]bool{
	{Namespace: NamespaceMathML, LocalName: "annotation-xml"}: true,
	{Namespace: NamespaceSVG, LocalName: "foreignObject"}:     true,
	{Namespace: NamespaceSVG, LocalName: "desc"}:              true,
	{Namespace: NamespaceSVG, LocalName: "title"}:             true,
}

// MathMLTextIntegrationPoints are MathML elements allowing text/HTML content.
var MathMLTextIntegrationPoints = map[IntegrationPoint]bool{
	{Namespace: NamespaceMathML, LocalName: "mi"}:    true,
	{Namespace: NamespaceMathML, LocalName: "mo"}:    true,
	{Namespace: NamespaceMathML, LocalName: "mn"}:    true,
	{Namespace: NamespaceMathML, LocalName: "ms"}:    true,
	{Namespace: NamespaceMathML, LocalName: "mtext"}: true,
}

// ForeignBreakoutElements are HTML start tags that force an exit from
// foreign content back to HTML insertion-mode rules.
var ForeignBreakoutElements = map[string]bool{
	"b": true, "big": true, "blockquote": true, "body": true, "br": true,
	"center": true, "code": true, "dd": true, "div": true, "dl": true, "dt": true,
	"em": true, "embed": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "head": true, "hr": true, "i": true, "img": true,
	"li": true, "listing": true, "menu": true, "meta": true, "nobr": true,
	"ol": true, "p": true, "pre": true, "ruby": true, "s": true, "small": true,
	"span": true, "strong": true, "strike": true, "sub": true, "sup": true,
	"table": true, "tt": true, "u": true, "ul": true, "var": true,
}
