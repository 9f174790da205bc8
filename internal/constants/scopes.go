package constants

// Scope terminator sets consumed by the tree builder's "has an element in
// scope" family (WHATWG HTML §13.2.5.2.5). Each map names the elements that
// stop the upward walk of the stack of open elements before reaching the
// target tag.

// DefaultScope terminates the scope used by most "in scope" checks.
var DefaultScope = map[string]bool{
	"applet": true, "caption": true, "html": true, "table": true, "td": true,
	"th": true, "marquee": true, "object": true, "template": true,
	"mi": true, "mo": true, "mn": true, "ms": true, "mtext": true, "annotation-xml": true,
	"foreignObject": true, "desc": true, "title": true,
}

// ListItemScope extends DefaultScope with ol/ul for </li> handling.
var ListItemScope = map[string]bool{
	"applet": true, "caption": true, "html": true, "table": true, "td": true,
	"th": true, "marquee": true, "object": true, "template": true, "ol": true, "ul": true,
	"mi": true, "mo": true, "mn": true, "ms": true, "mtext": true, "annotation-xml": true,
	"foreignObject": true, "desc": true, "title": true,
}

// ButtonScope extends DefaultScope with button, for </p> auto-close checks.
var ButtonScope = map[string]bool{
	"applet": true, "caption": true, "html": true, "table": true, "td": true,
	"th": true, "marquee": true, "object": true, "template": true, "button": true,
	"mi": true, "mo": true, "mn": true, "ms": true, "mtext": true, "annotation-xml": true,
	"foreignObject": true, "desc": true, "title": true,
}

// TableScope terminates scope at the nearest table-ish ancestor.
var TableScope = map[string]bool{
	"html": true, "table": true, "template": true,
}

// TableBodyScope terminates scope for table-body-section handling.
var TableBodyScope = map[string]bool{
	"html": true, "table": true, "template": true, "tbody": true, "tfoot": true, "thead": true,
}

// TableRowScope terminates scope for row-level handling.
var TableRowScope = map[string]bool{
	"html": true, "table": true, "template": true, "tbody": true, "tfoot": true,
	"thead": true, "tr": true,
}

// SelectScope lists the two elements that do not terminate select scope;
// every other HTML element does. elementInSelectScope applies that rule
// directly and does not read this map.
var SelectScope = map[string]bool{
	"optgroup": true, "option": true,
}

// DefinitionScope is DefaultScope plus nothing extra beyond the ruby
// elements that can legitimately nest inside one another.
var DefinitionScope = DefaultScope
