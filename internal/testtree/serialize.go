package testtree

import (
	"sort"
	"strings"

	"github.com/renato-zannon/html5ever/internal/constants"
)

// Serialize renders doc in the html5lib tree-construction test "document"
// format (https://github.com/html5lib/html5lib-tests), so golden fixtures
// lifted from that corpus can be compared directly.
func Serialize(doc *Node) string {
	var sb strings.Builder
	for _, child := range doc.Children {
		if child.Type == DoctypeNode {
			sb.WriteString("| <!DOCTYPE ")
			if child.DoctypeName == "" {
				sb.WriteString(">")
			} else {
				sb.WriteString(child.DoctypeName)
				if child.DoctypePublic != "" || child.DoctypeSystem != "" {
					sb.WriteString(" \"")
					sb.WriteString(child.DoctypePublic)
					sb.WriteString("\" \"")
					sb.WriteString(child.DoctypeSystem)
					sb.WriteString("\">")
				} else {
					sb.WriteString(">")
				}
			}
			sb.WriteByte('\n')
			continue
		}
		writeNode(&sb, child, 0)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeNode(sb *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n.Type {
	case ElementNode:
		sb.WriteString("| ")
		sb.WriteString(indent)
		sb.WriteString("<")
		sb.WriteString(tagLabel(n))
		sb.WriteString(">\n")

		attrs := append([]Attr(nil), n.Attrs...)
		sort.Slice(attrs, func(i, j int) bool {
			return attrLabel(attrs[i]) < attrLabel(attrs[j])
		})
		for _, a := range attrs {
			sb.WriteString("| ")
			sb.WriteString(indent)
			sb.WriteString("  ")
			sb.WriteString(attrLabel(a))
			sb.WriteString("=\"")
			sb.WriteString(a.Value)
			sb.WriteString("\"\n")
		}

		if n.TemplateContent != nil {
			sb.WriteString("| ")
			sb.WriteString(strings.Repeat("  ", depth+1))
			sb.WriteString("content\n")
			for _, c := range n.TemplateContent.Children {
				writeNode(sb, c, depth+2)
			}
		}

		for _, c := range n.Children {
			writeNode(sb, c, depth+1)
		}

	case TextNode:
		sb.WriteString("| ")
		sb.WriteString(indent)
		sb.WriteString("\"")
		sb.WriteString(n.Data)
		sb.WriteString("\"\n")

	case CommentNode:
		sb.WriteString("| ")
		sb.WriteString(indent)
		sb.WriteString("<!-- ")
		sb.WriteString(n.Data)
		sb.WriteString(" -->\n")
	}
}

func tagLabel(n *Node) string {
	switch n.Namespace {
	case "", constants.NamespaceHTML:
		return n.TagName
	case constants.NamespaceSVG:
		return "svg " + n.TagName
	case constants.NamespaceMathML:
		return "math " + n.TagName
	default:
		return n.Namespace + " " + n.TagName
	}
}

func attrLabel(a Attr) string {
	switch a.Namespace {
	case "":
		return a.Name
	case "http://www.w3.org/1999/xlink":
		return "xlink " + a.Name
	case "http://www.w3.org/XML/1998/namespace":
		return "xml " + a.Name
	case "http://www.w3.org/2000/xmlns/":
		return "xmlns " + a.Name
	default:
		return a.Namespace + " " + a.Name
	}
}
