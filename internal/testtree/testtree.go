// Package testtree is a minimal in-memory TreeSink used by this module's
// own tests. It is not a production DOM: the tree builder is deliberately
// agnostic to any concrete tree representation, so this package exists
// solely to give treebuilder/driver tests something to assert against.
package testtree

import (
	"github.com/renato-zannon/html5ever/internal/constants"
	"github.com/renato-zannon/html5ever/tokenizer"
	"github.com/renato-zannon/html5ever/treebuilder"
)

// NodeType tags a Node's kind.
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
	CommentNode
	DoctypeNode
)

// Attr is one (namespace, name, value) triple on an Element node.
type Attr struct {
	Namespace string
	Name      string
	Value     string
}

// Node is the sole node representation this package knows about. A
// treebuilder.Handle is always a *Node here.
type Node struct {
	Type   NodeType
	Parent *Node

	Children []*Node

	TagName   string
	Namespace string
	Attrs     []Attr

	Data string // Text/Comment payload

	DoctypeName, DoctypePublic, DoctypeSystem string

	// TemplateContent is the <template>'s content document fragment,
	// represented as another Document-kind Node; nil otherwise.
	TemplateContent *Node

	ScriptAlreadyStarted bool
}

// Attr returns the value of an unnamespaced attribute, or "".
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Namespace == "" && a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Sink implements treebuilder.TreeSink over a tree of *Node values.
type Sink struct {
	Document *Node
	Mode     treebuilder.QuirksMode
	Errors   []string
}

// New creates an empty Sink ready to be handed to treebuilder.New.
func New() *Sink {
	return &Sink{Document: &Node{Type: DocumentNode}}
}

func (s *Sink) ParseError(message string) { s.Errors = append(s.Errors, message) }

func (s *Sink) GetDocument() treebuilder.Handle { return s.Document }

func (s *Sink) SetQuirksMode(mode treebuilder.QuirksMode) { s.Mode = mode }

func (s *Sink) SameNode(a, b treebuilder.Handle) bool { return a.(*Node) == b.(*Node) }

func (s *Sink) ElemName(h treebuilder.Handle) treebuilder.QualName {
	n := h.(*Node)
	return treebuilder.QualName{Namespace: n.Namespace, Local: n.TagName}
}

func (s *Sink) CreateElement(name treebuilder.QualName, attrs []tokenizer.Attr) treebuilder.Handle {
	n := &Node{Type: ElementNode, TagName: name.Local, Namespace: name.Namespace}
	for _, a := range attrs {
		n.Attrs = append(n.Attrs, Attr{Namespace: a.Name.Namespace, Name: a.Name.Local, Value: a.Value})
	}
	if name.Namespace == constants.NamespaceHTML && name.Local == "template" {
		n.TemplateContent = &Node{Type: DocumentNode}
	}
	return n
}

func (s *Sink) CreateComment(text string) treebuilder.Handle {
	return &Node{Type: CommentNode, Data: text}
}

func (s *Sink) Append(parent treebuilder.Handle, child treebuilder.NodeOrText) {
	p := parent.(*Node)
	if child.IsText {
		if last := lastChild(p); last != nil && last.Type == TextNode {
			last.Data += child.Text
			return
		}
		p.Children = append(p.Children, &Node{Type: TextNode, Data: child.Text, Parent: p})
		return
	}
	n := child.Handle.(*Node)
	n.Parent = p
	p.Children = append(p.Children, n)
}

func (s *Sink) AppendBeforeSibling(sibling treebuilder.Handle, child treebuilder.NodeOrText) (bool, treebuilder.NodeOrText) {
	sib := sibling.(*Node)
	if sib.Parent == nil {
		return false, child
	}
	p := sib.Parent
	idx := indexOf(p, sib)

	if child.IsText {
		if idx > 0 && p.Children[idx-1].Type == TextNode {
			p.Children[idx-1].Data += child.Text
			return true, treebuilder.NodeOrText{}
		}
		p.Children = insertAt(p.Children, idx, &Node{Type: TextNode, Data: child.Text, Parent: p})
		return true, treebuilder.NodeOrText{}
	}

	n := child.Handle.(*Node)
	n.Parent = p
	p.Children = insertAt(p.Children, idx, n)
	return true, treebuilder.NodeOrText{}
}

func (s *Sink) AppendDoctypeToDocument(name, publicID, systemID string) {
	s.Document.Children = append(s.Document.Children, &Node{
		Type: DoctypeNode, Parent: s.Document,
		DoctypeName: name, DoctypePublic: publicID, DoctypeSystem: systemID,
	})
}

func (s *Sink) AddAttrsIfMissing(target treebuilder.Handle, attrs []tokenizer.Attr) {
	n := target.(*Node)
	for _, a := range attrs {
		present := false
		for _, existing := range n.Attrs {
			if existing.Namespace == a.Name.Namespace && existing.Name == a.Name.Local {
				present = true
				break
			}
		}
		if !present {
			n.Attrs = append(n.Attrs, Attr{Namespace: a.Name.Namespace, Name: a.Name.Local, Value: a.Value})
		}
	}
}

func (s *Sink) RemoveFromParent(target treebuilder.Handle) {
	n := target.(*Node)
	if n.Parent == nil {
		return
	}
	p := n.Parent
	if idx := indexOf(p, n); idx >= 0 {
		p.Children = append(p.Children[:idx], p.Children[idx+1:]...)
	}
	n.Parent = nil
}

func (s *Sink) MarkScriptAlreadyStarted(h treebuilder.Handle) {
	h.(*Node).ScriptAlreadyStarted = true
}

func lastChild(n *Node) *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

func indexOf(parent, child *Node) int {
	for i, c := range parent.Children {
		if c == child {
			return i
		}
	}
	return -1
}

func insertAt(children []*Node, idx int, n *Node) []*Node {
	children = append(children, nil)
	copy(children[idx+1:], children[idx:])
	children[idx] = n
	return children
}
