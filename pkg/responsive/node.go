package responsive

import (
	"strconv"
	"strings"
)

// ResponsiveKeyProp is the prop a gate sets on tagged elements.
const ResponsiveKeyProp = "responsiveKey"

// Node is an element of a renderable tree: Text, Number or *Element.
type Node interface {
	isNode()
}

// Text is a string leaf. Leaves cannot carry props, so gates never tag them.
type Text string

// Number is a numeric leaf.
type Number float64

// Props holds an element's properties.
type Props map[string]any

// Element is a node with props and children. View renders it given the
// already rendered children; a nil View renders the children stacked.
type Element struct {
	Type     string
	Props    Props
	Children []Node
	View     func(e *Element, children []string) string
}

func (Text) isNode()     {}
func (Number) isNode()   {}
func (*Element) isNode() {}

// El builds an element.
func El(typ string, props Props, view func(e *Element, children []string) string, children ...Node) *Element {
	return &Element{Type: typ, Props: props, Children: children, View: view}
}

// With returns a copy of e whose props are e's props merged with props.
// Children are shared with the original.
func (e *Element) With(props Props) *Element {
	clone := *e
	clone.Props = make(Props, len(e.Props)+len(props))
	for k, v := range e.Props {
		clone.Props[k] = v
	}
	for k, v := range props {
		clone.Props[k] = v
	}
	return &clone
}

// Prop returns a prop value.
func (e *Element) Prop(name string) (any, bool) {
	v, ok := e.Props[name]
	return v, ok
}

// StringProp returns a string prop, or "" when missing or not a string.
func (e *Element) StringProp(name string) string {
	s, _ := e.Props[name].(string)
	return s
}

// ResponsiveKey returns the key a gate tagged the element with.
func (e *Element) ResponsiveKey() string {
	return e.StringProp(ResponsiveKeyProp)
}

// tag adds the responsive key to elements and leaves text and numbers alone.
func tag(n Node, key string) Node {
	el, ok := n.(*Element)
	if !ok || el == nil {
		return n
	}
	return el.With(Props{ResponsiveKeyProp: key})
}

// RenderEach renders every node to a string.
func RenderEach(nodes []Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, render(n))
	}
	return out
}

// Render renders nodes stacked vertically, skipping empty output.
func Render(nodes ...Node) string {
	return joinNonEmpty(RenderEach(nodes))
}

func render(n Node) string {
	switch v := n.(type) {
	case Text:
		return string(v)
	case Number:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	case *Element:
		if v == nil {
			return ""
		}
		children := RenderEach(v.Children)
		if v.View != nil {
			return v.View(v, children)
		}
		return joinNonEmpty(children)
	}
	return ""
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
