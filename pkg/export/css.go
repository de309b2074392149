package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

// DefaultClassPrefix prefixes generated class names.
const DefaultClassPrefix = "rv"

// Stylesheet emits one @media block per compiled query. Inside a block the
// breakpoint's key class is revealed, and min/max helper classes follow the
// same inclusive bounds a Gate applies:
//
//	.rv-only-medium   visible only at medium
//	.rv-min-medium    visible at medium and above
//	.rv-max-medium    visible at medium and below
func Stylesheet(queries []responsive.Query, prefix string) string {
	if prefix == "" {
		prefix = DefaultClassPrefix
	}
	var b strings.Builder
	b.WriteString("/* Generated by rv. One block per breakpoint; exactly one matches at any width. */\n")

	var hidden []string
	for _, q := range queries {
		name := q.Breakpoint.Name
		hidden = append(hidden,
			classSelector(prefix, "only", name),
			classSelector(prefix, "min", name),
			classSelector(prefix, "max", name))
	}
	if len(hidden) > 0 {
		b.WriteString(strings.Join(hidden, ",\n"))
		b.WriteString(" { display: none; }\n")
	}

	for i, q := range queries {
		name := q.Breakpoint.Name
		var visible []string
		visible = append(visible, classSelector(prefix, "only", name))
		// min-X is visible when the current breakpoint is X or wider.
		for _, lower := range queries[:i+1] {
			visible = append(visible, classSelector(prefix, "min", lower.Breakpoint.Name))
		}
		// max-X is visible when the current breakpoint is X or narrower.
		for _, upper := range queries[i:] {
			visible = append(visible, classSelector(prefix, "max", upper.Breakpoint.Name))
		}

		fmt.Fprintf(&b, "\n/* %s */\n@media %s {\n", strings.ReplaceAll(name, "*/", "* /"), q.Media)
		fmt.Fprintf(&b, "  %s { display: block; }\n", strings.Join(visible, ", "))
		fmt.Fprintf(&b, "  body::after { content: %s; }\n", cssString(name))
		b.WriteString("}\n")
	}
	return b.String()
}

// IndexHTML renders a page that exercises the stylesheet: one line per helper
// class, so resizing the browser shows which gates are open.
func IndexHTML(bps model.Breakpoints, prefix string) string {
	if prefix == "" {
		prefix = DefaultClassPrefix
	}
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>rv breakpoints</title>\n")
	b.WriteString("<link rel=\"stylesheet\" href=\"responsive.css\">\n")
	b.WriteString("<style>body{background:#282A36;color:#F8F8F2;font-family:monospace}body::after{position:fixed;bottom:8px;right:8px;color:#BD93F9}</style>\n")
	b.WriteString("</head>\n<body>\n<h1>Breakpoints</h1>\n<img src=\"breakpoints.svg\" alt=\"breakpoint map\">\n")
	for _, bp := range bps {
		name := html.EscapeString(bp.Name)
		for _, kind := range []string{"only", "min", "max"} {
			fmt.Fprintf(&b, "<div class=\"%s-%s-%s\">%s-%s</div>\n", prefix, kind, name, kind, name)
		}
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// classSelector builds ".prefix-kind-name" with the class name escaped.
func classSelector(prefix, kind, name string) string {
	return "." + cssIdent(prefix+"-"+kind+"-"+name)
}

// cssIdent escapes s for use as a CSS identifier, following CSS.escape().
func cssIdent(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == 0:
			b.WriteRune('\uFFFD')
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		case r >= '0' && r <= '9' && (i == 0 || (i == 1 && runes[0] == '-')):
			fmt.Fprintf(&b, "\\%x ", r)
		case r == '-' && i == 0 && len(runes) == 1:
			b.WriteString(`\-`)
		case r >= 0x80 || r == '-' || r == '_' ||
			(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// cssString quotes s as a CSS string literal.
func cssString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
