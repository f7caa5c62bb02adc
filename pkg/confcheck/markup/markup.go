// Package markup detects and strips HTML markup embedded in cell text.
package markup

import (
	"html"
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var entityPattern = regexp.MustCompile(`&#?[0-9A-Za-z]+;`)

// elementNames lists the HTML elements a browser builds as real elements,
// obsolete ones included. Other names, attribute names among them, parse
// as unknown elements.
var elementNames = []string{
	"a", "abbr", "acronym", "address", "applet", "area", "article", "aside", "audio",
	"b", "base", "basefont", "bdi", "bdo", "bgsound", "big", "blink", "blockquote", "body", "br", "button",
	"canvas", "caption", "center", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog", "dir", "div", "dl", "dt",
	"em", "embed", "fieldset", "figcaption", "figure", "font", "footer", "form", "frame", "frameset",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "hr", "html",
	"i", "iframe", "image", "img", "input", "ins", "isindex", "kbd", "keygen",
	"label", "legend", "li", "link", "listing", "main", "map", "mark", "marquee", "math",
	"menu", "menuitem", "meta", "meter", "nav", "nobr", "noembed", "noframes", "noscript",
	"object", "ol", "optgroup", "option", "output", "p", "param", "picture", "plaintext", "pre", "progress",
	"q", "rb", "rp", "rt", "rtc", "ruby", "s", "samp", "script", "section", "select", "slot",
	"small", "source", "span", "strike", "strong", "style", "sub", "summary", "sup", "svg",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead", "time", "title",
	"tr", "track", "tt", "u", "ul", "var", "video", "wbr", "xmp",
}

// elements holds the atoms of elementNames. Names missing from the atom
// table are left out; Lookup never returns them.
var elements = func() map[atom.Atom]bool {
	m := make(map[atom.Atom]bool, len(elementNames))
	for _, name := range elementNames {
		if a := atom.Lookup([]byte(name)); a != 0 {
			m[a] = true
		}
	}
	return m
}()

// Tag is a tag name seen in a cell, with whether the HTML parser knows it.
type Tag struct {
	Name  string
	Known bool
}

// Tags tokenizes s and returns every distinct tag name in first-seen order.
// Malformed input never fails; it simply yields fewer tags.
func Tags(s string) []Tag {
	if !strings.Contains(s, "<") {
		return nil
	}

	seen := make(map[string]bool)
	var out []Tag
	z := xhtml.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			// io.EOF or a tokenizer error; both end the scan.
			return out
		}
		switch tt {
		case xhtml.StartTagToken, xhtml.EndTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			n := string(name)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, Tag{Name: n, Known: elements[atom.Lookup(name)]})
		}
	}
}

// KnownTags returns the distinct tag names of s that are real HTML elements.
func KnownTags(s string) []string {
	var out []string
	for _, t := range Tags(s) {
		if t.Known {
			out = append(out, t.Name)
		}
	}
	return out
}

// Entities returns the distinct character references in s whose decoded
// form differs from the literal text, in first-seen order.
func Entities(s string) []string {
	if !strings.Contains(s, "&") {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, ref := range entityPattern.FindAllString(s, -1) {
		if seen[ref] {
			continue
		}
		seen[ref] = true
		if html.UnescapeString(ref) != ref {
			out = append(out, ref)
		}
	}
	return out
}

// Clean decodes entities, defuses unknown tags and returns the plain text of s.
// Passes repeat until the text stops changing, so Clean(Clean(s)) == Clean(s).
// Every pass that changes the text either decodes a reference, which shortens
// it, or drops or defuses a tag that then stays text.
func Clean(s string) string {
	out := strings.TrimSpace(s)
	for {
		next := cleanOnce(out)
		if next == out {
			return out
		}
		out = next
	}
}

func cleanOnce(s string) string {
	decoded := html.UnescapeString(s)

	adjusted := decoded
	for _, t := range Tags(decoded) {
		if !t.Known {
			adjusted = defuse(adjusted, t.Name)
		}
	}

	text, err := plainText(adjusted)
	if err != nil {
		return strings.TrimSpace(decoded)
	}
	return strings.TrimSpace(text)
}

// defuse inserts a space before name inside every angle bracket that opens it,
// so "<foo>" reads as text instead of a tag.
func defuse(s, name string) string {
	re := regexp.MustCompile(`(?i)<(/?)(` + regexp.QuoteMeta(name) + `)([\s/>]|$)`)
	return re.ReplaceAllString(s, "<$1 $2$3")
}

// plainText parses s as a body fragment and concatenates its text nodes.
func plainText(s string) (string, error) {
	context := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(s), context)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return sb.String(), nil
}
