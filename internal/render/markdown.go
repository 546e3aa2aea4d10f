package render

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/nishant-k1/mdsite/internal/document"
)

// Renderer converts a document's raw markdown into sanitized HTML with
// class-based code highlighting. It is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	style  string

	themeOnce sync.Once
	themeCSS  []byte
}

// New creates a Renderer using the given chroma style name for the
// highlight stylesheet ("github" is a reasonable default).
func New(style string) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// Raw HTML passes through goldmark and is stripped down
			// by the sanitizer policy below.
			html.WithUnsafe(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("pre", "code", "span", "div")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &Renderer{md: md, policy: policy, style: style}
}

// Document renders raw markdown into sanitized HTML. Rendering is
// deterministic. Source that goldmark cannot convert degrades to the
// escaped raw text in a <pre> block; Document never fails the page.
func (r *Renderer) Document(raw []byte) document.Rendered {
	var buf bytes.Buffer
	if err := r.md.Convert(raw, &buf); err != nil {
		escaped := template.HTMLEscapeString(string(raw))
		return document.Rendered{HTML: template.HTML("<pre>" + escaped + "</pre>")}
	}
	sanitized := r.policy.SanitizeBytes(buf.Bytes())
	return document.Rendered{HTML: template.HTML(sanitized)}
}

// ThemeCSS returns the highlight stylesheet for the configured style.
// The stylesheet is generated exactly once per Renderer; repeated calls
// return the same bytes.
func (r *Renderer) ThemeCSS() []byte {
	r.themeOnce.Do(func() {
		style := styles.Get(r.style)
		if style == nil {
			style = styles.Fallback
		}
		formatter := chromahtml.New(chromahtml.WithClasses(true))
		var buf bytes.Buffer
		if err := formatter.WriteCSS(&buf, style); err != nil {
			fmt.Fprintf(&buf, "/* stylesheet unavailable: %v */", err)
		}
		r.themeCSS = buf.Bytes()
	})
	return r.themeCSS
}
