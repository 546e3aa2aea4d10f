package render

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestDocumentBlockStructure(t *testing.T) {
	r := New("github")
	input := "# Title\n\nSome *text*.\n\n- one\n- two\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
	out := string(r.Document([]byte(input)).HTML)

	for _, want := range []string{"<h1", "<em>text</em>", "<ul>", "<li>one</li>", "<table>", "<td>1</td>"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestDocumentDeterministic(t *testing.T) {
	r := New("github")
	input := []byte("# Title\n\n```go\npackage main\n```\n")
	first := r.Document(input)
	second := r.Document(input)
	if first.HTML != second.HTML {
		t.Error("rendering the same content twice produced different output")
	}
}

func TestDocumentHighlightsFencedCode(t *testing.T) {
	r := New("github")
	out := string(r.Document([]byte("```go\npackage main\n```\n")).HTML)

	if !strings.Contains(out, `class="chroma"`) {
		t.Errorf("expected chroma class on highlighted block, got:\n%s", out)
	}
	if !strings.Contains(out, "package") {
		t.Errorf("expected code content to survive, got:\n%s", out)
	}
}

func TestDocumentPlainCodeWithoutLanguage(t *testing.T) {
	r := New("github")
	out := string(r.Document([]byte("```\nplain text block\n```\n")).HTML)

	if !strings.Contains(out, "<pre") || !strings.Contains(out, "plain text block") {
		t.Errorf("expected preformatted plain block, got:\n%s", out)
	}
}

func TestDocumentSanitizesScripts(t *testing.T) {
	r := New("github")
	tests := []struct {
		name  string
		input string
	}{
		{"script element", "hello\n\n<script>alert(1)</script>\n"},
		{"inline handler", `<img src="x.png" onerror="alert(1)">` + "\n"},
		{"javascript link", "[click](javascript:alert(1))\n"},
		{"iframe", `<iframe src="https://evil.example"></iframe>` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := string(r.Document([]byte(tt.input)).HTML)
			if strings.Contains(out, "<script") {
				t.Errorf("script element survived sanitization:\n%s", out)
			}
			if strings.Contains(out, "onerror") {
				t.Errorf("event handler survived sanitization:\n%s", out)
			}
			if strings.Contains(out, "javascript:") {
				t.Errorf("javascript URL survived sanitization:\n%s", out)
			}
			assertNoElement(t, out, "script")
			assertNoElement(t, out, "iframe")
		})
	}
}

// assertNoElement parses rendered output and walks it for a forbidden tag.
func assertNoElement(t *testing.T, rendered, tag string) {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader([]byte(rendered)))
	if err != nil {
		t.Fatalf("output is not parseable HTML: %v", err)
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			t.Errorf("found forbidden <%s> element in output:\n%s", tag, rendered)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
}

func TestDocumentKeepsBenignEmbeddedHTML(t *testing.T) {
	r := New("github")
	out := string(r.Document([]byte("before\n\n<em>kept</em>\n")).HTML)
	if !strings.Contains(out, "<em>kept</em>") {
		t.Errorf("expected benign markup to survive, got:\n%s", out)
	}
}

func TestThemeCSSBuiltOnce(t *testing.T) {
	r := New("github")
	first := r.ThemeCSS()
	second := r.ThemeCSS()

	if len(first) == 0 {
		t.Fatal("expected non-empty stylesheet")
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated ThemeCSS calls returned different stylesheets")
	}
	if !strings.Contains(string(first), ".chroma") {
		t.Errorf("expected chroma selectors in stylesheet, got:\n%s", first[:min(len(first), 200)])
	}
}

func TestThemeCSSUnknownStyleFallsBack(t *testing.T) {
	r := New("no-such-style")
	if len(r.ThemeCSS()) == 0 {
		t.Error("expected fallback stylesheet for unknown style name")
	}
}
