package processor

import (
	"strings"
	"testing"
)

func TestProcessor_Convert(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		contains []string // Expected substrings in output
	}{
		{
			name: "converts headings",
			html: `<html><body><h1>Title</h1><h2>Subtitle</h2></body></html>`,
			contains: []string{
				"# Title",
				"## Subtitle",
			},
		},
		{
			name: "converts paragraphs",
			html: `<html><body><p>Hello world.</p><p>Second paragraph.</p></body></html>`,
			contains: []string{
				"Hello world.",
				"Second paragraph.",
			},
		},
		{
			name: "converts links",
			html: `<html><body><p>Check <a href="https://example.com">this link</a>.</p></body></html>`,
			contains: []string{
				"[this link](https://example.com)",
			},
		},
		{
			name: "converts code blocks",
			html: `<html><body><pre><code>func main() {}</code></pre></body></html>`,
			contains: []string{
				"func main() {}",
			},
		},
		{
			name: "converts inline code",
			html: `<html><body><p>Use <code>go run</code> to execute.</p></body></html>`,
			contains: []string{
				"`go run`",
			},
		},
		{
			name: "converts lists",
			html: `<html><body><ul><li>Item 1</li><li>Item 2</li></ul></body></html>`,
			contains: []string{
				"Item 1",
				"Item 2",
			},
		},
	}

	p := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Convert(tt.html)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}

			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("expected output to contain %q, got:\n%s", expected, result)
				}
			}
		})
	}
}

func TestProcessor_Extract(t *testing.T) {
	tests := []struct {
		name        string
		docName     string
		contentType string
		raw         []byte
		want        string
		contains    string
	}{
		{
			name:        "plain text passes through",
			docName:     "notes.txt",
			contentType: "text/plain",
			raw:         []byte("  Meeting notes: ship on Friday.\n"),
			want:        "Meeting notes: ship on Friday.",
		},
		{
			name:        "markdown passes through",
			docName:     "README.md",
			contentType: "text/markdown",
			raw:         []byte("# Guide\n\n<b>kept</b> as written"),
			want:        "# Guide\n\n<b>kept</b> as written",
		},
		{
			name:        "html is converted",
			docName:     "page.html",
			contentType: "text/html",
			raw:         []byte(`<html><body><h1>Policy</h1><p>Be kind.</p></body></html>`),
			contains:    "# Policy",
		},
		{
			name:        "html sniffed from content",
			docName:     "download",
			contentType: "application/octet-stream",
			raw:         []byte(`<!DOCTYPE html><html><body><p>Sniffed</p></body></html>`),
			contains:    "Sniffed",
		},
		{
			name:        "binary yields nothing",
			docName:     "scan.pdf",
			contentType: "application/pdf",
			raw:         []byte{0x25, 0x50, 0x44, 0x46, 0xff, 0xfe, 0x00},
			want:        "",
		},
		{
			name:    "empty",
			docName: "empty.txt",
			raw:     nil,
			want:    "",
		},
	}

	p := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Extract(tt.docName, tt.contentType, tt.raw)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if tt.contains != "" {
				if !strings.Contains(got, tt.contains) {
					t.Errorf("expected output to contain %q, got:\n%s", tt.contains, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProcessor_ExtractTitle(t *testing.T) {
	p := New()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"title", `<html><head><title> Page Title </title></head><body><p>Content</p></body></html>`, "Page Title"},
		{"first title wins", `<html><head><title>One</title></head><body><svg><title>Two</title></svg></body></html>`, "One"},
		{"no title", `<html><body><p>No title here</p></body></html>`, ""},
	}

	for _, tt := range tests {
		if got := p.ExtractTitle(tt.html); got != tt.want {
			t.Errorf("%s: ExtractTitle() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestProcessor_Title(t *testing.T) {
	p := New()

	if got := p.Title("a.html", "text/html", `<html><head><title>Home</title></head></html>`); got != "Home" {
		t.Errorf("Title() for html = %q, want %q", got, "Home")
	}
	if got := p.Title("a.md", "text/markdown", "intro\n# Getting Started\n## Install"); got != "Getting Started" {
		t.Errorf("Title() for markdown = %q, want %q", got, "Getting Started")
	}
	if got := p.Title("a.txt", "text/plain", "no heading"); got != "" {
		t.Errorf("Title() for plain text = %q, want empty", got)
	}
}

func TestProcessor_Convert_EmptyInput(t *testing.T) {
	result, err := New().Convert("")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result != "" {
		t.Errorf("Convert(\"\") = %q, want empty", result)
	}
}

func TestProcessor_Convert_Sanitizes(t *testing.T) {
	html := `<html><head><style>p { color: red }</style></head><body>` +
		`<p onclick="steal()">Visible text</p>` +
		`<script>alert("x")</script>` +
		`</body></html>`

	result, err := New().Convert(html)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if !strings.Contains(result, "Visible text") {
		t.Errorf("expected visible text to survive, got:\n%s", result)
	}
	for _, dropped := range []string{"alert", "steal", "color: red"} {
		if strings.Contains(result, dropped) {
			t.Errorf("output should not contain %q, got:\n%s", dropped, result)
		}
	}
}
