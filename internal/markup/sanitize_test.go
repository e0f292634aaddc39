package markup

import (
	"strings"
	"testing"
)

func TestSanitizeKeepsAllowedTags(t *testing.T) {
	in := "<p>Use <strong>context.Context</strong> with <pre><code>select {}</code></pre></p>"
	out, err := Sanitize(in)
	if err != nil {
		t.Fatalf("Sanitize: %v", err)
	}
	for _, want := range []string{"<p>", "<strong>", "<pre>", "<code>", "select {}"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestSanitizeRemovesScriptWithContent(t *testing.T) {
	in := `<p>Before</p><script>alert("xss")</script><p>After</p>`
	out, err := Sanitize(in)
	if err != nil {
		t.Fatalf("Sanitize: %v", err)
	}
	if strings.Contains(out, "script") || strings.Contains(out, "alert") {
		t.Errorf("script content survived: %q", out)
	}
	if !strings.Contains(out, "Before") || !strings.Contains(out, "After") {
		t.Errorf("surrounding text lost: %q", out)
	}
}

func TestSanitizeUnwrapsDisallowedTags(t *testing.T) {
	in := `<div><p>Kept text</p></div><span>inline</span>`
	out, err := Sanitize(in)
	if err != nil {
		t.Fatalf("Sanitize: %v", err)
	}
	if strings.Contains(out, "<div>") || strings.Contains(out, "<span>") {
		t.Errorf("disallowed tags survived: %q", out)
	}
	if !strings.Contains(out, "<p>Kept text</p>") || !strings.Contains(out, "inline") {
		t.Errorf("children of unwrapped tags lost: %q", out)
	}
}

func TestSanitizeStripsAttributes(t *testing.T) {
	in := `<p class="x" onclick="evil()">Text</p>`
	out, err := Sanitize(in)
	if err != nil {
		t.Fatalf("Sanitize: %v", err)
	}
	if strings.Contains(out, "onclick") || strings.Contains(out, "class") {
		t.Errorf("attributes survived: %q", out)
	}
	if !strings.Contains(out, "<p>Text</p>") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSanitizeNestedDisallowed(t *testing.T) {
	in := `<ul><li><a href="http://x">link text</a></li></ul>`
	out, err := Sanitize(in)
	if err != nil {
		t.Fatalf("Sanitize: %v", err)
	}
	if strings.Contains(out, "<a") || strings.Contains(out, "href") {
		t.Errorf("anchor survived: %q", out)
	}
	if !strings.Contains(out, "<li>link text</li>") {
		t.Errorf("list structure lost: %q", out)
	}
}

func TestSanitizePlainText(t *testing.T) {
	out, err := Sanitize("no markup at all")
	if err != nil {
		t.Fatalf("Sanitize: %v", err)
	}
	if out != "no markup at all" {
		t.Errorf("got %q", out)
	}
}
