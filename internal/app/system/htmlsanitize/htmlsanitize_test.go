package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/secassess/assesshub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainNotes(t *testing.T) {
	in := "TLS config reviewed, no weak ciphers found."
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_SafeFormattingPreserved(t *testing.T) {
	tests := []string{
		"<p><strong>Finding:</strong> password policy <em>partially</em> enforced</p>",
		"<ul><li>Rotate keys</li><li>Enable MFA</li></ul>",
		"<ol><li>First</li><li>Second</li></ol>",
		"<blockquote>Quoted from the runbook</blockquote>",
		"<pre><code>curl -v https://internal/</code></pre>",
		"<h2>Evidence</h2>",
		"<u>underline</u> <s>strike</s> <sub>sub</sub> <sup>sup</sup> <mark>mark</mark>",
	}
	for _, in := range tests {
		if got := htmlsanitize.Sanitize(in); got != in {
			t.Errorf("Sanitize(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestSanitize_TablesPreserved(t *testing.T) {
	in := `<table class="evidence"><thead><tr><th>Port</th></tr></thead><tbody><tr><td colspan="2">443</td></tr></tbody></table>`
	got := htmlsanitize.Sanitize(in)
	for _, want := range []string{`class="evidence"`, `colspan="2"`, "<thead>", "<tbody>"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in result, got %q", want, got)
		}
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>ok</p><script>alert('xss')</script>")
	if got != "<p>ok</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesEventHandlers(t *testing.T) {
	in := `<p onclick="alert('xss')">ok</p>`
	got := htmlsanitize.Sanitize(in)
	if strings.Contains(got, "onclick") {
		t.Errorf("expected onclick stripped, got %q", got)
	}
	if !strings.Contains(got, "ok") {
		t.Errorf("expected text preserved, got %q", got)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	got := htmlsanitize.Sanitize(`<a href="javascript:alert('xss')">click</a>`)
	if strings.Contains(got, "javascript:") {
		t.Errorf("expected javascript: href removed, got %q", got)
	}
}

func TestSanitize_SafeLinkGetsNofollow(t *testing.T) {
	got := htmlsanitize.Sanitize(`<a href="https://example.com/report">report</a>`)
	if !strings.Contains(got, "https://example.com/report") {
		t.Errorf("expected safe link preserved, got %q", got)
	}
	if !strings.Contains(got, `rel="nofollow"`) {
		t.Errorf("expected rel=nofollow on link, got %q", got)
	}
}

func TestSanitize_RemovesIframeAndStyle(t *testing.T) {
	got := htmlsanitize.Sanitize(`<style>p{display:none}</style><iframe src="https://evil"></iframe><p>kept</p>`)
	if strings.Contains(got, "iframe") || strings.Contains(got, "<style>") {
		t.Errorf("expected iframe and style removed, got %q", got)
	}
	if !strings.Contains(got, "kept") {
		t.Errorf("expected content preserved, got %q", got)
	}
}

func TestStripTags(t *testing.T) {
	got := htmlsanitize.StripTags("<p><strong>bold</strong> text</p>")
	if got != "bold text" {
		t.Errorf("StripTags = %q, want %q", got, "bold text")
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"no markup here", true},
		{"5 < 10", true},
		{"5 > 3", true},
		{"<p>markup</p>", false},
	}
	for _, tt := range tests {
		if got := htmlsanitize.IsPlainText(tt.in); got != tt.want {
			t.Errorf("IsPlainText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
