package views

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_ParsesAllPages(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, page := range []string{"main", "about", "contact", "sign_up", "login", "dashboard", "post_job", "job_detail", "view_jobs", "error"} {
		if !r.Has(page) {
			t.Errorf("page %s not loaded", page)
		}
	}
	if r.Has("layout") {
		t.Errorf("layout must not be a page")
	}
}

func TestRender_EscapesValues(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	err = r.Render(&buf, "dashboard", map[string]any{
		"User":     "alice",
		"Username": "<script>alice</script>",
		"Flashes":  []string{"Login successful!"},
		"Jobs":     nil,
	}, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "<script>alice") {
		t.Fatalf("username was not escaped")
	}
	if !strings.Contains(out, "Login successful!") {
		t.Fatalf("flash missing from output")
	}
	if !strings.Contains(out, "not posted any jobs") {
		t.Fatalf("empty state missing")
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := r.Render(&bytes.Buffer{}, "missing", nil, nil); err == nil {
		t.Fatalf("expected error for unknown page")
	}
}
