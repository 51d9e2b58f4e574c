package service

import (
	"bytes"
	"testing"
)

func TestPDFReportRenderer(t *testing.T) {
	renderer := NewPDFReportRenderer()

	payload, filename, err := renderer.Render("alice", "3f1b", "CBC", "All values within reference range")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if filename != "alice_3f1b_CBC.pdf" {
		t.Errorf("filename = %q, want %q", filename, "alice_3f1b_CBC.pdf")
	}
	if !bytes.HasPrefix(payload, []byte("%PDF")) {
		t.Errorf("payload does not start with %%PDF header")
	}
}

func TestPDFReportRendererDeterministic(t *testing.T) {
	renderer := NewPDFReportRenderer()

	first, _, err := renderer.Render("alice", "3f1b", "CBC", "detail")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, _, err := renderer.Render("alice", "3f1b", "CBC", "detail")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("expected identical output for identical inputs")
	}
}
