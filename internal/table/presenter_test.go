package table

import (
	"bytes"
	"strings"
	"testing"
)

func TestRender_EmptyHeaders(t *testing.T) {
	var buf bytes.Buffer

	if err := Render(&buf, nil, nil); err == nil {
		t.Error("expected error for empty headers with no rows")
	}
	if err := Render(&buf, []string{}, []map[string]string{{"a": "1"}}); err == nil {
		t.Error("expected error for empty headers with rows")
	}
}

func TestRender_ColumnOrderAndValues(t *testing.T) {
	var buf bytes.Buffer

	headers := []string{"ytLink", "title"}
	rows := []map[string]string{
		{"ytLink": "https://x/watch?v=ABCDEFGHIJK", "title": "Song"},
	}

	if err := Render(&buf, headers, rows); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "ytLink") || !strings.Contains(out, "title") {
		t.Errorf("output missing headers:\n%s", out)
	}
	if !strings.Contains(out, "Song") {
		t.Errorf("output missing row value:\n%s", out)
	}
	if strings.Index(out, "ytLink") > strings.Index(out, "title") {
		t.Errorf("columns out of order:\n%s", out)
	}
}

func TestRender_AbsentFieldIsEmptyCell(t *testing.T) {
	var buf bytes.Buffer

	headers := []string{"title", "artist"}
	rows := []map[string]string{{"title": "Song"}}

	if err := Render(&buf, headers, rows); err != nil {
		t.Fatalf("Render failed for row with absent field: %v", err)
	}
	if !strings.Contains(buf.String(), "Song") {
		t.Errorf("output missing present value:\n%s", buf.String())
	}
}
