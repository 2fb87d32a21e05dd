package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mechkit/fourbar/internal/domain"
	"github.com/mechkit/fourbar/internal/usecase"
)

func TestLinkFlagsValidation(t *testing.T) {
	lf := &linkFlags{frame: 200, input: 80, coupler: 180, output: 140}
	if _, err := lf.linkSet(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lf = &linkFlags{frame: 0, input: 80, coupler: 180, output: 140}
	_, err := lf.linkSet()
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("got %v, want KindInvalidInput", err)
	}
}

func TestPrintClass_Text(t *testing.T) {
	cls := domain.Classify(domain.LinkSet{Frame: 200, Input: 80, Coupler: 180, Output: 140})

	var buf bytes.Buffer
	if err := printClass(&buf, cls, formatText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Crank-Rocker", "shortest: input", "longest:  frame", "S+L:", "P+Q:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintClass_JSON(t *testing.T) {
	cls := domain.Classify(domain.LinkSet{Frame: 200, Input: 80, Coupler: 180, Output: 140})

	var buf bytes.Buffer
	if err := printClass(&buf, cls, formatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["category"] != "crank_rocker" {
		t.Errorf("category = %v, want crank_rocker", payload["category"])
	}
	if payload["shortest"] != "input" {
		t.Errorf("shortest = %v, want input", payload["shortest"])
	}
	if payload["s"] != 80.0 {
		t.Errorf("s = %v, want 80", payload["s"])
	}
}

func TestPrintClass_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := printClass(&buf, domain.MechanismClass{}, "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestPrintFrame_InvalidTextOmitsC(t *testing.T) {
	links := domain.LinkSet{Frame: 200, Input: 50, Coupler: 60, Output: 40}
	f := domain.Solve(links, 180)

	var buf bytes.Buffer
	if err := printFrame(&buf, 180, f, formatText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "no assembly") {
		t.Errorf("expected no-assembly notice:\n%s", out)
	}
	if strings.Contains(out, "C:") {
		t.Errorf("invalid frame must not print C:\n%s", out)
	}
}

func TestPrintFrame_InvalidJSONDropsC(t *testing.T) {
	links := domain.LinkSet{Frame: 200, Input: 50, Coupler: 60, Output: 40}
	f := domain.Solve(links, 180)

	var buf bytes.Buffer
	if err := printFrame(&buf, 180, f, formatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["valid"] != false {
		t.Errorf("valid = %v, want false", payload["valid"])
	}
	if _, present := payload["c"]; present {
		t.Errorf("c should be absent for invalid frames: %v", payload)
	}
}

func TestPrintSweep_TextArcs(t *testing.T) {
	links := domain.LinkSet{Frame: 120, Input: 110, Coupler: 105, Output: 100}
	res, err := usecase.Sweep(context.Background(), links, 0, 360, 1)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}

	var buf bytes.Buffer
	if err := printSweep(&buf, res, formatText, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "invalid arcs:") {
		t.Errorf("expected invalid arcs section:\n%s", buf.String())
	}
}

func TestClassifyCommand_JSON(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{
		"classify",
		"--frame", "100", "--input", "100", "--coupler", "100", "--output", "100",
		"--format", "json",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["category"] != "change_point" {
		t.Errorf("category = %v, want change_point", payload["category"])
	}
}

func TestSolveCommand_RejectsBadLengths(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"solve", "--frame", "-5"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for negative length")
	}
}
