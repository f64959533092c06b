package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/codestyle-ci/style-runner/pkg/lint"
)

func sampleViolation() lint.Violation {
	return lint.Violation{
		Path:      "src/main.c",
		FirstLine: 3,
		LastLine:  4,
		Message:   "- →\told\n***\n+ new",
	}
}

func TestFailed(t *testing.T) {
	clean := LinterResult{Name: "gofmt", Result: &lint.Result{Success: true}}
	warnOnly := LinterResult{Name: "gofmt", Result: &lint.Result{Warning: []lint.Violation{sampleViolation()}}}
	withError := LinterResult{Name: "clang-format", Result: &lint.Result{Error: []lint.Violation{sampleViolation()}}}
	broken := LinterResult{Name: "clang-format", Err: errors.New("clang-format not found")}
	failure := LinterResult{Name: "gofmt", Result: &lint.Result{Failures: []string{"one file crashed"}}}

	tests := []struct {
		name    string
		results []LinterResult
		strict  bool
		want    bool
	}{
		{"all clean", []LinterResult{clean}, false, false},
		{"warnings pass by default", []LinterResult{clean, warnOnly}, false, false},
		{"warnings fail strict", []LinterResult{warnOnly}, true, true},
		{"errors always fail", []LinterResult{withError}, false, true},
		{"setup failure fails", []LinterResult{broken}, false, true},
		{"exec failure fails", []LinterResult{failure}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Failed(tt.results, tt.strict); got != tt.want {
				t.Errorf("Failed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteSummary(t *testing.T) {
	var sb strings.Builder
	WriteSummary(&sb, []LinterResult{
		{Name: "clang-format", Result: &lint.Result{Error: []lint.Violation{sampleViolation()}}},
		{Name: "gofmt", Result: &lint.Result{Success: true}},
	})
	out := sb.String()

	if !strings.Contains(out, "clang-format: 1 error(s), 0 warning(s)") {
		t.Errorf("summary missing count line:\n%s", out)
	}
	if !strings.Contains(out, "error src/main.c:3-4") {
		t.Errorf("summary missing violation location:\n%s", out)
	}
	if !strings.Contains(out, "gofmt: clean") {
		t.Errorf("summary missing clean linter:\n%s", out)
	}
}

func TestWriteSummary_SingleLineRange(t *testing.T) {
	v := sampleViolation()
	v.LastLine = v.FirstLine
	var sb strings.Builder
	WriteSummary(&sb, []LinterResult{
		{Name: "gofmt", Result: &lint.Result{Warning: []lint.Violation{v}}},
	})

	if !strings.Contains(sb.String(), "src/main.c:3\n") {
		t.Errorf("single-line violation rendered wrong:\n%s", sb.String())
	}
}

func TestWriteActionsAnnotations(t *testing.T) {
	var sb strings.Builder
	WriteActionsAnnotations(&sb, []LinterResult{
		{Name: "clang-format", Result: &lint.Result{Error: []lint.Violation{sampleViolation()}}},
	})
	out := sb.String()

	if !strings.HasPrefix(out, "::error file=src/main.c,line=3,endLine=4,title=clang-format::") {
		t.Errorf("annotation command malformed:\n%s", out)
	}
	// Line breaks inside the message must be escaped, never literal.
	if strings.Count(out, "\n") != 1 {
		t.Errorf("annotation spans multiple lines:\n%q", out)
	}
	if !strings.Contains(out, "%0A") {
		t.Errorf("message line breaks not escaped:\n%q", out)
	}
}

func TestEscapeData(t *testing.T) {
	got := escapeData("50% off\r\ndone")
	want := "50%25 off%0D%0Adone"
	if got != want {
		t.Errorf("escapeData() = %q, want %q", got, want)
	}
}
