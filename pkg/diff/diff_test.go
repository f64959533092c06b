package diff

import (
	"strings"
	"testing"
)

func TestLines_Identical(t *testing.T) {
	content := "int main() {\n\treturn 0;\n}\n"

	hunks := Lines(content, content)

	if Changed(hunks) {
		t.Errorf("Lines() identical input reported changes: %+v", hunks)
	}
	if len(hunks) != 1 {
		t.Fatalf("Lines() hunk count = %d, want 1", len(hunks))
	}
	if hunks[0].Op != Unchanged || hunks[0].Text != content {
		t.Errorf("Lines() = %+v, want single unchanged hunk", hunks[0])
	}
}

func TestLines_BothEmpty(t *testing.T) {
	hunks := Lines("", "")

	if len(hunks) != 0 {
		t.Errorf("Lines(\"\", \"\") = %+v, want empty sequence", hunks)
	}
}

func TestLines_EmptyOriginal(t *testing.T) {
	hunks := Lines("", "a\nb\n")

	if len(hunks) != 1 {
		t.Fatalf("Lines() hunk count = %d, want 1", len(hunks))
	}
	if hunks[0].Op != Added || hunks[0].Lines != 2 {
		t.Errorf("Lines() = %+v, want added hunk spanning 2 lines", hunks[0])
	}
}

func TestLines_EmptyReformatted(t *testing.T) {
	hunks := Lines("a\nb\n", "")

	if len(hunks) != 1 {
		t.Fatalf("Lines() hunk count = %d, want 1", len(hunks))
	}
	if hunks[0].Op != Removed || hunks[0].Lines != 2 {
		t.Errorf("Lines() = %+v, want removed hunk spanning 2 lines", hunks[0])
	}
}

func TestLines_Replacement(t *testing.T) {
	original := "\t#include <stdio.h>\n"
	reformatted := "#include <stdio.h>\n"

	hunks := Lines(original, reformatted)

	if len(hunks) != 2 {
		t.Fatalf("Lines() hunk count = %d, want 2: %+v", len(hunks), hunks)
	}
	if hunks[0].Op != Removed || hunks[0].Text != original || hunks[0].Lines != 1 {
		t.Errorf("Lines()[0] = %+v, want removed original line", hunks[0])
	}
	if hunks[1].Op != Added || hunks[1].Text != reformatted || hunks[1].Lines != 1 {
		t.Errorf("Lines()[1] = %+v, want added reformatted line", hunks[1])
	}
}

// Concatenating Unchanged+Removed must reproduce the original and
// Unchanged+Added the reformatted output, for arbitrary content.
func TestLines_RoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		original    string
		reformatted string
	}{
		{
			name:        "indentation change",
			original:    "void f()\n{\n    g();\n}\n",
			reformatted: "void f()\n{\n\tg();\n}\n",
		},
		{
			name:        "trailing newline added",
			original:    "int x = 1;",
			reformatted: "int x = 1;\n",
		},
		{
			name:        "lines removed in the middle",
			original:    "a\n\n\nb\n",
			reformatted: "a\n\nb\n",
		},
		{
			name:        "disjoint edits",
			original:    "one\ntwo\nthree\nfour\nfive\n",
			reformatted: "ONE\ntwo\nthree\nfour\nFIVE\n",
		},
		{
			name:        "no trailing newline on both sides",
			original:    "x\ny",
			reformatted: "x\nz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hunks := Lines(tt.original, tt.reformatted)

			var orig, ref strings.Builder
			for _, h := range hunks {
				if h.Op != Added {
					orig.WriteString(h.Text)
				}
				if h.Op != Removed {
					ref.WriteString(h.Text)
				}
			}

			if orig.String() != tt.original {
				t.Errorf("original side = %q, want %q", orig.String(), tt.original)
			}
			if ref.String() != tt.reformatted {
				t.Errorf("reformatted side = %q, want %q", ref.String(), tt.reformatted)
			}
		})
	}
}

func TestLines_Deterministic(t *testing.T) {
	original := "a\nb\nc\nd\n"
	reformatted := "a\nc\nb\nd\n"

	first := Lines(original, reformatted)
	for i := 0; i < 10; i++ {
		again := Lines(original, reformatted)
		if len(again) != len(first) {
			t.Fatalf("run %d: hunk count %d, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: hunk %d = %+v, want %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"\n", 1},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
		{"\n\n\n", 3},
	}

	for _, tt := range tests {
		if got := countLines(tt.text); got != tt.want {
			t.Errorf("countLines(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
