package fileset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestPattern(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		want       string
		wantErr    bool
	}{
		{"single", []string{"c"}, "**/*.c", false},
		{"multiple", []string{"c", "h"}, "**/*.{c,h}", false},
		{"leading dot stripped", []string{".cpp", "hpp"}, "**/*.{cpp,hpp}", false},
		{"empty list", nil, "", true},
		{"blank extension", []string{"c", " "}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pattern(tt.extensions)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Pattern() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Pattern() = %q, want %q", got, tt.want)
			}
		})
	}
}

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("content\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.c")
	writeFile(t, root, "util.h")
	writeFile(t, root, "sub/dir/deep.c")
	writeFile(t, root, "README.md")
	// A directory whose name ends like a matching file must be excluded.
	if err := os.MkdirAll(filepath.Join(root, "weird.c"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Match(root, []string{"c", "h"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	want := []string{"main.c", "sub/dir/deep.c", "util.h"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_SingleExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go")
	writeFile(t, root, "b.c")

	got, err := Match(root, []string{"go"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	want := []string{"a.go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_CaseSensitive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "upper.C")
	writeFile(t, root, "lower.c")

	got, err := Match(root, []string{"c"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	want := []string{"lower.c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_NoMatches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "only.txt")

	got, err := Match(root, []string{"c"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Match() = %v, want empty", got)
	}
}
