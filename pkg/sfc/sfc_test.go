package sfc

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/grindlemire/go-sfc/internal/config"
)

var update = flag.Bool("update", false, "rewrite golden files in testdata")

// Each archive holds an input.vue file and either the expected output.js
// or the expected error text. The archive comment is sfc.yaml content.
func TestCompile_Golden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden files found")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			cfg, err := config.Parse(ar.Comment)
			if err != nil {
				t.Fatalf("archive options: %v", err)
			}
			opts, err := cfg.Options()
			if err != nil {
				t.Fatal(err)
			}

			input, ok := section(ar, "input.vue")
			if !ok {
				t.Fatal("archive has no input.vue")
			}

			out, err := Compile("input.vue", input, opts)
			goldenName, got := "output.js", out
			if err != nil {
				goldenName, got = "error", err.Error()+"\n"
			}

			if *update {
				writeSection(ar, goldenName, got)
				if err := os.WriteFile(file, txtar.Format(ar), 0o644); err != nil {
					t.Fatal(err)
				}
				return
			}

			want, ok := section(ar, goldenName)
			if !ok {
				t.Fatalf("archive has no %s section; got:\n%s", goldenName, got)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", goldenName, diff)
			}
		})
	}
}

func section(ar *txtar.Archive, name string) (string, bool) {
	for _, f := range ar.Files {
		if f.Name == name {
			return string(f.Data), true
		}
	}
	return "", false
}

func writeSection(ar *txtar.Archive, name, data string) {
	files := ar.Files[:0]
	for _, f := range ar.Files {
		if f.Name == "output.js" || f.Name == "error" {
			continue
		}
		files = append(files, f)
	}
	ar.Files = append(files, txtar.File{Name: name, Data: []byte(data)})
}

func TestCompile_Deterministic(t *testing.T) {
	src := `<template>
  <ul>
    <li>one</li>
    <li>two</li>
    <li v-for="item in items">{{ item }}</li>
    <Item />
  </ul>
</template>`

	first, err := Compile("list.vue", src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Compile("list.vue", src, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("compile %d differs (-first +again):\n%s", i, diff)
		}
	}
	if !strings.Contains(first, "const _hoisted_2 =") || strings.Contains(first, "_hoisted_3") {
		t.Errorf("expected exactly two hoists:\n%s", first)
	}
}

func TestCompile_Errors(t *testing.T) {
	type tc struct {
		input    string
		opts     Options
		wantErr  error
		wantKind ErrorKind
	}

	tests := map[string]tc{
		"no content": {
			input:    "<style>a{}</style>",
			wantErr:  ErrNoContent,
			wantKind: NoContent,
		},
		"coffee script": {
			input:    `<script lang="coffee">x = 1</script>`,
			wantErr:  ErrUnsupportedLanguage,
			wantKind: UnsupportedLanguage,
		},
		"ts script": {
			input: `<script lang="ts">export default { name: 'A' }</script>`,
		},
		"empty template": {
			input:    "<template>\n</template>",
			wantErr:  ErrEmptyTemplate,
			wantKind: EmptyTemplate,
		},
		"invalid expression": {
			input:    "<template><p>{{ a + }}</p></template>",
			wantErr:  ErrInvalidExpression,
			wantKind: InvalidExpression,
		},
		"markup error": {
			input:    "<template><p></div></template>",
			wantErr:  ErrParse,
			wantKind: ParseError,
		},
		"strict duplicate": {
			input:    "<script>let a</script><script>let b</script>",
			opts:     Options{StrictBlocks: true},
			wantErr:  ErrDuplicateBlock,
			wantKind: DuplicateBlock,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := Compile("test.vue", tt.input, tt.opts)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var serr *Error
			if !errors.As(err, &serr) {
				t.Fatalf("error is %T, want *Error", err)
			}
			if serr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", serr.Kind, tt.wantKind)
			}
			if serr.Pos.File != "test.vue" {
				t.Errorf("Pos.File = %q, want test.vue", serr.Pos.File)
			}
			if out != "" {
				t.Errorf("expected no output on error, got:\n%s", out)
			}
		})
	}
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Hello.vue")
	if err := os.WriteFile(path, []byte("<template><p>hi</p></template>\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := CompileFile(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `_createElementBlock("p", null, [`) {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := CompileFile(filepath.Join(dir, "Missing.vue"), Options{}); err == nil {
		t.Error("expected error for missing file")
	}
}
