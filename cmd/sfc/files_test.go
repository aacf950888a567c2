package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"App.vue":                   "",
		"main.js":                   "",
		"components/Button.vue":     "",
		"components/deep/Icon.vue":  "",
		"node_modules/lib/Lib.vue":  "",
		".cache/Old.vue":            "",
		"components/deep/readme.md": "",
	})
	join := func(parts ...string) string { return filepath.Join(append([]string{root}, parts...)...) }

	type tc struct {
		paths   []string
		want    []string
		wantErr bool
	}

	tests := map[string]tc{
		"single file": {
			paths: []string{join("App.vue")},
			want:  []string{join("App.vue")},
		},
		"non vue file ignored": {
			paths: []string{join("main.js")},
			want:  nil,
		},
		"directory is not recursive": {
			paths: []string{join("components")},
			want:  []string{join("components", "Button.vue")},
		},
		"recursive pattern": {
			paths: []string{root + "/..."},
			want: []string{
				join("App.vue"),
				join("components", "Button.vue"),
				join("components", "deep", "Icon.vue"),
			},
		},
		"duplicates removed": {
			paths: []string{join("App.vue"), join("App.vue")},
			want:  []string{join("App.vue")},
		},
		"missing path": {
			paths:   []string{join("Missing.vue")},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := collectFiles(tt.paths)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("files mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
