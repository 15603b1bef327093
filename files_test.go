package yars

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestFormatFileRewrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "b: 2\na: 1\n")

	res, err := FormatFile(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Changed {
		t.Errorf("Changed = false, want true")
	}
	if res.LinesChanged != 2 {
		t.Errorf("LinesChanged = %d, want 2", res.LinesChanged)
	}
	if got := readFile(t, path); got != "a: 1\nb: 2\n" {
		t.Errorf("file content %q", got)
	}

	// A second pass is a no-op.
	res, err = FormatFile(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Changed {
		t.Errorf("second pass reported a change")
	}
}

func TestFormatFileCheckOnly(t *testing.T) {
	dir := t.TempDir()
	in := "b: 2\na: 1\n"
	path := writeFile(t, dir, "config.yaml", in)

	res, err := FormatFile(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Changed || res.LinesChanged != 2 {
		t.Errorf("res = %+v", res)
	}
	if got := readFile(t, path); got != in {
		t.Errorf("check mode modified the file: %q", got)
	}
}

func TestFormatFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	_, err := FormatFile(path, false)
	if !errors.Is(err, ErrMissingFile) {
		t.Fatalf("err = %v, want ErrMissingFile", err)
	}
	if want := "File not found: " + path; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestFormatFileBadContent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.yaml", "a: [1, 2\n")
	_, err := FormatFile(path, false)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("err = %v, want ErrFormat", err)
	}

	listPath := writeFile(t, dir, "list.yaml", "- a\n- b\n")
	if _, err := FormatFile(listPath, false); !errors.Is(err, ErrTopLevelList) {
		t.Errorf("err = %v, want ErrTopLevelList", err)
	}
}

func TestFormatFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "one.yaml", "b: 2\na: 1\n"),
		writeFile(t, dir, "two.yaml", "a: 1\n"),
		writeFile(t, dir, "bad.yaml", "a: [oops\n"),
		filepath.Join(dir, "absent.yaml"),
	}
	results := FormatFiles(context.Background(), paths, Options{Jobs: 2})
	if len(results) != len(paths) {
		t.Fatalf("%d results for %d paths", len(results), len(paths))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("result %d out of order: %s", i, res.Path)
		}
	}
	if !results[0].Changed || results[0].Err != nil {
		t.Errorf("one.yaml: %+v", results[0])
	}
	if results[1].Changed || results[1].Err != nil {
		t.Errorf("two.yaml: %+v", results[1])
	}
	if results[2].Err == nil || !errors.Is(results[2].Err, ErrFormat) {
		t.Errorf("bad.yaml: %+v", results[2])
	}
	if !errors.Is(results[3].Err, ErrMissingFile) {
		t.Errorf("absent.yaml: %+v", results[3])
	}
	if got := readFile(t, paths[0]); got != "a: 1\nb: 2\n" {
		t.Errorf("one.yaml content %q", got)
	}
}

func TestFormatFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "one.yaml", "b: 2\na: 1\n"),
		writeFile(t, dir, "two.yaml", "d: 4\nc: 3\n"),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := FormatFiles(ctx, paths, Options{})
	for i, res := range results {
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("result %d: err = %v, want context.Canceled", i, res.Err)
		}
	}
	if got := readFile(t, paths[0]); got != "b: 2\na: 1\n" {
		t.Errorf("cancelled run modified a file: %q", got)
	}
}
