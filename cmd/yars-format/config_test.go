package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "[format]\njobs = 2\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := findConfig(nested)
	if err != nil {
		t.Fatalf("findConfig: %v", err)
	}
	if !ok {
		t.Fatal("findConfig did not find the root config")
	}
	if got != want {
		t.Errorf("findConfig = %q, want %q", got, want)
	}
}

func TestFindConfigPrefersNearest(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[format]\njobs = 2\n")
	nested := filepath.Join(root, "sub")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeConfig(t, nested, "[format]\njobs = 9\n")

	got, ok, err := findConfig(nested)
	if err != nil || !ok {
		t.Fatalf("findConfig: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Errorf("findConfig = %q, want nearest %q", got, want)
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[format]\njobs = 4\ncolor = \"off\"\nverbose = true\n")

	cfg, meta, err := loadFileConfig(path)
	if err != nil {
		t.Fatalf("loadFileConfig: %v", err)
	}
	if cfg.Format.Jobs != 4 {
		t.Errorf("Jobs = %d, want 4", cfg.Format.Jobs)
	}
	if cfg.Format.Color != "off" {
		t.Errorf("Color = %q, want off", cfg.Format.Color)
	}
	if !cfg.Format.Verbose {
		t.Error("Verbose = false, want true")
	}
	if !meta.IsDefined("format", "jobs") {
		t.Error("meta does not report [format].jobs as defined")
	}
	if meta.IsDefined("format", "check") {
		t.Error("meta reports undefined key [format].check")
	}
}

func TestLoadFileConfigBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "format = [broken\n")

	_, _, err := loadFileConfig(path)
	if err == nil {
		t.Fatal("loadFileConfig accepted broken TOML")
	}
	if !strings.Contains(err.Error(), "failed to parse TOML") {
		t.Errorf("error %q does not mention TOML parsing", err)
	}
}

func TestApplyConfigFlagsWin(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[format]\njobs = 4\ncolor = \"off\"\n")

	o := newOptions()
	cmd := newRootCmd(o)
	if err := cmd.Flags().Set("jobs", "8"); err != nil {
		t.Fatal(err)
	}

	if err := applyConfigFrom(cmd, o, dir); err != nil {
		t.Fatalf("applyConfigFrom: %v", err)
	}
	if o.jobs != 8 {
		t.Errorf("jobs = %d, config overrode an explicit flag", o.jobs)
	}
	if o.colorMode != "off" {
		t.Errorf("colorMode = %q, want off from config", o.colorMode)
	}
	if o.verbose {
		t.Error("verbose = true, config never set it")
	}
}

func TestApplyConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[format]\njobs = 4\nverbose = true\n")

	o := newOptions()
	cmd := newRootCmd(o)
	if err := applyConfigFrom(cmd, o, dir); err != nil {
		t.Fatalf("applyConfigFrom: %v", err)
	}
	if o.jobs != 4 {
		t.Errorf("jobs = %d, want 4 from config", o.jobs)
	}
	if !o.verbose {
		t.Error("verbose = false, want true from config")
	}
	if o.colorMode != "auto" {
		t.Errorf("colorMode = %q, want untouched default", o.colorMode)
	}
}

func TestApplyConfigRejectsNegativeJobs(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[format]\njobs = -1\n")

	o := newOptions()
	cmd := newRootCmd(o)
	err := applyConfigFrom(cmd, o, dir)
	if err == nil {
		t.Fatal("applyConfigFrom accepted negative jobs")
	}
	if !strings.Contains(err.Error(), "[format].jobs") {
		t.Errorf("error %q does not name the offending key", err)
	}
}
