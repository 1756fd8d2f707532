package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/brandkit"
	"github.com/gogpu/brandkit/brand"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(func() { brandkit.SetLogger(nil) })
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestUnknownBrand(t *testing.T) {
	stdout, stderr, err := execute(t, "bogus")
	if !errors.Is(err, brand.ErrUnknownBrand) {
		t.Fatalf("err = %v, want ErrUnknownBrand", err)
	}
	if !strings.Contains(stdout+stderr, "Usage:") {
		t.Errorf("usage not shown:\n%s%s", stdout, stderr)
	}
	if !strings.Contains(err.Error(), "nexuspvr, dispatcherpvr or all") {
		t.Errorf("error %q does not list the choices", err)
	}
}

func TestArgCount(t *testing.T) {
	if _, _, err := execute(t); err == nil {
		t.Error("missing selector accepted")
	}
	if _, _, err := execute(t, "nexuspvr", "dispatcherpvr"); err == nil {
		t.Error("two selectors accepted")
	}
}

func TestSelectBrands(t *testing.T) {
	all, err := selectBrands(brand.Default(), "all")
	if err != nil || len(all) != 2 || all[0].Key != "nexuspvr" || all[1].Key != "dispatcherpvr" {
		t.Fatalf("selectBrands(all) = %v, %v", all, err)
	}
	one, err := selectBrands(brand.Default(), "dispatcherpvr")
	if err != nil || len(one) != 1 || one[0].Theme != brand.ThemeCRT {
		t.Fatalf("selectBrands(dispatcherpvr) = %v, %v", one, err)
	}
}

const vhsTable = `
brands:
  - key: tapes
    name: Tapes
    assets_dir: Tapes/Assets.xcassets
    theme: vhs
    gradient_center: [42, 107, 153]
    gradient_edge: [15, 35, 60]
    recording_dot: [233, 30, 99]
    launch_background: [0.059, 0.059, 0.059]
`

func TestEnvironmentSettings(t *testing.T) {
	root := t.TempDir()
	table := filepath.Join(t.TempDir(), "brands.yaml")
	if err := os.WriteFile(table, []byte(vhsTable), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BRANDKIT_ROOT", root)
	t.Setenv("BRANDKIT_BRANDS", table)
	t.Setenv("BRANDKIT_VHS_SOURCE", "art/cassette.png")

	stdout, stderr, err := execute(t, "tapes")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want missing cassette source", err)
	}
	if want := filepath.Join(root, "art", "cassette.png"); !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not mention %s", err, want)
	}
	if strings.Contains(stdout+stderr, "Usage:") {
		t.Error("usage shown for a generation failure")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("BRANDKIT_BRANDS", filepath.Join(t.TempDir(), "missing.yaml"))
	table := filepath.Join(t.TempDir(), "brands.yaml")
	if err := os.WriteFile(table, []byte(vhsTable), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "--brands", table, "--root", t.TempDir(), "nexuspvr")
	if !errors.Is(err, brand.ErrUnknownBrand) {
		t.Errorf("err = %v, want nexuspvr unknown in the flag-selected table", err)
	}
}

func TestGenerateBrand(t *testing.T) {
	if testing.Short() {
		t.Skip("full asset generation in -short mode")
	}
	root := t.TempDir()
	stdout, _, err := execute(t, "--root", root, "nexuspvr")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasSuffix(stdout, "Done.\n") {
		t.Errorf("stdout does not end with Done.:\n%s", stdout)
	}
	if _, err := os.Stat(filepath.Join(root, "NexusPVR", "Assets.xcassets", "AppIcon.appiconset", "AppIcon-1024.png")); err != nil {
		t.Error(err)
	}
}
