package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulysse71/milky-way/internal/config"
)

const testCatalog = `# id,hip,hd,hr,gl,bf,proper,ra,dec,dist,mag,absmag,spect
0,,,,,,Sol,0,0,0,-26.7,4.85,G2V
1,,,,,,,6.75,-16.7,2.64,-1.44,1.45,A1V
2,,,,,,,14.66,-60.8,1.35,-0.01,4.38,G2V
3,,,,,,,5.92,7.4,152,0.45,-5.14,M1
`

// setup writes a catalog and a matching config file and returns the config path.
func setup(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	catPath := filepath.Join(dir, "hyg.csv")
	if err := os.WriteFile(catPath, []byte(testCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Catalog = catPath
	cfg.LogLevel = "warn"
	cfgPath := filepath.Join(dir, "milkyway.yaml")
	if err := config.Save(cfgPath, cfg); err != nil {
		t.Fatal(err)
	}
	return cfgPath
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestProjectCmd(t *testing.T) {
	cfg := setup(t)

	out, _, err := run(t, "project", "--config", cfg)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	for _, l := range lines {
		if n := len(strings.Fields(l)); n != 3 {
			t.Errorf("line %q has %d fields, want 3", l, n)
		}
	}
}

func TestProjectCmd_CutoffFlag(t *testing.T) {
	cfg := setup(t)

	// Every star sits about 8.2 kpc from the galactic center.
	out, _, err := run(t, "project", "--config", cfg, "--cutoff", "100")
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if out != "" {
		t.Errorf("expected no stars within 100 pc, got:\n%s", out)
	}
}

func TestProjectCmd_Metrics(t *testing.T) {
	cfg := setup(t)
	metricsPath := filepath.Join(t.TempDir(), "milkyway.prom")

	if _, _, err := run(t, "project", "--config", cfg, "--metrics-file", metricsPath); err != nil {
		t.Fatalf("project: %v", err)
	}
	data, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"milkyway_catalog_rows_total 4",
		"milkyway_projected_points_total 4",
		"milkyway_frame_skew",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics missing %q:\n%s", want, data)
		}
	}
}

func TestDumpCmd(t *testing.T) {
	cfg := setup(t)

	out, _, err := run(t, "dump", "--config", cfg)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if got := strings.Count(out, "ra "); got != 4 {
		t.Errorf("dump printed %d stars, want 4:\n%s", got, out)
	}

	out, _, err = run(t, "dump", "--config", cfg, "--xy")
	if err != nil {
		t.Fatalf("dump --xy: %v", err)
	}
	if got := len(strings.Split(strings.TrimSpace(out), "\n")); got != 4 {
		t.Errorf("dump --xy printed %d lines, want 4", got)
	}
}

func TestStatsCmd(t *testing.T) {
	cfg := setup(t)

	out, _, err := run(t, "stats", "--config", cfg)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"4 stars", "u.w", "center l="} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestSnapshotCmd(t *testing.T) {
	cfg := setup(t)
	out := filepath.Join(t.TempDir(), "sky.png")

	_, _, err := run(t, "snapshot", "--config", cfg, "-o", out, "--width", "64", "--height", "48")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("size = %v, want 64x48", b)
	}
}

func TestSnapshotCmd_BadFlags(t *testing.T) {
	cfg := setup(t)

	tests := []struct {
		name string
		args []string
	}{
		{"format", []string{"-o", filepath.Join(t.TempDir(), "sky.bmp")}},
		{"eye", []string{"-o", filepath.Join(t.TempDir(), "sky.png"), "--eye", "1,2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"snapshot", "--config", cfg}, tt.args...)
			if _, _, err := run(t, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMissingCatalog(t *testing.T) {
	cfg := setup(t)

	_, _, err := run(t, "project", "--config", cfg, "--catalog", filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil || !strings.Contains(err.Error(), "open catalog") {
		t.Errorf("err = %v, want open catalog error", err)
	}
}

func TestConfigInit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "sub", "milkyway.yaml")

	out, _, err := run(t, "config", "init", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output = %q", out)
	}
	if _, _, err := run(t, "config", "init", path); err == nil {
		t.Error("second init without --force succeeded")
	}
	if _, _, err := run(t, "config", "init", "--force", path); err != nil {
		t.Errorf("init --force: %v", err)
	}

	out, _, err = run(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "cutoff: 50000") {
		t.Errorf("show output missing cutoff:\n%s", out)
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "milkyway v") {
		t.Errorf("version output = %q", out)
	}
}
