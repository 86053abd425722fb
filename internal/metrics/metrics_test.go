package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ulysse71/milky-way/internal/catalog"
)

// sample returns the value of the named counter or gauge series whose labels
// include the given name/value pairs.
func sample(t *testing.T, m *Collector, name string, labels ...string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	series:
		for _, metric := range mf.GetMetric() {
			have := map[string]string{}
			for _, lp := range metric.GetLabel() {
				have[lp.GetName()] = lp.GetValue()
			}
			for i := 0; i+1 < len(labels); i += 2 {
				if have[labels[i]] != labels[i+1] {
					continue series
				}
			}
			if c := metric.GetCounter(); c != nil {
				return c.GetValue()
			}
			return metric.GetGauge().GetValue()
		}
	}
	t.Fatalf("no series %s%v", name, labels)
	return 0
}

func TestRecordCatalog(t *testing.T) {
	m := NewCollector()
	cat := &catalog.Catalog{
		Stars: []catalog.Star{
			catalog.NewStar(0, 0, 1, 0, "G2"),
			catalog.NewStar(0, 0, 1, 0, "G8"),
			catalog.NewStar(0, 0, 1, 0, "M1"),
			catalog.NewStar(0, 0, 1, 0, ""),
		},
		Stats: catalog.Stats{Rows: 4, Skipped: 2},
	}

	m.RecordCatalog(cat)

	if got := sample(t, m, "milkyway_catalog_rows_total"); got != 4 {
		t.Errorf("rows = %v, want 4", got)
	}
	if got := sample(t, m, "milkyway_catalog_skipped_total"); got != 2 {
		t.Errorf("skipped = %v, want 2", got)
	}
	tests := map[string]float64{"G": 2, "M": 1, "?": 1}
	for class, want := range tests {
		if got := sample(t, m, "milkyway_catalog_stars_total", "class", class); got != want {
			t.Errorf("class %s = %v, want %v", class, got, want)
		}
	}
}

func TestRecordProjection(t *testing.T) {
	m := NewCollector()
	m.RecordProjection(100, 5*time.Millisecond)
	m.RecordProjection(20, time.Millisecond)
	m.SetFrameSkew(0.0008)

	if got := sample(t, m, "milkyway_projected_points_total"); got != 120 {
		t.Errorf("points = %v, want 120", got)
	}
	if got := sample(t, m, "milkyway_frame_skew"); got != 0.0008 {
		t.Errorf("skew = %v, want 0.0008", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	m := NewCollector()
	m.RecordProjection(7, time.Millisecond)

	path := filepath.Join(t.TempDir(), "milkyway.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"milkyway_projected_points_total 7",
		"# TYPE milkyway_frame_skew gauge",
		"milkyway_projection_duration_seconds_count 1",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile missing %q", want)
		}
	}
}

func TestWriteTextfile_BadPath(t *testing.T) {
	m := NewCollector()
	if err := m.WriteTextfile(filepath.Join(t.TempDir(), "no", "such", "dir", "x.prom")); err == nil {
		t.Error("WriteTextfile to missing directory succeeded")
	}
}
