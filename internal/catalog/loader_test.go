package catalog

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/ulysse71/milky-way/internal/spectrum"
)

const sampleRow = "1,2,3,4,5,6,7,10.5,-20.3,50.0,0,4.2,G5,extra\n"

func TestRead_SingleRow(t *testing.T) {
	cat, err := Read(strings.NewReader("# comment\n" + sampleRow))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cat.Len())
	}

	s := cat.Stars[0]
	if !near(s.RA, 10.5*math.Pi/12, 1e-12) {
		t.Errorf("RA = %v, want %v", s.RA, 10.5*math.Pi/12)
	}
	if !near(s.Dec, -20.3*math.Pi/180, 1e-12) {
		t.Errorf("Dec = %v, want %v", s.Dec, -20.3*math.Pi/180)
	}
	if s.Dist != 50 {
		t.Errorf("Dist = %v, want 50", s.Dist)
	}
	if s.AbsMag != 4.2 {
		t.Errorf("AbsMag = %v, want 4.2", s.AbsMag)
	}
	if s.Class != spectrum.G {
		t.Errorf("Class = %v, want G", s.Class)
	}
	if cat.Stats != (Stats{Rows: 1, Skipped: 1}) {
		t.Errorf("Stats = %+v", cat.Stats)
	}
}

func TestRead_Permissive(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Star
	}{
		{
			name: "bad numbers read as zero",
			line: "a,b,c,d,e,f,g,xx,yy,zz,0,mag,B1",
			want: Star{Class: spectrum.B},
		},
		{
			name: "truncated row",
			line: "1,2,3,4,5,6,7,0,0,12.5",
			want: Star{Dist: 12.5, Class: spectrum.Unknown},
		},
		{
			name: "padded fields",
			line: "1,2,3,4,5,6,7, 0 , 0 , 3 ,x, -1.5 , M2 ",
			want: Star{Dist: 3, AbsMag: -1.5, Class: spectrum.M},
		},
		{
			name: "crlf line ending",
			line: "1,2,3,4,5,6,7,0,0,8,0,2,A0\r",
			want: Star{Dist: 8, AbsMag: 2, Class: spectrum.A},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := Read(strings.NewReader(tt.line + "\n"))
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if cat.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", cat.Len())
			}
			if got := cat.Stars[0]; got != tt.want {
				t.Errorf("star = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRead_SkipsBlankAndComments(t *testing.T) {
	input := "#header\n\n" + sampleRow + "# another\n\n" + sampleRow + sampleRow
	cat, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cat.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cat.Len())
	}
	if cat.Stats.Skipped != 4 {
		t.Errorf("Skipped = %d, want 4", cat.Stats.Skipped)
	}
}

func TestRead_Empty(t *testing.T) {
	cat, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cat.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cat.Len())
	}
}

func TestRead_ReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Read(iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Errorf("Read error = %v, want %v", err, boom)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyg.csv")
	data := "# id,...\n" + sampleRow + "1,2,3,4,5,6,7,0,90,5,0,1,O5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}
	if cat.Stars[1].Class != spectrum.O {
		t.Errorf("second star class = %v, want O", cat.Stars[1].Class)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("Load of missing file succeeded")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestWriteDump(t *testing.T) {
	cat := &Catalog{Stars: []Star{{RA: 1, Dec: -0.5, Dist: 10}}}

	var buf bytes.Buffer
	if err := WriteDump(&buf, cat); err != nil {
		t.Fatal(err)
	}
	want := "ra            1 dec         -0.5 dist           10\n"
	if buf.String() != want {
		t.Errorf("WriteDump = %q, want %q", buf.String(), want)
	}
}

func TestWriteXY(t *testing.T) {
	cat := &Catalog{Stars: []Star{
		{RA: 0, Dec: 0, Dist: 2},
		{RA: 0, Dec: math.Pi / 2, Dist: 3},
	}}

	var buf bytes.Buffer
	if err := WriteXY(&buf, cat); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "2 0" {
		t.Errorf("line 0 = %q, want %q", lines[0], "2 0")
	}
	if !strings.HasSuffix(lines[1], " 3") {
		t.Errorf("line 1 = %q, want y = 3", lines[1])
	}
}
