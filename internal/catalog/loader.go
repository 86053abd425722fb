package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/mmap"
)

// Column layout of a HYG catalog row. Columns not listed are ignored.
const (
	colRA      = 7
	colDec     = 8
	colDist    = 9
	colAbsMag  = 11
	colSpectra = 12
)

const maxLineSize = 1 << 20

// Load memory-maps the catalog file at path and reads it.
func Load(path string) (*Catalog, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer r.Close()

	cat, err := Read(io.NewSectionReader(r, 0, int64(r.Len())))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return cat, nil
}

// Read parses catalog rows from r. Empty lines and lines starting with '#' are
// skipped. Numeric fields that are missing or fail to parse read as zero and a
// missing spectral code gives an unknown class; only I/O errors are returned.
func Read(r io.Reader) (*Catalog, error) {
	cat := &Catalog{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || line[0] == '#' {
			cat.Stats.Skipped++
			continue
		}
		cat.Stars = append(cat.Stars, parseRow(line))
		cat.Stats.Rows++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cat, nil
}

func parseRow(line string) Star {
	fields := strings.Split(line, ",")
	return NewStar(
		floatField(fields, colRA),
		floatField(fields, colDec),
		floatField(fields, colDist),
		floatField(fields, colAbsMag),
		field(fields, colSpectra),
	)
}

func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func floatField(fields []string, i int) float64 {
	v, err := strconv.ParseFloat(field(fields, i), 64)
	if err != nil {
		return 0
	}
	return v
}
