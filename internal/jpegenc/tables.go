package jpegenc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yegorkir/jpegcli/internal/switches"
)

// ReadQuantTables loads quantization tables from a text file: whitespace
// separated integers, '#' starts a comment that runs to the end of the line.
// Each table is 64 values in natural order; the first goes to slot 0, the
// next to slot 1, and so on.
func (s *Settings) ReadQuantTables(path string, scaleFactor int, forceBaseline bool) error {
	f, err := os.Open(path)
	if err != nil {
		return switches.IOError("open", path, err)
	}
	defer f.Close()

	tables, err := ParseQuantTables(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for slot, t := range tables {
		s.AddQuantTable(slot, t, scaleFactor, forceBaseline)
	}
	s.CustomTables = true
	return nil
}

// ParseQuantTables reads up to NumQuantTables tables from r.
func ParseQuantTables(r io.Reader) ([][64]int, error) {
	var values []int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.Fields(line) {
			v, err := strconv.ParseUint(field, 10, 31)
			if err != nil {
				return nil, fmt.Errorf("%w: non-numeric data %q", switches.ErrInvalidValue, field)
			}
			values = append(values, int(v))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, switches.IOError("read", "quantization tables", err)
	}

	if len(values)%64 != 0 {
		return nil, fmt.Errorf("%w: %w", switches.ErrInvalidValue, ErrBadTableData)
	}
	n := len(values) / 64
	if n > NumQuantTables {
		return nil, fmt.Errorf("%w: %w", switches.ErrInvalidValue, ErrTooManyTables)
	}
	tables := make([][64]int, n)
	for i := range tables {
		copy(tables[i][:], values[i*64:(i+1)*64])
	}
	return tables, nil
}

// SetQuantSlots parses "N[,N]..." and assigns quantization slots to the
// components in order. Components past the end of the list reuse the last
// slot given.
func (s *Settings) SetQuantSlots(arg string) error {
	parts := strings.Split(arg, ",")
	if len(parts) > MaxComponents {
		return fmt.Errorf("%w: qslots %q names more than %d components", switches.ErrInvalidValue, arg, MaxComponents)
	}
	val := 0
	for ci := 0; ci < MaxComponents; ci++ {
		if ci < len(parts) {
			v, err := strconv.Atoi(parts[ci])
			if err != nil {
				return fmt.Errorf("%w: qslots %q", switches.ErrInvalidValue, arg)
			}
			if v < 0 || v >= NumQuantTables {
				return fmt.Errorf("%w: JPEG quantization tables are numbered 0..%d", switches.ErrInvalidValue, NumQuantTables-1)
			}
			val = v
		}
		if ci < len(s.Components) {
			s.Components[ci].QuantSlot = val
		}
	}
	return nil
}

// SetSampleFactors parses "HxV[,HxV]..." and assigns sampling factors to the
// components in order. Components past the end of the list get 1x1.
func (s *Settings) SetSampleFactors(arg string) error {
	parts := strings.Split(arg, ",")
	if len(parts) > MaxComponents {
		return fmt.Errorf("%w: sample %q names more than %d components", switches.ErrInvalidValue, arg, MaxComponents)
	}
	for ci := range s.Components {
		h, v := 1, 1
		if ci < len(parts) {
			var err error
			h, v, err = parseFactor(parts[ci])
			if err != nil {
				return fmt.Errorf("%w: sample %q: %v", switches.ErrInvalidValue, arg, err)
			}
		}
		s.Components[ci].H = h
		s.Components[ci].V = v
	}
	return nil
}

func parseFactor(spec string) (int, int, error) {
	hs, vs, ok := strings.Cut(strings.ToLower(spec), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not HxV", spec)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not HxV", spec)
	}
	v, err := strconv.Atoi(vs)
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not HxV", spec)
	}
	if h < 1 || h > MaxSampFactor || v < 1 || v > MaxSampFactor {
		return 0, 0, fmt.Errorf("JPEG sampling factors must be 1..%d", MaxSampFactor)
	}
	return h, v, nil
}
