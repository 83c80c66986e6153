package switches

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type testRecord struct {
	Common
	Level int
	Name  string
}

func testTable() Table[testRecord] {
	return Table[testRecord]{
		{Names: []string{"debug", "verbose"}, MinLen: 1, Independent: true, Banner: true,
			Apply: func(r *testRecord, _ string) error { r.TraceLevel++; return nil }},
		{Names: []string{"grayscale", "greyscale"}, MinLen: 2, Independent: true,
			Apply: func(r *testRecord, _ string) error { r.Grayscale = true; return nil }},
		{Names: []string{"level"}, MinLen: 1, Arity: 1,
			Apply: func(r *testRecord, v string) error {
				n, err := ParseInt(v, 0, 10)
				if err != nil {
					return err
				}
				r.Level = n
				return nil
			}},
		{Names: []string{"name"}, MinLen: 2, Arity: 1, Independent: true,
			Apply: func(r *testRecord, v string) error { r.Name = v; return nil }},
	}
}

func TestKeymatch(t *testing.T) {
	tests := []struct {
		arg, keyword string
		min          int
		want         bool
	}{
		{"opt", "optimize", 1, true},
		{"o", "optimize", 1, true},
		{"OPT", "optimize", 1, true},
		{"optimizer", "optimize", 1, false},
		{"g", "grayscale", 2, false},
		{"gr", "grayscale", 2, true},
		{"gre", "grayscale", 2, false},
		{"out", "outfile", 4, false},
		{"outf", "outfile", 4, true},
		{"", "baseline", 1, false},
	}
	for _, tt := range tests {
		if got := Keymatch(tt.arg, tt.keyword, tt.min); got != tt.want {
			t.Errorf("Keymatch(%q, %q, %d) = %v, want %v", tt.arg, tt.keyword, tt.min, got, tt.want)
		}
	}
}

func TestMatcherCaseSensitive(t *testing.T) {
	m := Matcher{}
	if m.Match("OPT", "optimize", 1) {
		t.Error("case-sensitive matcher accepted upper-case abbreviation")
	}
	if !m.Match("opt", "optimize", 1) {
		t.Error("case-sensitive matcher rejected exact prefix")
	}
}

func TestLookupFirstMatchWins(t *testing.T) {
	table := testTable()
	e, ok := table.Lookup(Matcher{FoldCase: true}, "gr")
	if !ok {
		t.Fatal("Lookup(gr) found nothing")
	}
	if e.Name() != "grayscale" {
		t.Errorf("Lookup(gr) = %s, want grayscale", e.Name())
	}
	e, ok = table.Lookup(Matcher{FoldCase: true}, "grey")
	if !ok || e.Name() != "grayscale" {
		t.Errorf("Lookup(grey) resolved to %v", e)
	}
	if _, ok := table.Lookup(Matcher{FoldCase: true}, "g"); ok {
		t.Error("Lookup(g) matched below the minimum length")
	}
}

func TestScanFindsFileIndex(t *testing.T) {
	r := NewResolver(testTable(), "", nil, nil)
	var rec testRecord
	idx, err := r.Scan(&rec, []string{"-level", "3", "-na", "x", "in.bmp", "out.jpg"}, true)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if idx != 4 {
		t.Errorf("file index = %d, want 4", idx)
	}
	if rec.Level != 3 || rec.Name != "x" {
		t.Errorf("record = %+v", rec)
	}
}

func TestScanNoFile(t *testing.T) {
	r := NewResolver(testTable(), "", nil, nil)
	var rec testRecord
	idx, err := r.Scan(&rec, []string{"-d", "-gr"}, false)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if idx != NoFile {
		t.Errorf("file index = %d, want NoFile", idx)
	}
}

func TestScanTrialLeavesDependentFields(t *testing.T) {
	r := NewResolver(testTable(), "", nil, nil)
	var rec testRecord
	if _, err := r.Scan(&rec, []string{"-level", "7", "-name", "n", "-v", "f"}, false); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if rec.Level != 0 {
		t.Errorf("trial pass stored level %d", rec.Level)
	}
	if rec.Name != "n" || rec.TraceLevel != 1 {
		t.Errorf("trial pass dropped independent switches: %+v", rec)
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind Kind
		want error
	}{
		{"unknown", []string{"-bogus", "f"}, KindUnknownSwitch, ErrUnknownSwitch},
		{"missing value", []string{"-level"}, KindMissingValue, ErrMissingValue},
		{"not numeric", []string{"-level", "x", "f"}, KindInvalidNumericValue, ErrInvalidNumericValue},
		{"out of range", []string{"-level", "11", "f"}, KindInvalidNumericValue, ErrInvalidNumericValue},
	}
	for _, tt := range tests {
		for _, commit := range []bool{false, true} {
			r := NewResolver(testTable(), "", nil, nil)
			var rec testRecord
			_, err := r.Scan(&rec, tt.args, commit)
			if !errors.Is(err, tt.want) {
				t.Errorf("%s (commit=%v): err = %v, want %v", tt.name, commit, err, tt.want)
			}
			if got := KindOf(err); got != tt.kind {
				t.Errorf("%s (commit=%v): kind = %s, want %s", tt.name, commit, got, tt.kind)
			}
			var se *Error
			if !errors.As(err, &se) || se.Index != 0 {
				t.Errorf("%s: error does not point at argument 0: %v", tt.name, err)
			}
		}
	}
}

func TestScanNoRollback(t *testing.T) {
	r := NewResolver(testTable(), "", nil, nil)
	var rec testRecord
	_, err := r.Scan(&rec, []string{"-level", "4", "-level", "99", "f"}, true)
	if err == nil {
		t.Fatal("expected failure")
	}
	if rec.Level != 4 {
		t.Errorf("level = %d, want the value applied before the failure", rec.Level)
	}
}

func TestBannerPrintedOnce(t *testing.T) {
	var out bytes.Buffer
	r := NewResolver(testTable(), "test banner", &out, nil)
	args := []string{"-debug", "-verbose", "-debug", "f"}
	for _, commit := range []bool{false, true} {
		var rec testRecord
		if _, err := r.Scan(&rec, args, commit); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if rec.TraceLevel != 3 {
			t.Errorf("trace level = %d, want 3", rec.TraceLevel)
		}
	}
	if n := strings.Count(out.String(), "test banner"); n != 1 {
		t.Errorf("banner printed %d times, want 1", n)
	}
	if !r.BannerPrinted() {
		t.Error("BannerPrinted() = false")
	}
}

func TestParseDCT(t *testing.T) {
	tests := []struct {
		in   string
		want DCTMethod
		ok   bool
	}{
		{"int", DCTInt, true},
		{"i", DCTInt, true},
		{"fa", DCTFast, true},
		{"FLOAT", DCTFloat, true},
		{"f", DCTInt, false},
		{"slow", DCTInt, false},
	}
	for _, tt := range tests {
		got, err := ParseDCT(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseDCT(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseDCT(%q) = %s, want %s", tt.in, got, tt.want)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidValue) {
			t.Errorf("ParseDCT(%q) err = %v, want ErrInvalidValue", tt.in, err)
		}
	}
}

func TestIOErrorKind(t *testing.T) {
	base := errors.New("permission denied")
	err := IOError("open", "x.bmp", base)
	if KindOf(err) != KindIOError {
		t.Errorf("kind = %s, want IOError", KindOf(err))
	}
	if !errors.Is(err, base) {
		t.Error("IOError lost the underlying error")
	}
}
