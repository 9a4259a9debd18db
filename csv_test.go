package flixel

import (
	"strings"
	"testing"
)

// TestParseGrid_Basic checks decoding of a well-formed map.
func TestParseGrid_Basic(t *testing.T) {
	data, width, err := parseGrid("0,1,2\n3,4,5")
	if err != nil {
		t.Fatalf("parseGrid returned error: %v", err)
	}
	if width != 3 {
		t.Errorf("width = %d, want 3", width)
	}
	want := []int{0, 1, 2, 3, 4, 5}
	if len(data) != len(want) {
		t.Fatalf("len(data) = %d, want %d", len(data), len(want))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d] = %d, want %d", i, data[i], want[i])
		}
	}
}

// TestParseGrid_SkipsShortRows verifies blank lines and rows without a
// comma are dropped rather than breaking the grid.
func TestParseGrid_SkipsShortRows(t *testing.T) {
	data, width, err := parseGrid("0,1\n\n7\n2,3\n")
	if err != nil {
		t.Fatalf("parseGrid returned error: %v", err)
	}
	if width != 2 {
		t.Errorf("width = %d, want 2", width)
	}
	if len(data) != 4 {
		t.Fatalf("len(data) = %d, want 4", len(data))
	}
	if data[2] != 2 || data[3] != 3 {
		t.Errorf("second row = %d,%d, want 2,3", data[2], data[3])
	}
}

// TestParseGrid_WindowsLineEndings verifies CRLF rows parse cleanly.
func TestParseGrid_WindowsLineEndings(t *testing.T) {
	data, width, err := parseGrid("0,1\r\n2,3\r\n")
	if err != nil {
		t.Fatalf("parseGrid returned error: %v", err)
	}
	if width != 2 || len(data) != 4 {
		t.Errorf("grid = %d cells x width %d, want 4 x 2", len(data), width)
	}
}

// TestParseGrid_FieldWhitespace verifies padded fields still parse.
func TestParseGrid_FieldWhitespace(t *testing.T) {
	data, _, err := parseGrid(" 1 ,\t2 \n 3 , 4 ")
	if err != nil {
		t.Fatalf("parseGrid returned error: %v", err)
	}
	if data[0] != 1 || data[1] != 2 || data[2] != 3 || data[3] != 4 {
		t.Errorf("data = %v, want [1 2 3 4]", data)
	}
}

// TestParseGrid_WidthMismatch verifies a ragged row fails the load.
func TestParseGrid_WidthMismatch(t *testing.T) {
	_, _, err := parseGrid("0,1,2\n3,4")
	if err == nil {
		t.Fatal("parseGrid accepted rows of differing widths")
	}
	if !strings.Contains(err.Error(), "want 3") {
		t.Errorf("error %q does not name the expected width", err)
	}
}

// TestParseGrid_BadField verifies non-integer ids fail the load.
func TestParseGrid_BadField(t *testing.T) {
	if _, _, err := parseGrid("0,x\n1,2"); err == nil {
		t.Fatal("parseGrid accepted a non-integer tile id")
	}
}

// TestParseGrid_NegativeField verifies negative ids fail the load.
func TestParseGrid_NegativeField(t *testing.T) {
	if _, _, err := parseGrid("0,-1\n1,2"); err == nil {
		t.Fatal("parseGrid accepted a negative tile id")
	}
}

// TestParseGrid_Empty verifies input with no usable rows fails the load.
func TestParseGrid_Empty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "5\n7"} {
		if _, _, err := parseGrid(input); err == nil {
			t.Errorf("parseGrid(%q) accepted input with no rows", input)
		}
	}
}

// TestGridToCSV_RoundTrip verifies dump and reload invert each other.
func TestGridToCSV_RoundTrip(t *testing.T) {
	src := []int{0, 1, 2, 3, 4, 5}
	csv := GridToCSV(src, 3)
	if csv != "0,1,2\n3,4,5" {
		t.Fatalf("GridToCSV = %q", csv)
	}
	data, width, err := parseGrid(csv)
	if err != nil {
		t.Fatalf("parseGrid returned error: %v", err)
	}
	if width != 3 || len(data) != 6 {
		t.Fatalf("reloaded grid = %d cells x width %d, want 6 x 3", len(data), width)
	}
	for i := range src {
		if data[i] != src[i] {
			t.Errorf("data[%d] = %d, want %d", i, data[i], src[i])
		}
	}
}
