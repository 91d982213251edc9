package rules

import (
	"math"
	"regexp"
	"testing"

	"github.com/AndreyAkinshin/doccmp/pkg/doccmp"
)

func doc(t *testing.T, m map[string]interface{}) doccmp.Value {
	t.Helper()
	v, err := doccmp.FromInterface(m)
	if err != nil {
		t.Fatalf("FromInterface() error = %v", err)
	}
	return v
}

func TestEqual(t *testing.T) {
	t.Parallel()

	left := doc(t, map[string]interface{}{"address": map[string]interface{}{"city": "Springfield"}, "n": 1})
	right := doc(t, map[string]interface{}{"city": "Springfield", "n": 1, "arr": []interface{}{1}})

	tests := []struct {
		name string
		rule Equal
		want bool
	}{
		{"same path", Equal{LeftPath: "n", RightPath: "n"}, true},
		{"renamed field", Equal{LeftPath: "address.city", RightPath: "city"}, true},
		{"renamed field wrong target", Equal{LeftPath: "address.city", RightPath: "n"}, false},
		{"both absent", Equal{LeftPath: "x", RightPath: "y"}, true},
		{"one absent", Equal{LeftPath: "n", RightPath: "y"}, false},
		{"arrays by identity", Equal{LeftPath: "arr", RightPath: "arr"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.rule.Evaluate(left, right); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIgnore(t *testing.T) {
	t.Parallel()

	if !(Ignore{}).Evaluate(doccmp.Null(), doccmp.Number(1)) {
		t.Error("Ignore.Evaluate() = false, want true")
	}
}

func TestDeep(t *testing.T) {
	t.Parallel()

	left := doc(t, map[string]interface{}{
		"tags": []interface{}{"a", "b"},
		"meta": map[string]interface{}{"x": 1, "y": []interface{}{true}},
	})
	right := doc(t, map[string]interface{}{
		"tags":  []interface{}{"a", "b"},
		"meta":  map[string]interface{}{"y": []interface{}{true}, "x": 1},
		"other": []interface{}{"b", "a"},
	})

	tests := []struct {
		name        string
		left, right string
		want        bool
	}{
		{"equal arrays", "tags", "tags", true},
		{"equal objects", "meta", "meta", true},
		{"order matters for arrays", "tags", "other", false},
		{"absent on one side", "tags", "missing", false},
		{"absent on both sides", "missing", "missing", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := Deep{LeftPath: tt.left, RightPath: tt.right}
			if got := r.Evaluate(left, right); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		left, right interface{}
		want        bool
	}{
		{"ascii", "Hello", "hELLO", true},
		{"sharp s", "Straße", "STRASSE", true},
		{"different", "abc", "abd", false},
		{"numbers fall back to strict", 1, 1, true},
		{"string vs number", "1", 1, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			left := doc(t, map[string]interface{}{"v": tt.left})
			right := doc(t, map[string]interface{}{"v": tt.right})
			r := Fold{LeftPath: "v", RightPath: "v"}
			if got := r.Evaluate(left, right); got != tt.want {
				t.Errorf("Evaluate(%v, %v) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestConcat(t *testing.T) {
	t.Parallel()

	left := doc(t, map[string]interface{}{"name": "John Smith", "code": "A-7", "n": 3})
	right := doc(t, map[string]interface{}{"firstName": "John", "lastName": "Smith", "prefix": "A", "num": 7})

	tests := []struct {
		name string
		rule Concat
		want bool
	}{
		{"full name", Concat{LeftPath: "name", RightPaths: []string{"firstName", "lastName"}, Separator: " "}, true},
		{"wrong order", Concat{LeftPath: "name", RightPaths: []string{"lastName", "firstName"}, Separator: " "}, false},
		{"number part", Concat{LeftPath: "code", RightPaths: []string{"prefix", "num"}, Separator: "-"}, true},
		{"absent part", Concat{LeftPath: "name", RightPaths: []string{"firstName", "middle"}, Separator: " "}, false},
		{"non-string left", Concat{LeftPath: "n", RightPaths: []string{"num"}}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.rule.Evaluate(left, right); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnordered(t *testing.T) {
	t.Parallel()

	left := doc(t, map[string]interface{}{
		"a": []interface{}{1, 2, 2, map[string]interface{}{"k": "v"}},
		"s": "x",
	})
	right := doc(t, map[string]interface{}{
		"same":     []interface{}{map[string]interface{}{"k": "v"}, 2, 1, 2},
		"dupes":    []interface{}{1, 1, 2, map[string]interface{}{"k": "v"}},
		"shorter":  []interface{}{1, 2, map[string]interface{}{"k": "v"}},
		"s":        "x",
		"notarray": "x",
	})

	tests := []struct {
		name        string
		left, right string
		want        bool
	}{
		{"permutation", "a", "same", true},
		{"multiplicity differs", "a", "dupes", false},
		{"length differs", "a", "shorter", false},
		{"array vs string", "a", "notarray", false},
		{"scalars fall back to deep", "s", "s", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := Unordered{LeftPath: tt.left, RightPath: tt.right}
			if got := r.Evaluate(left, right); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegex(t *testing.T) {
	t.Parallel()

	right := doc(t, map[string]interface{}{"id": "user-42", "n": 42})
	re := regexp.MustCompile(`^user-\d+$`)

	if !(Regex{RightPath: "id", Pattern: re}).Evaluate(doccmp.Undefined(), right) {
		t.Error("Regex(id) = false, want true")
	}
	if (Regex{RightPath: "n", Pattern: re}).Evaluate(doccmp.Undefined(), right) {
		t.Error("Regex(n) = true, want false for non-string")
	}
	if (Regex{RightPath: "id"}).Evaluate(doccmp.Undefined(), right) {
		t.Error("Regex with nil pattern = true, want false")
	}
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected float64
		actual   float64
		rule     Numeric
		want     bool
	}{
		{"exact", 1.0, 1.0, Numeric{Tolerance: 1e-9}, true},
		{"relative within", 100.0, 100.0000001, Numeric{Tolerance: 1e-8, Mode: ToleranceModeRelative}, true},
		{"relative outside", 100.0, 100.1, Numeric{Tolerance: 1e-6, Mode: ToleranceModeRelative}, false},
		{"relative zero expected", 0, 1e-10, Numeric{Tolerance: 1e-9}, true},
		{"absolute within", 1.0, 1.05, Numeric{Tolerance: 0.1, Mode: ToleranceModeAbsolute}, true},
		{"absolute outside", 1.0, 1.2, Numeric{Tolerance: 0.1, Mode: ToleranceModeAbsolute}, false},
		{"ulp adjacent", 1.0, math.Nextafter(1.0, 2), Numeric{Tolerance: 1, Mode: ToleranceModeULP}, true},
		{"ulp too far", 1.0, math.Nextafter(math.Nextafter(1.0, 2), 2), Numeric{Tolerance: 1, Mode: ToleranceModeULP}, false},
		{"nan default", math.NaN(), math.NaN(), Numeric{Tolerance: 1}, false},
		{"nan equals nan", math.NaN(), math.NaN(), Numeric{Tolerance: 1, NaNEqualsNaN: true}, true},
		{"nan vs number", math.NaN(), 1, Numeric{Tolerance: 1, NaNEqualsNaN: true}, false},
		{"same infinity", math.Inf(1), math.Inf(1), Numeric{}, true},
		{"opposite infinity", math.Inf(1), math.Inf(-1), Numeric{Tolerance: math.MaxFloat64, Mode: ToleranceModeAbsolute}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := tt.rule
			r.LeftPath, r.RightPath = "v", "v"
			left := doccmp.ObjectOf(doccmp.NewObject().Set("v", doccmp.Number(tt.expected)))
			right := doccmp.ObjectOf(doccmp.NewObject().Set("v", doccmp.Number(tt.actual)))
			if got := r.Evaluate(left, right); got != tt.want {
				t.Errorf("Evaluate(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestNumeric_NonNumbers(t *testing.T) {
	t.Parallel()

	left := doc(t, map[string]interface{}{"v": "1"})
	right := doc(t, map[string]interface{}{"v": 1})
	r := Numeric{LeftPath: "v", RightPath: "v", Tolerance: 1, Mode: ToleranceModeAbsolute}
	if r.Evaluate(left, right) {
		t.Error("Evaluate(string, number) = true, want false")
	}
}

func TestULPDiff(t *testing.T) {
	t.Parallel()

	if got := ULPDiff(1.0, 1.0); got != 0 {
		t.Errorf("ULPDiff(1, 1) = %d, want 0", got)
	}
	if got := ULPDiff(1.0, math.Nextafter(1.0, 2)); got != 1 {
		t.Errorf("ULPDiff(1, next) = %d, want 1", got)
	}
	if got := ULPDiff(0.0, math.Copysign(0, -1)); got != 0 {
		t.Errorf("ULPDiff(+0, -0) = %d, want 0", got)
	}
	if got := ULPDiff(math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64); got != 2 {
		t.Errorf("ULPDiff(+min, -min) = %d, want 2", got)
	}
	if got := ULPDiff(math.MaxFloat64, -math.MaxFloat64); got != math.MaxInt64 {
		t.Errorf("ULPDiff(+max, -max) = %d, want saturation at %d", got, int64(math.MaxInt64))
	}
	if got := ULPDiff(-1.0, math.Nextafter(-1.0, -2)); got != 1 {
		t.Errorf("ULPDiff(-1, next below) = %d, want 1", got)
	}
	if got, want := ULPDiff(math.MaxFloat64, 0), int64(math.Float64bits(math.MaxFloat64)); got != want {
		t.Errorf("ULPDiff(+max, 0) = %d, want %d", got, want)
	}
}

func TestParseToleranceMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ToleranceMode
		wantErr bool
	}{
		{"", ToleranceModeRelative, false},
		{"relative", ToleranceModeRelative, false},
		{"absolute", ToleranceModeAbsolute, false},
		{"ulp", ToleranceModeULP, false},
		{"fuzzy", "", true},
	}
	for _, tt := range tests {
		got, err := ParseToleranceMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseToleranceMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseToleranceMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
