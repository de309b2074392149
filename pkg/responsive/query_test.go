package responsive_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/responsive"
)

func webBreakpoints() model.Breakpoints {
	return model.Breakpoints{
		{Name: "small", Width: 480},
		{Name: "medium", Width: 768},
		{Name: "large", Width: math.Inf(1)},
	}
}

func TestCompileMediaText(t *testing.T) {
	tests := []struct {
		name     string
		bps      model.Breakpoints
		unit     model.Unit
		fontSize float64
		expected []string
	}{
		{
			name: "px with unbounded last",
			bps:  webBreakpoints(),
			unit: model.UnitPx,
			expected: []string{
				"(max-width: 480px)",
				"(min-width: 481px) and (max-width: 768px)",
				"(min-width: 769px)",
			},
		},
		{
			name: "default unit is px",
			bps:  model.Breakpoints{{Name: "a", Width: 10}, {Name: "b", Width: 20}},
			expected: []string{
				"(max-width: 10px)",
				"(min-width: 11px) and (max-width: 20px)",
			},
		},
		{
			name:     "em shifts by one pixel worth of em",
			bps:      model.Breakpoints{{Name: "s", Width: 30}, {Name: "l", Width: math.Inf(1)}},
			unit:     model.UnitEm,
			fontSize: 16,
			expected: []string{
				"(max-width: 30em)",
				"(min-width: 30.0625em)",
			},
		},
		{
			name:     "rem with bad font size falls back to 16",
			bps:      model.Breakpoints{{Name: "s", Width: 30}, {Name: "m", Width: 48}},
			unit:     model.UnitRem,
			fontSize: 0,
			expected: []string{
				"(max-width: 30rem)",
				"(min-width: 30.0625rem) and (max-width: 48rem)",
			},
		},
		{
			name: "terminal columns",
			bps:  model.Breakpoints{{Name: "narrow", Width: 80}, {Name: "wide", Width: math.Inf(1)}},
			unit: model.UnitCols,
			expected: []string{
				"(max-width: 80ch)",
				"(min-width: 81ch)",
			},
		},
		{
			name:     "single bounded breakpoint",
			bps:      model.Breakpoints{{Name: "only", Width: 100}},
			expected: []string{"(max-width: 100px)"},
		},
		{
			name:     "single unbounded breakpoint",
			bps:      model.Breakpoints{{Name: "only", Width: math.Inf(1)}},
			expected: []string{"all"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queries, err := responsive.Compile(tt.bps, tt.unit, tt.fontSize)
			if err != nil {
				t.Fatalf("Compile error: %v", err)
			}
			if len(queries) != len(tt.expected) {
				t.Fatalf("Expected %d queries, got %d", len(tt.expected), len(queries))
			}
			for i, q := range queries {
				if q.Media != tt.expected[i] {
					t.Errorf("query %d: expected %q, got %q", i, tt.expected[i], q.Media)
				}
				if q.Breakpoint != tt.bps[i] {
					t.Errorf("query %d: expected breakpoint %v, got %v", i, tt.bps[i], q.Breakpoint)
				}
			}
		})
	}
}

func TestCompilePartitionsWidthAxis(t *testing.T) {
	lists := map[string]model.Breakpoints{
		"web":     webBreakpoints(),
		"bounded": {{Name: "a", Width: 1}, {Name: "b", Width: 2}, {Name: "c", Width: 500}},
		"single":  {{Name: "only", Width: 300}},
		"terminal": {
			{Name: "narrow", Width: 80},
			{Name: "medium", Width: 100},
			{Name: "wide", Width: 140},
			{Name: "ultra", Width: math.Inf(1)},
		},
	}
	units := []model.Unit{model.UnitPx, model.UnitEm, model.UnitRem, model.UnitCols}

	for name, bps := range lists {
		for _, unit := range units {
			queries, err := responsive.Compile(bps, unit, 16)
			if err != nil {
				t.Fatalf("%s/%s: Compile error: %v", name, unit, err)
			}
			last := bps[len(bps)-1]
			for w := 0; w <= 20000; w++ {
				matched := 0
				for _, q := range queries {
					if q.Matches(float64(w)) {
						matched++
					}
				}
				// A bounded last breakpoint leaves widths beyond it unmatched.
				beyond := !last.Unbounded() && float64(w) > scaled(last.Width, unit)
				if beyond {
					if matched != 0 {
						t.Fatalf("%s/%s: width %d past last bound matched %d queries", name, unit, w, matched)
					}
					continue
				}
				if matched != 1 {
					t.Fatalf("%s/%s: width %d matched %d queries, expected exactly 1", name, unit, w, matched)
				}
			}
		}
	}
}

func scaled(width float64, unit model.Unit) float64 {
	if unit.Relative() {
		return width * 16
	}
	return width
}

func TestActiveBreakpointForWidth(t *testing.T) {
	queries, err := responsive.Compile(webBreakpoints(), model.UnitPx, 0)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	tests := []struct {
		width    float64
		expected string
	}{
		{0, "small"},
		{480, "small"},
		{480.5, "medium"},
		{500, "medium"},
		{768, "medium"},
		{769, "large"},
		{10000, "large"},
	}
	for _, tt := range tests {
		bp, ok := responsive.Active(queries, tt.width)
		if !ok {
			t.Errorf("width %v: no active breakpoint", tt.width)
			continue
		}
		if bp.Name != tt.expected {
			t.Errorf("width %v: expected %s, got %s", tt.width, tt.expected, bp.Name)
		}
	}
}

func TestCompileRejectsInvalidLists(t *testing.T) {
	tests := []struct {
		name string
		bps  model.Breakpoints
	}{
		{"empty", nil},
		{"equal widths", model.Breakpoints{{Name: "a", Width: 10}, {Name: "b", Width: 10}}},
		{"decreasing", model.Breakpoints{{Name: "a", Width: 20}, {Name: "b", Width: 10}}},
		{"unbounded not last", model.Breakpoints{{Name: "a", Width: math.Inf(1)}, {Name: "b", Width: 10}}},
		{"duplicate names", model.Breakpoints{{Name: "a", Width: 10}, {Name: "a", Width: 20}}},
		{"empty name", model.Breakpoints{{Name: "", Width: 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := responsive.Compile(tt.bps, model.UnitPx, 16)
			var listErr *model.InvalidBreakpointListError
			if !errors.As(err, &listErr) {
				t.Fatalf("Expected InvalidBreakpointListError, got %v", err)
			}
		})
	}
}

func TestCompileRejectsUnknownUnit(t *testing.T) {
	if _, err := responsive.Compile(webBreakpoints(), model.Unit("vw"), 16); err == nil {
		t.Fatal("Expected error for unsupported unit")
	}
}
