package components

import (
	"strings"
	"testing"
)

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, tc := range []struct{ total, n int }{
		{100, 3}, {101, 3}, {102, 3}, {80, 4}, {7, 2},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
	if LayoutRow(100, 0) != nil {
		t.Error("LayoutRow with n=0 should return nil")
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('r'); idx != 1 {
		t.Errorf("TabIdxByKey('r') = %d, want 1", idx)
	}
	if idx := TabIdxByKey('x'); idx != len(Tabs)-1 {
		t.Errorf("TabIdxByKey('x') = %d, want %d", idx, len(Tabs)-1)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", idx)
	}
}

func TestTabKeysUnique(t *testing.T) {
	seen := map[rune]bool{}
	for _, tab := range Tabs {
		if seen[tab.Key] {
			t.Errorf("duplicate tab key %q", tab.Key)
		}
		seen[tab.Key] = true
	}
}

func TestTabVisualWidth(t *testing.T) {
	plain := Tab{Name: "Revenue", Key: 'r', KeyPos: 0}
	if w := TabVisualWidth(plain, true); w != 7 {
		t.Errorf("active width = %d, want 7", w)
	}
	if w := TabVisualWidth(plain, false); w != 9 {
		t.Errorf("inactive width = %d, want 9", w)
	}
	appended := Tab{Name: "Settings", Key: 'x', KeyPos: -1}
	if w := TabVisualWidth(appended, false); w != 11 {
		t.Errorf("appended-key width = %d, want 11", w)
	}
}

func TestHBarChartScalesToLargest(t *testing.T) {
	out := HBarChart([]HBarEntry{
		{Label: "Taxation", Value: 3209.9, Text: "$3,209.9M"},
		{Label: "Grants", Value: 20.0, Text: "$20.0M"},
	}, "#3AA99F", 60)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 bar rows, got %d", len(lines))
	}
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Error("largest value should render the longest bar")
	}
	if strings.Count(lines[1], "█") < 1 {
		t.Error("small positive values should still render a sliver")
	}
}

func TestHBarChartNegativeValueHasEmptyBar(t *testing.T) {
	out := HBarChart([]HBarEntry{
		{Label: "Special Receipts", Value: -90.2, Text: "-$90.2M"},
		{Label: "Other Revenue", Value: 170.9, Text: "$170.9M"},
	}, "#3AA99F", 60)

	lines := strings.Split(out, "\n")
	if strings.Count(lines[0], "█") != 0 {
		t.Error("negative value should render no fill")
	}
	if !strings.Contains(lines[0], "-$90.2M") {
		t.Error("negative value text should still appear")
	}
}

func TestBarChartEmptyAndTiny(t *testing.T) {
	if out := BarChart(nil, nil, "#3AA99F", 80, 10); out != "" {
		t.Error("empty values should render nothing")
	}
	if out := BarChart([]float64{1, 2}, nil, "#3AA99F", 5, 2); out != "" {
		t.Error("tiny area should render nothing")
	}
}
