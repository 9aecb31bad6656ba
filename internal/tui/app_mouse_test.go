package tui

import (
	"strings"
	"testing"

	"github.com/sjbeckles/fiscboard/internal/model"
	"github.com/sjbeckles/fiscboard/internal/tui/components"
)

func TestTabAtMatchesTabWidths(t *testing.T) {
	for active := 0; active < len(components.Tabs); active++ {
		a := App{activeTab: active}

		rows := [][]int{{0, 1, 2, 3, 4}, nil}
		for i := 5; i < len(components.Tabs); i++ {
			rows[1] = append(rows[1], i)
		}

		for y, row := range rows {
			pos := 1
			for _, idx := range row {
				w := components.TabVisualWidth(components.Tabs[idx], idx == active)
				x := pos + w/2
				if got := a.tabAt(x, y); got != idx {
					t.Fatalf("active=%d (x=%d,y=%d) -> tab=%d, want %d", active, x, y, got, idx)
				}
				pos += w + 2
			}
		}
	}
}

func TestTabAtMisses(t *testing.T) {
	a := App{}
	if got := a.tabAt(0, 0); got != -1 {
		t.Fatalf("left margin -> %d, want -1", got)
	}
	if got := a.tabAt(10, 2); got != -1 {
		t.Fatalf("content row -> %d, want -1", got)
	}
	if got := a.tabAt(500, 0); got != -1 {
		t.Fatalf("past last tab -> %d, want -1", got)
	}
}

func TestScrollLinesClampsOffset(t *testing.T) {
	content := "a\nb\nc\nd\ne"

	visible, off := scrollLines(content, 2, 2)
	if off != 2 {
		t.Fatalf("offset = %d, want 2", off)
	}
	if !strings.HasPrefix(visible, "c") {
		t.Fatalf("visible = %q, want to start at c", visible)
	}

	// Past the end: clamp so the last page stays full
	_, off = scrollLines(content, 99, 2)
	if off != 3 {
		t.Fatalf("clamped offset = %d, want 3", off)
	}

	// Short content never scrolls
	_, off = scrollLines("x\ny", 5, 10)
	if off != 0 {
		t.Fatalf("short content offset = %d, want 0", off)
	}
}

func TestTruncStr(t *testing.T) {
	if got := truncStr("hello", 10); got != "hello" {
		t.Fatalf("no-op trunc = %q", got)
	}
	if got := truncStr("hello world", 8); got != "hello w…" {
		t.Fatalf("trunc = %q, want %q", got, "hello w…")
	}
	if got := truncStr("hello", 0); got != "" {
		t.Fatalf("zero limit = %q, want empty", got)
	}
}

func TestHeightHelpers(t *testing.T) {
	s := "a\nb\nc"
	if got := truncateHeight(s, 2); got != "a\nb" {
		t.Fatalf("truncateHeight = %q", got)
	}
	if got := truncateHeight(s, 5); got != s {
		t.Fatalf("truncateHeight no-op = %q", got)
	}

	padded := padHeight("a", 3)
	if lines := strings.Count(padded, "\n") + 1; lines != 3 {
		t.Fatalf("padHeight lines = %d, want 3", lines)
	}
	if got := padHeight(s, 2); got != s {
		t.Fatalf("padHeight no-op = %q", got)
	}
}

func TestRankByGrowth(t *testing.T) {
	pct := func(v float64) *float64 { return &v }
	items := []model.AnnotatedItem{
		{LineItem: model.LineItem{Category: "VAT"}, DerivedMetrics: model.DerivedMetrics{YoYPct: pct(32.3)}},
		{LineItem: model.LineItem{Category: "Excises"}, DerivedMetrics: model.DerivedMetrics{YoYPct: pct(-4.1)}},
		{LineItem: model.LineItem{Category: "Corporation Tax"}, DerivedMetrics: model.DerivedMetrics{YoYPct: pct(23.2)}},
		{LineItem: model.LineItem{Category: "New Levy"}},
	}

	gains := rankByGrowth(items, true, 5)
	if len(gains) != 2 || gains[0].Category != "VAT" || gains[1].Category != "Corporation Tax" {
		t.Fatalf("gains = %+v", gains)
	}

	declines := rankByGrowth(items, false, 5)
	if len(declines) != 1 || declines[0].Category != "Excises" {
		t.Fatalf("declines = %+v", declines)
	}

	if top := rankByGrowth(items, true, 1); len(top) != 1 || top[0].Category != "VAT" {
		t.Fatalf("top-1 = %+v", top)
	}
}
