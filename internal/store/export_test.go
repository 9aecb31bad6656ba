package store

import (
	"path/filepath"
	"testing"

	"github.com/sjbeckles/fiscboard/internal/dataset"
	"github.com/sjbeckles/fiscboard/internal/metrics"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "fiscboard.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestWriteReport(t *testing.T) {
	r, err := metrics.BuildReport(dataset.New(), metrics.NewEngine(metrics.AbsolutePrior))
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	db := openTestDB(t)
	if err := db.WriteReport(r); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	// 10 revenue + 9 expenditure + 11 tax + 10 debt structure +
	// 5 debt service + 24 balance sheet rows.
	count, err := db.ItemCount()
	if err != nil {
		t.Fatalf("ItemCount: %v", err)
	}
	if count != 69 {
		t.Errorf("line items = %d, want 69", count)
	}

	got, err := db.SummaryValue("revenue_total")
	if err != nil {
		t.Fatalf("SummaryValue: %v", err)
	}
	if got != "6696035126" {
		t.Errorf("revenue_total = %q, want 6696035126", got)
	}
}

func TestWriteReportIsIdempotent(t *testing.T) {
	r, err := metrics.BuildReport(dataset.New(), metrics.NewEngine(metrics.AbsolutePrior))
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	db := openTestDB(t)
	for i := 0; i < 2; i++ {
		if err := db.WriteReport(r); err != nil {
			t.Fatalf("WriteReport #%d: %v", i+1, err)
		}
	}

	count, err := db.ItemCount()
	if err != nil {
		t.Fatalf("ItemCount: %v", err)
	}
	if count != 69 {
		t.Errorf("line items after rewrite = %d, want 69", count)
	}
}
