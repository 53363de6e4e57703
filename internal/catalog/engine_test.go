package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/simgeozgundondu/product-management-app/internal/blobstore"
)

func newTestEngine(t *testing.T, seed Collection, pageSize int) *Engine {
	t.Helper()
	mem := blobstore.NewMemory()
	if seed != nil {
		blob, err := json.Marshal(seed)
		if err != nil {
			t.Fatalf("marshal seed: %v", err)
		}
		if err := mem.Save(context.Background(), "products", blob); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	e, err := NewEngine(EngineParams{Blobs: mem, Key: "products", PageSize: pageSize})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	e.Initialize(context.Background())
	return e
}

func TestApplyFilterCommitsStagedAndResetsPage(t *testing.T) {
	e := newTestEngine(t, sampleCollection(), 1)
	e.Page(2)

	hide := true
	e.StageFilter(CriteriaPatch{HideOutOfStock: &hide})

	// Staging alone must not touch the view.
	items, page, _, total := e.CurrentPage()
	if total != 3 {
		t.Fatalf("staging changed the view, total=%d", total)
	}
	if page != 2 || len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("staging moved the page: page=%d items=%v", page, items)
	}

	e.ApplyFilter()
	items, page, count, total := e.CurrentPage()
	if total != 2 || count != 2 {
		t.Fatalf("expected 2 in-stock products over 2 pages, got total=%d count=%d", total, count)
	}
	if page != 1 || items[0].ID != 2 {
		t.Fatalf("apply must reset to page 1, got page=%d items=%v", page, items)
	}
}

func TestApplyFilterScenario(t *testing.T) {
	e := newTestEngine(t, sampleCollection(), DefaultPageSize)
	hide := true
	e.StageFilter(CriteriaPatch{
		MinPrice:           decPtr(40),
		HideOutOfStock:     &hide,
		SelectedCategories: &[]string{"Shoes"},
	})
	e.ApplyFilter()

	items, _, _, total := e.CurrentPage()
	if total != 1 || items[0].ID != 2 {
		t.Fatalf("expected only product 2, got %v", items)
	}
}

func TestClearFilterRestoresDefaults(t *testing.T) {
	e := newTestEngine(t, sampleCollection(), DefaultPageSize)
	hide := true
	e.StageFilter(CriteriaPatch{HideOutOfStock: &hide, SelectedSellers: &[]string{"Acme"}})
	e.ApplyFilter()

	got := e.ClearFilter()
	want := DefaultCriteria()
	if got.HideOutOfStock || len(got.SelectedSellers) != 0 || len(got.SelectedCategories) != 0 {
		t.Fatalf("clear left criteria %+v", got)
	}
	if !got.MinPrice.Equal(want.MinPrice) || !got.MaxPrice.Equal(want.MaxPrice) {
		t.Fatalf("clear left price bounds %s..%s", got.MinPrice, got.MaxPrice)
	}
	if _, _, _, total := e.CurrentPage(); total != 3 {
		t.Fatalf("clear must restore the full view, total=%d", total)
	}
}

func TestPageClampsOutOfRange(t *testing.T) {
	e := newTestEngine(t, sampleCollection(), 1)
	if _, page, count, _ := e.Page(99); page != count {
		t.Fatalf("overshoot must clamp to the last page, got %d of %d", page, count)
	}
	if _, page, _, _ := e.Page(0); page != 1 {
		t.Fatalf("undershoot must clamp to page 1, got %d", page)
	}
}

func TestPageCountWithPageSizeOne(t *testing.T) {
	e := newTestEngine(t, Collection{{ID: 1}, {ID: 2}}, 1)
	_, _, count, _ := e.CurrentPage()
	if count != 2 {
		t.Fatalf("expected 2 pages, got %d", count)
	}
}

func TestAppendAppearsInMatchingView(t *testing.T) {
	e := newTestEngine(t, sampleCollection(), DefaultPageSize)
	e.StageFilter(CriteriaPatch{SelectedCategories: &[]string{"Hats"}})
	e.ApplyFilter()

	if _, _, _, total := e.CurrentPage(); total != 1 {
		t.Fatalf("expected one hat, got %d", total)
	}

	if _, err := e.Append(context.Background(), Product{ProductName: "Straw Hat", Price: dec(15), Category: "Hats"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, _, _, total := e.CurrentPage(); total != 2 {
		t.Fatalf("new matching product must appear, total=%d", total)
	}
}

func TestSearchTypeaheadAgainstLiveCollection(t *testing.T) {
	e := newTestEngine(t, sampleCollection(), DefaultPageSize)
	hits := e.SearchTypeahead("sho")
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %v", hits)
	}

	p, err := e.SelectSearchResult(2)
	if err != nil || p.ID != 2 {
		t.Fatalf("expected product 2, got %v err=%v", p, err)
	}
	if query, _, _, open := e.Search().State(); open || query != "Blue Shoe" {
		t.Fatalf("commit must close the dropdown and adopt the name, open=%v query=%q", open, query)
	}

	if _, err := e.SelectSearchResult(999); err == nil {
		t.Fatal("selecting a product outside the matches must fail")
	}
}

func TestFacets(t *testing.T) {
	e := newTestEngine(t, sampleCollection(), DefaultPageSize)
	if got := e.Sellers(); len(got) != 2 {
		t.Fatalf("unexpected sellers %v", got)
	}
	if got := e.Categories(); len(got) != 2 {
		t.Fatalf("unexpected categories %v", got)
	}
}
