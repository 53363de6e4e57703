package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/simgeozgundondu/product-management-app/internal/blobstore"
	pkgerrors "github.com/simgeozgundondu/product-management-app/pkg/errors"
	"github.com/simgeozgundondu/product-management-app/pkg/logger"
)

// Engine is the catalog facade: it owns the product store, the staged and
// committed filter criteria, the derived view, pagination, and the search
// session. One mutex serializes every operation; derived state is always
// recomputed inside the same critical section that changed its inputs.
type Engine struct {
	mu     sync.Mutex
	store  *ProductStore
	logg   *logger.Logger
	search *SearchSession

	staged    Criteria
	committed Criteria
	view      Collection
	page      int
	pageSize  int
}

// EngineParams wires an engine.
type EngineParams struct {
	Blobs           blobstore.Store
	Key             string
	PageSize        int
	SearchBlurGrace time.Duration
	Logger          *logger.Logger
}

// NewEngine builds an engine with default criteria and page 1. Initialize
// must be called before serving.
func NewEngine(params EngineParams) (*Engine, error) {
	if params.Blobs == nil {
		return nil, errors.New("blob store is required")
	}
	store, err := NewProductStore(params.Blobs, params.Key, params.Logger)
	if err != nil {
		return nil, err
	}
	size := params.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Engine{
		store:     store,
		logg:      params.Logger,
		search:    NewSearchSession(params.SearchBlurGrace),
		staged:    DefaultCriteria(),
		committed: DefaultCriteria(),
		page:      1,
		pageSize:  size,
	}, nil
}

// Initialize hydrates the collection from persistence and derives the
// initial view.
func (e *Engine) Initialize(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.Initialize(ctx)
	e.recomputeLocked()
}

// Append validates nothing itself: the record is expected to have passed
// boundary validation. The committed view is recomputed so a new product
// matching the active filter appears immediately.
func (e *Engine) Append(ctx context.Context, p Product) (Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	added, err := e.store.Append(ctx, p)
	e.recomputeLocked()
	return added, err
}

// Get returns the product with the given id.
func (e *Engine) Get(id int64) (Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Get(id)
}

// Collection returns a snapshot of the full unfiltered collection.
func (e *Engine) Collection() Collection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Collection()
}

// Sellers lists every distinct seller in first-seen order.
func (e *Engine) Sellers() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return DistinctSellers(e.store.collection)
}

// Categories lists every distinct category in first-seen order.
func (e *Engine) Categories() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return DistinctCategories(e.store.collection)
}

// StageFilter merges a patch into the staged criteria. The visible view is
// untouched until ApplyFilter commits.
func (e *Engine) StageFilter(patch CriteriaPatch) Criteria {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.staged.Apply(patch)
	return e.staged.Clone()
}

// StagedFilter returns the staged criteria without committing them.
func (e *Engine) StagedFilter() Criteria {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.staged.Clone()
}

// ApplyFilter commits the staged criteria, rederives the view, and resets
// to page 1. Applying the same criteria twice yields the same view.
func (e *Engine) ApplyFilter() Criteria {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.committed = e.staged.Clone()
	e.view = Filter(e.store.collection, e.committed)
	e.page = 1
	return e.committed.Clone()
}

// ClearFilter resets both staged and committed criteria to the defaults,
// restores the full view, and resets to page 1.
func (e *Engine) ClearFilter() Criteria {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.staged = DefaultCriteria()
	e.committed = DefaultCriteria()
	e.view = Filter(e.store.collection, e.committed)
	e.page = 1
	return e.committed.Clone()
}

// Page navigates to page n, clamped into the valid range, and returns the
// items on it along with the resolved page number, page count, and the
// view's total size.
func (e *Engine) Page(n int) (Collection, int, int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := PageCount(len(e.view), e.pageSize)
	e.page = ClampPage(n, count)
	items := Paginate(e.view, e.pageSize, e.page)
	return items, e.page, count, len(e.view)
}

// CurrentPage re-reads the current page without navigating.
func (e *Engine) CurrentPage() (Collection, int, int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := PageCount(len(e.view), e.pageSize)
	e.page = ClampPage(e.page, count)
	items := Paginate(e.view, e.pageSize, e.page)
	return items, e.page, count, len(e.view)
}

// Search exposes the typeahead session. The session locks itself; the
// engine lock is only taken to snapshot the collection it matches against.
func (e *Engine) Search() *SearchSession {
	return e.search
}

// SearchTypeahead runs one keystroke against the current collection.
func (e *Engine) SearchTypeahead(text string) []Suggestion {
	e.mu.Lock()
	snapshot := e.store.Collection()
	e.mu.Unlock()

	return e.search.SetQuery(snapshot, text)
}

// SelectSearchResult commits the suggestion for the given product id and
// resolves it to the full product record.
func (e *Engine) SelectSearchResult(productID int64) (Product, error) {
	if !e.search.SelectProduct(productID) {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product is not among the current matches")
	}
	return e.Get(productID)
}

// recomputeLocked rederives the view from the committed criteria and keeps
// the current page inside the new bounds.
func (e *Engine) recomputeLocked() {
	e.view = Filter(e.store.collection, e.committed)
	e.page = ClampPage(e.page, PageCount(len(e.view), e.pageSize))
}
