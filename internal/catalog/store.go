package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/simgeozgundondu/product-management-app/internal/blobstore"
	pkgerrors "github.com/simgeozgundondu/product-management-app/pkg/errors"
	"github.com/simgeozgundondu/product-management-app/pkg/logger"
)

// ProductStore owns the canonical in-memory collection and writes it through
// to the persistent blob store on every mutation. It performs no locking of
// its own; the engine serializes access.
type ProductStore struct {
	blobs      blobstore.Store
	key        string
	logg       *logger.Logger
	collection Collection
	now        func() time.Time
}

// NewProductStore wires the store against a blob backend and key.
func NewProductStore(blobs blobstore.Store, key string, logg *logger.Logger) (*ProductStore, error) {
	if blobs == nil {
		return nil, errors.New("blob store is required")
	}
	if key == "" {
		return nil, errors.New("store key is required")
	}
	return &ProductStore{
		blobs: blobs,
		key:   key,
		logg:  logg,
		now:   time.Now,
	}, nil
}

// Initialize hydrates the collection from the blob store. An absent key or
// malformed blob both yield an empty collection: the read is unrecoverable,
// so the loss is logged and accepted, never retried.
func (s *ProductStore) Initialize(ctx context.Context) Collection {
	if s.logg != nil {
		ctx = s.logg.WithStoreKey(ctx, s.key)
	}

	blob, err := s.blobs.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, blobstore.ErrNotFound) && s.logg != nil {
			s.logg.Error(ctx, "failed to load collection, starting empty", err)
		}
		s.collection = Collection{}
		return s.collection.Clone()
	}

	var collection Collection
	if err := json.Unmarshal(blob, &collection); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "malformed collection blob, starting empty", err)
		}
		s.collection = Collection{}
		return s.collection.Clone()
	}

	s.collection = collection
	return s.collection.Clone()
}

// Append assigns an id, appends the product, and persists the whole
// collection synchronously. The caller is trusted to have validated the
// record. The in-memory append stands even when the write-through fails;
// the failure is surfaced as a dependency error.
func (s *ProductStore) Append(ctx context.Context, p Product) (Product, error) {
	if p.ID == 0 {
		p.ID = s.nextID()
	}

	next := append(s.collection.Clone(), p)
	s.collection = next

	blob, err := json.Marshal(next)
	if err != nil {
		return p, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode collection")
	}
	if err := s.blobs.Save(ctx, s.key, blob); err != nil {
		return p, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist collection")
	}
	return p, nil
}

// Get returns the product with the given id.
func (s *ProductStore) Get(id int64) (Product, error) {
	p, ok := s.collection.FindByID(id)
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}

// Collection returns a snapshot of the canonical collection.
func (s *ProductStore) Collection() Collection {
	return s.collection.Clone()
}

// nextID derives a timestamp id, bumped past the current maximum so ids
// stay unique and monotonic even when two appends land in the same
// millisecond.
func (s *ProductStore) nextID() int64 {
	id := s.now().UnixMilli()
	for _, p := range s.collection {
		if p.ID >= id {
			id = p.ID + 1
		}
	}
	return id
}
