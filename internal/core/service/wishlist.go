package service

import (
	"sync"

	"github.com/quirklo/storefront/internal/core/domain"
	"github.com/quirklo/storefront/internal/core/port"
)

var _ port.WishlistKeeper = (*Wishlist)(nil)

// Wishlist owns the set of favorited products, keyed by product id.
// Memory-only: the set is lost when the process ends.
type Wishlist struct {
	mu    sync.Mutex
	items []domain.Product
	index map[string]struct{}
}

func NewWishlist() *Wishlist {
	return &Wishlist{index: make(map[string]struct{})}
}

// Add inserts the product. Idempotent: adding a present product changes
// nothing.
func (w *Wishlist) Add(p domain.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.index[p.ID]; ok {
		return
	}
	w.index[p.ID] = struct{}{}
	w.items = append(w.items, p)
}

// Remove deletes by product id. Idempotent: absent ids are a no-op.
func (w *Wishlist) Remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.index[id]; !ok {
		return
	}
	delete(w.index, id)
	for i, p := range w.items {
		if p.ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			break
		}
	}
}

func (w *Wishlist) Contains(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.index[id]
	return ok
}

// Items returns a copy in insertion order.
func (w *Wishlist) Items() []domain.Product {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]domain.Product, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Wishlist) TotalItems() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}
