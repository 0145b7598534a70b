package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/quirklo/storefront/internal/core/domain"
	"github.com/quirklo/storefront/internal/core/port"
)

var _ port.CartKeeper = (*Cart)(nil)

// Cart owns the cart line sequence. Lines keep insertion order; at most one
// line exists per variant. Every mutation writes the full sequence through
// the storage port.
type Cart struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	open    bool
	storage port.CartStorage
}

// NewCart creates a cart hydrated from storage. Unreadable stored content
// degrades to an empty cart.
func NewCart(storage port.CartStorage) *Cart {
	const op = "Cart.New"

	c := &Cart{storage: storage}
	lines, err := storage.Load()
	if err != nil {
		slog.Warn("failed to load cart snapshot, starting empty",
			"op", op, "err", err)
		return c
	}
	c.lines = lines
	return c
}

// Add merges quantity into the existing line for (p.ID, size) or appends a
// new line with a price snapshot. Quantity below 1 is rejected. Adding
// opens the cart surface.
func (c *Cart) Add(p domain.Product, size string, quantity int) error {
	const op = "Cart.Add"

	if quantity < 1 {
		return fmt.Errorf("%s: quantity %d: %w",
			op, quantity, domain.ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	variantID := domain.VariantID(p.ID, size)
	if i, ok := c.find(variantID); ok {
		c.lines[i].Quantity += quantity
	} else {
		c.lines = append(c.lines, domain.CartLine{
			VariantID: variantID,
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  quantity,
			Image:     p.Image,
			Size:      size,
		})
	}
	c.open = true
	c.persist(op)
	return nil
}

// UpdateQuantity sets the line quantity in place. Zero or below removes the
// line. Unknown variants are a no-op.
func (c *Cart) UpdateQuantity(variantID string, quantity int) {
	const op = "Cart.UpdateQuantity"

	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.remove(variantID, op)
		return
	}
	if i, ok := c.find(variantID); ok {
		c.lines[i].Quantity = quantity
		c.persist(op)
	}
}

// Remove deletes the matching line. Absent variants are a no-op.
func (c *Cart) Remove(variantID string) {
	const op = "Cart.Remove"

	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(variantID, op)
}

// Clear empties the cart and erases the durable snapshot.
func (c *Cart) Clear() {
	const op = "Cart.Clear"

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	if err := c.storage.Clear(); err != nil {
		slog.Error("failed to clear cart snapshot", "op", op, "err", err)
	}
}

// Lines returns a copy of the line sequence in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems is the sum of quantities over all lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the sum of price*quantity over all lines.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sum float64
	for _, l := range c.lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

// IsOpen reports whether the cart surface should be visible.
func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Cart) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
}

func (c *Cart) find(variantID string) (int, bool) {
	for i, l := range c.lines {
		if l.VariantID == variantID {
			return i, true
		}
	}
	return 0, false
}

func (c *Cart) remove(variantID, op string) {
	i, ok := c.find(variantID)
	if !ok {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.persist(op)
}

func (c *Cart) persist(op string) {
	if err := c.storage.Save(c.lines); err != nil {
		slog.Error("failed to save cart snapshot", "op", op, "err", err)
	}
}
