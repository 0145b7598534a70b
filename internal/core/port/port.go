package port

import (
	"context"

	"github.com/quirklo/storefront/internal/core/domain"
)

// CatalogProvider serves the static product catalog. Products returns the
// catalog in source order; Product reports absence with the bool, never an
// error.
type CatalogProvider interface {
	Products() []domain.Product
	Product(id string) (domain.Product, bool)
}

// CartStorage mirrors the cart line sequence into durable local storage.
// Load returns an empty slice when nothing usable is stored.
type CartStorage interface {
	Load() ([]domain.CartLine, error)
	Save(lines []domain.CartLine) error
	Clear() error
}

// CartKeeper is the cart store surface consumed by the rendering layer.
type CartKeeper interface {
	Add(p domain.Product, size string, quantity int) error
	UpdateQuantity(variantID string, quantity int)
	Remove(variantID string)
	Clear()
	Lines() []domain.CartLine
	TotalItems() int
	TotalPrice() float64
	IsOpen() bool
	SetOpen(open bool)
}

// WishlistKeeper is the wishlist store surface.
type WishlistKeeper interface {
	Add(p domain.Product)
	Remove(id string)
	Contains(id string) bool
	Items() []domain.Product
	TotalItems() int
}

// Authenticator is the simulated auth store surface. Login and Signup block
// for the simulated latency; ctx cancels the wait.
type Authenticator interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password, name string) error
	Logout()
	Session() (domain.Session, bool)
	IsAuthenticated() bool
	AuthError() string
	ClearAuthError()
	Subscribe(fn func(authenticated bool))
}

// CheckoutFlow sequences the checkout wizard and owns the modal flags.
type CheckoutFlow interface {
	OpenCheckoutFlow()
	CloseCheckoutFlow()
	OpenAuthModal()
	CloseAuthModal()
	ProceedToPayment()
	SetStep(step domain.CheckoutStep)
	State() domain.CheckoutState
}
