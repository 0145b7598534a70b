package service

import (
	"sync"

	"github.com/quirklo/storefront/internal/core/domain"
	"github.com/quirklo/storefront/internal/core/port"
)

var _ port.CheckoutFlow = (*Checkout)(nil)

// Checkout sequences the checkout wizard (shipping, payment, review) and
// owns the two modal flags. Checkout is gated on authentication: opening
// the flow while anonymous opens the auth modal instead. The orchestrator
// subscribes to the auth store; a successful authentication while the auth
// modal is open resumes the flow. None of its operations fail.
type Checkout struct {
	mu    sync.Mutex
	state domain.CheckoutState
	auth  port.Authenticator
}

func NewCheckout(auth port.Authenticator) *Checkout {
	c := &Checkout{
		state: domain.CheckoutState{Step: domain.StepAuth},
		auth:  auth,
	}
	auth.Subscribe(func(authenticated bool) {
		if !authenticated {
			return
		}
		c.mu.Lock()
		resume := c.state.AuthModalOpen
		c.mu.Unlock()
		if resume {
			c.ProceedToPayment()
		}
	})
	return c
}

// OpenCheckoutFlow opens the checkout modal at the shipping step, or the
// auth modal when anonymous.
func (c *Checkout) OpenCheckoutFlow() {
	if !c.auth.IsAuthenticated() {
		c.OpenAuthModal()
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.AuthModalOpen = false
	c.state.CheckoutModalOpen = true
	c.state.Step = domain.StepShipping
}

// CloseCheckoutFlow closes the checkout modal. The step is left as-is; the
// next open forces it back to shipping.
func (c *Checkout) CloseCheckoutFlow() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.CheckoutModalOpen = false
}

func (c *Checkout) OpenAuthModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.CheckoutModalOpen = false
	c.state.AuthModalOpen = true
}

func (c *Checkout) CloseAuthModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.AuthModalOpen = false
}

// ProceedToPayment resumes checkout after authentication succeeded while
// the auth modal was open: it swaps the auth modal for the checkout modal
// at the shipping step. No effect while anonymous.
func (c *Checkout) ProceedToPayment() {
	if !c.auth.IsAuthenticated() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.AuthModalOpen = false
	c.state.CheckoutModalOpen = true
	c.state.Step = domain.StepShipping
}

// SetStep is direct navigation for the in-flow Back/Continue controls.
func (c *Checkout) SetStep(step domain.CheckoutStep) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Step = step
}

func (c *Checkout) State() domain.CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
