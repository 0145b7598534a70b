// Package tui renders the QUIRKLO storefront as a Bubble Tea program: shop,
// cart and wishlist views plus the auth and checkout modal overlays. It only
// reads store state and calls store operations; all invariants live in the
// stores.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quirklo/storefront/internal/core/domain"
	"github.com/quirklo/storefront/internal/core/port"
)

// View represents the current active screen.
type View int

const (
	ViewShop View = iota
	ViewCart
	ViewWishlist
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   port.CatalogProvider
	Cart      port.CartKeeper
	Wishlist  port.WishlistKeeper
	Auth      port.Authenticator
	Checkout  port.CheckoutFlow
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	catalog   port.CatalogProvider
	cart      port.CartKeeper
	wishlist  port.WishlistKeeper
	auth      port.Authenticator
	checkout  port.CheckoutFlow
	prefsPath string

	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	status      string

	// Shop state
	selectedProduct int
	sizeIdx         int

	// Cart state
	selectedLine int

	// Wishlist state
	selectedWish int

	// Modal state
	authForm     authForm
	checkoutForm checkoutForm
	submitting   bool
	spin         spinner.Model
}

// New creates the root model over the injected stores.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if p, err := loadPrefs(opts.PrefsPath); err == nil && p.Theme != "" {
		themeName = p.Theme
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:          ctx,
		catalog:      opts.Catalog,
		cart:         opts.Cart,
		wishlist:     opts.Wishlist,
		auth:         opts.Auth,
		checkout:     opts.Checkout,
		prefsPath:    opts.PrefsPath,
		theme:        GetTheme(themeName),
		currentView:  ViewShop,
		sizeIdx:      1, // size M
		authForm:     newAuthForm(),
		checkoutForm: newCheckoutForm(),
		spin:         sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Messages.
type (
	// authResultMsg reports a finished login/signup attempt.
	authResultMsg struct{ err error }

	// orderPlacedMsg closes the review step after the simulated order.
	orderPlacedMsg struct{}

	// statusExpiredMsg clears the transient status line.
	statusExpiredMsg struct{}
)

func statusExpireCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case authResultMsg:
		m.submitting = false
		if msg.err == nil {
			m.authForm.reset()
			// The checkout orchestrator already resumed the flow through
			// its auth subscription; prepare the wizard inputs for it.
			m.checkoutForm.reset()
		}
		return m, nil

	case orderPlacedMsg:
		m.cart.Clear()
		m.checkout.CloseCheckoutFlow()
		m.checkoutForm.reset()
		m.status = "Order placed. Thanks for shopping QUIRKLO!"
		return m, statusExpireCmd()

	case statusExpiredMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	st := m.checkout.State()
	if st.AuthModalOpen {
		return m.renderAuthModal()
	}
	if st.CheckoutModalOpen {
		return m.renderCheckoutModal(st.Step)
	}

	switch m.currentView {
	case ViewCart:
		return m.renderCart()
	case ViewWishlist:
		return m.renderWishlist()
	default:
		return m.renderShop()
	}
}

// submitAuthCmd runs the blocking login/signup off the UI loop.
func (m Model) submitAuthCmd() tea.Cmd {
	f := m.authForm
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		var err error
		if f.mode == modeLogin {
			err = auth.Login(ctx, f.email.Value(), f.password.Value())
		} else {
			err = auth.Signup(ctx, f.email.Value(), f.password.Value(), f.name.Value())
		}
		return authResultMsg{err: err}
	}
}

// selectedShopProduct returns the product under the shop cursor.
func (m Model) selectedShopProduct() (domain.Product, bool) {
	ps := m.catalog.Products()
	if len(ps) == 0 || m.selectedProduct < 0 || m.selectedProduct >= len(ps) {
		return domain.Product{}, false
	}
	return ps[m.selectedProduct], true
}
