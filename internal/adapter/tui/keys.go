package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quirklo/storefront/internal/core/domain"
)

// handleKey processes keyboard input. Modal overlays capture keys first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.checkout.State()
	if st.AuthModalOpen {
		return m.handleAuthModalKey(msg)
	}
	if st.CheckoutModalOpen {
		return m.handleCheckoutModalKey(msg, st.Step)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = savePrefs(m.prefsPath, prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "s":
		m.currentView = ViewShop
		return m, nil

	case "c":
		m.currentView = ViewCart
		m.cart.SetOpen(true)
		return m, nil

	case "w":
		m.currentView = ViewWishlist
		return m, nil

	case "L":
		if m.auth.IsAuthenticated() {
			m.auth.Logout()
			m.status = "Logged out"
			return m, statusExpireCmd()
		}
		m.checkout.OpenAuthModal()
		return m, nil
	}

	switch m.currentView {
	case ViewCart:
		return m.handleCartKey(msg)
	case ViewWishlist:
		return m.handleWishlistKey(msg)
	default:
		return m.handleShopKey(msg)
	}
}

func (m Model) handleShopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.catalog.Products()

	switch msg.String() {
	case "up", "k":
		if m.selectedProduct > 0 {
			m.selectedProduct--
		}
	case "down", "j":
		if m.selectedProduct < len(products)-1 {
			m.selectedProduct++
		}
	case "left", "h":
		if m.sizeIdx > 0 {
			m.sizeIdx--
		}
	case "right", "l":
		if m.sizeIdx < len(domain.Sizes)-1 {
			m.sizeIdx++
		}
	case "enter", "a":
		p, ok := m.selectedShopProduct()
		if !ok {
			break
		}
		size := domain.Sizes[m.sizeIdx]
		if err := m.cart.Add(p, size, 1); err != nil {
			m.status = "Could not add to cart"
			return m, statusExpireCmd()
		}
		m.status = p.Name + " (" + size + ") added to cart"
		return m, statusExpireCmd()
	case "f":
		p, ok := m.selectedShopProduct()
		if !ok {
			break
		}
		if m.wishlist.Contains(p.ID) {
			m.wishlist.Remove(p.ID)
		} else {
			m.wishlist.Add(p)
		}
	}
	return m, nil
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.cart.Lines()
	if m.selectedLine >= len(lines) {
		m.selectedLine = max(0, len(lines)-1)
	}

	switch msg.String() {
	case "up", "k":
		if m.selectedLine > 0 {
			m.selectedLine--
		}
	case "down", "j":
		if m.selectedLine < len(lines)-1 {
			m.selectedLine++
		}
	case "+", "=":
		if l, ok := lineAt(lines, m.selectedLine); ok {
			m.cart.UpdateQuantity(l.VariantID, l.Quantity+1)
		}
	case "-":
		// Dropping to zero removes the line.
		if l, ok := lineAt(lines, m.selectedLine); ok {
			m.cart.UpdateQuantity(l.VariantID, l.Quantity-1)
		}
	case "x", "delete":
		if l, ok := lineAt(lines, m.selectedLine); ok {
			m.cart.Remove(l.VariantID)
		}
	case "enter", "o":
		if len(lines) == 0 {
			break
		}
		m.checkout.OpenCheckoutFlow()
		m.checkoutForm.reset()
	}
	return m, nil
}

func (m Model) handleWishlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.wishlist.Items()
	if m.selectedWish >= len(items) {
		m.selectedWish = max(0, len(items)-1)
	}

	switch msg.String() {
	case "up", "k":
		if m.selectedWish > 0 {
			m.selectedWish--
		}
	case "down", "j":
		if m.selectedWish < len(items)-1 {
			m.selectedWish++
		}
	case "x", "delete":
		if m.selectedWish < len(items) {
			m.wishlist.Remove(items[m.selectedWish].ID)
		}
	case "enter", "a":
		if m.selectedWish >= len(items) {
			break
		}
		p := items[m.selectedWish]
		size := domain.Sizes[m.sizeIdx]
		if err := m.cart.Add(p, size, 1); err == nil {
			m.status = p.Name + " (" + size + ") added to cart"
			return m, statusExpireCmd()
		}
	}
	return m, nil
}

func (m Model) handleAuthModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		// Latency window: only allow bailing out entirely.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.checkout.CloseAuthModal()
		m.auth.ClearAuthError()
		return m, nil
	case "tab", "shift+tab":
		m.authForm.focusNext()
		return m, nil
	case "ctrl+t":
		m.authForm.toggleMode()
		m.auth.ClearAuthError()
		return m, nil
	case "enter":
		m.submitting = true
		return m, tea.Batch(m.submitAuthCmd(), m.spin.Tick)
	}

	cmd, changed := m.authForm.update(msg)
	if changed {
		m.auth.ClearAuthError()
	}
	return m, cmd
}

func (m Model) handleCheckoutModalKey(msg tea.KeyMsg, step domain.CheckoutStep) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.checkout.CloseCheckoutFlow()
		return m, nil
	}

	switch step {
	case domain.StepShipping:
		switch msg.String() {
		case "tab":
			m.checkoutForm.focusNext(false)
			return m, nil
		case "enter":
			m.checkout.SetStep(domain.StepPayment)
			m.checkoutForm.focusIdx = 0
			m.checkoutForm.applyFocus(true)
			return m, nil
		}
		return m, m.checkoutForm.update(msg, false)

	case domain.StepPayment:
		switch msg.String() {
		case "tab":
			m.checkoutForm.focusNext(true)
			return m, nil
		case "ctrl+b":
			m.checkout.SetStep(domain.StepShipping)
			m.checkoutForm.focusIdx = 0
			m.checkoutForm.applyFocus(false)
			return m, nil
		case "enter":
			m.checkout.SetStep(domain.StepReview)
			return m, nil
		}
		return m, m.checkoutForm.update(msg, true)

	case domain.StepReview:
		switch msg.String() {
		case "ctrl+b", "b":
			m.checkout.SetStep(domain.StepPayment)
			return m, nil
		case "enter":
			return m, func() tea.Msg { return orderPlacedMsg{} }
		}
	}
	return m, nil
}

// updateFocusedInput forwards non-key messages (cursor blinks) to whichever
// input currently has focus.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	st := m.checkout.State()
	if st.AuthModalOpen && !m.submitting {
		cmd, _ := m.authForm.update(msg)
		return m, cmd
	}
	if st.CheckoutModalOpen {
		switch st.Step {
		case domain.StepShipping:
			return m, m.checkoutForm.update(msg, false)
		case domain.StepPayment:
			return m, m.checkoutForm.update(msg, true)
		}
	}
	return m, nil
}

func lineAt(lines []domain.CartLine, i int) (domain.CartLine, bool) {
	if i < 0 || i >= len(lines) {
		return domain.CartLine{}, false
	}
	return lines[i], true
}
