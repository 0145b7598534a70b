package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quirklo/storefront/internal/core/domain"
)

func (m Model) renderHeader() string {
	s := m.theme.Styles()

	left := s.Title.Render("QUIRKLO")
	tabs := []string{
		m.tab("Shop [s]", ViewShop, s),
		m.tab(fmt.Sprintf("Cart [c] (%d)", m.cart.TotalItems()), ViewCart, s),
		m.tab(fmt.Sprintf("Wishlist [w] (%d)", m.wishlist.TotalItems()), ViewWishlist, s),
	}

	user := s.Muted.Render("anonymous · L to login")
	if sess, ok := m.auth.Session(); ok {
		user = s.Success.Render("hi, " + sess.Name + " · L to logout")
	}

	return left + "  " + strings.Join(tabs, "  ") + "  " + user
}

func (m Model) tab(label string, v View, s Styles) string {
	if m.currentView == v {
		return s.Accent.Render(label)
	}
	return s.Muted.Render(label)
}

func (m Model) renderFooter(hint string) string {
	s := m.theme.Styles()
	out := s.Muted.Render(hint + " · T theme · q quit")
	if m.status != "" {
		out += "\n" + s.Success.Render(m.status)
	}
	return out
}

func (m Model) renderShop() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	for i, p := range m.catalog.Products() {
		line := fmt.Sprintf("%-26s %8s", p.Name, formatPrice(p.Price))
		if p.Badge != "" {
			line += "  " + s.Badge.Render(strings.ToUpper(p.Badge))
		}
		if m.wishlist.Contains(p.ID) {
			line += "  " + s.Danger.Render("♥")
		}
		if i == m.selectedProduct {
			b.WriteString(s.Selected.Render("> " + line))
			b.WriteString("\n")
			b.WriteString(s.Muted.Render("  " + p.Description))
			b.WriteString("\n")
			b.WriteString("  " + m.renderSizePicker(s))
		} else {
			b.WriteString(s.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter("↑/↓ browse · ←/→ size · enter add to cart · f wishlist"))
	return b.String()
}

func (m Model) renderSizePicker(s Styles) string {
	parts := make([]string, len(domain.Sizes))
	for i, size := range domain.Sizes {
		if i == m.sizeIdx {
			parts[i] = s.Accent.Render("[" + size + "]")
		} else {
			parts[i] = s.Muted.Render(" " + size + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderCart() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	lines := m.cart.Lines()
	if len(lines) == 0 {
		b.WriteString(s.Muted.Render("Your cart is empty. Go grab something!"))
		b.WriteString("\n\n")
		b.WriteString(m.renderFooter("s shop"))
		return b.String()
	}

	for i, l := range lines {
		row := fmt.Sprintf("%-26s %-4s x%-3d %10s",
			l.Name, l.Size, l.Quantity, formatPrice(l.Price*float64(l.Quantity)))
		if i == m.selectedLine {
			b.WriteString(s.Selected.Render("> " + row))
		} else {
			b.WriteString(s.Text.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Accent.Render(fmt.Sprintf("Total (%d items): %s",
		m.cart.TotalItems(), formatPrice(m.cart.TotalPrice()))))
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter("+/- quantity · x remove · enter checkout"))
	return b.String()
}

func (m Model) renderWishlist() string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	items := m.wishlist.Items()
	if len(items) == 0 {
		b.WriteString(s.Muted.Render("Your wishlist is empty"))
		b.WriteString("\n\n")
		b.WriteString(m.renderFooter("s shop"))
		return b.String()
	}

	for i, p := range items {
		row := fmt.Sprintf("%-26s %8s", p.Name, formatPrice(p.Price))
		if i == m.selectedWish {
			b.WriteString(s.Selected.Render("> " + row))
		} else {
			b.WriteString(s.Text.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter("enter add to cart · x remove"))
	return b.String()
}

// overlay centers a box in the available space.
func (m Model) overlay(content string) string {
	s := m.theme.Styles()
	box := s.Box.Render(content)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
