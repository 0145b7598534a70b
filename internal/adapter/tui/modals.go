package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/quirklo/storefront/internal/core/domain"
)

func (m Model) renderAuthModal() string {
	s := m.theme.Styles()
	var b strings.Builder

	if m.authForm.mode == modeLogin {
		b.WriteString(s.Title.Render("Welcome back"))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("ctrl+t to sign up instead"))
	} else {
		b.WriteString(s.Title.Render("Join QUIRKLO"))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("ctrl+t to log in instead"))
	}
	b.WriteString("\n\n")

	if m.authForm.mode == modeSignup {
		b.WriteString(s.Text.Render("Name"))
		b.WriteString("\n")
		b.WriteString(m.authForm.name.View())
		b.WriteString("\n")
	}
	b.WriteString(s.Text.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.authForm.email.View())
	b.WriteString("\n")
	b.WriteString(s.Text.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.authForm.password.View())
	b.WriteString("\n\n")

	if msg := m.auth.AuthError(); msg != "" {
		b.WriteString(s.Danger.Render(msg))
		b.WriteString("\n\n")
	}

	if m.submitting {
		b.WriteString(m.spin.View())
		b.WriteString(s.Muted.Render(" just a sec..."))
	} else {
		b.WriteString(s.Muted.Render("tab next field · enter submit · esc close"))
	}

	return m.overlay(b.String())
}

var stepLabels = []struct {
	step  domain.CheckoutStep
	label string
}{
	{domain.StepShipping, "Shipping"},
	{domain.StepPayment, "Payment"},
	{domain.StepReview, "Review"},
}

func (m Model) renderCheckoutModal(step domain.CheckoutStep) string {
	s := m.theme.Styles()
	var b strings.Builder

	b.WriteString(s.Title.Render("Checkout"))
	b.WriteString("\n")
	b.WriteString(m.renderStepBar(step))
	b.WriteString("\n\n")

	switch step {
	case domain.StepPayment:
		b.WriteString(m.renderForm(paymentLabels, m.checkoutForm.payment))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("tab next field · enter continue · ctrl+b back · esc close"))
	case domain.StepReview:
		b.WriteString(m.renderOrderReview())
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("enter place order · b back · esc close"))
	default:
		b.WriteString(m.renderForm(shippingLabels, m.checkoutForm.shipping))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("tab next field · enter continue · esc close"))
	}

	return m.overlay(b.String())
}

func (m Model) renderStepBar(current domain.CheckoutStep) string {
	s := m.theme.Styles()
	parts := make([]string, len(stepLabels))
	reached := true
	for i, sl := range stepLabels {
		switch {
		case sl.step == current:
			parts[i] = s.Accent.Render("● " + sl.label)
			reached = false
		case reached:
			parts[i] = s.Success.Render("✓ " + sl.label)
		default:
			parts[i] = s.Muted.Render("○ " + sl.label)
		}
	}
	return strings.Join(parts, s.Muted.Render(" ── "))
}

func (m Model) renderForm(labels []string, inputs []textinput.Model) string {
	s := m.theme.Styles()
	var b strings.Builder
	for i, in := range inputs {
		b.WriteString(s.Text.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderOrderReview() string {
	s := m.theme.Styles()
	var b strings.Builder

	for _, l := range m.cart.Lines() {
		b.WriteString(s.Text.Render(fmt.Sprintf("%-26s %-4s x%-3d %10s",
			l.Name, l.Size, l.Quantity, formatPrice(l.Price*float64(l.Quantity)))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Accent.Render(fmt.Sprintf("Order total (%d items): %s",
		m.cart.TotalItems(), formatPrice(m.cart.TotalPrice()))))
	b.WriteString("\n")
	return b.String()
}
