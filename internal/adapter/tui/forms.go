package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authMode int

const (
	modeLogin authMode = iota
	modeSignup
)

// authForm holds the login/signup inputs shown inside the auth modal.
type authForm struct {
	mode     authMode
	email    textinput.Model
	password textinput.Model
	name     textinput.Model
	focusIdx int
}

func newAuthForm() authForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 64
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	name := textinput.New()
	name.Placeholder = "display name (optional)"
	name.CharLimit = 64

	return authForm{email: email, password: password, name: name}
}

// fields returns the visible inputs in focus order for the current mode.
func (f *authForm) fields() []*textinput.Model {
	if f.mode == modeSignup {
		return []*textinput.Model{&f.name, &f.email, &f.password}
	}
	return []*textinput.Model{&f.email, &f.password}
}

func (f *authForm) focusNext() {
	fs := f.fields()
	f.focusIdx = (f.focusIdx + 1) % len(fs)
	f.applyFocus()
}

func (f *authForm) applyFocus() {
	for i, in := range f.fields() {
		if i == f.focusIdx {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *authForm) toggleMode() {
	if f.mode == modeLogin {
		f.mode = modeSignup
	} else {
		f.mode = modeLogin
	}
	f.focusIdx = 0
	f.applyFocus()
}

func (f *authForm) reset() {
	f.email.SetValue("")
	f.password.SetValue("")
	f.name.SetValue("")
	f.focusIdx = 0
	f.applyFocus()
}

// update routes a message to the focused input and reports whether the
// value changed.
func (f *authForm) update(msg tea.Msg) (tea.Cmd, bool) {
	in := f.fields()[f.focusIdx]
	before := in.Value()
	updated, cmd := in.Update(msg)
	*in = updated
	return cmd, updated.Value() != before
}

// checkoutForm holds the shipping and payment inputs of the wizard. The
// fields are display-only plumbing: nothing validates or stores them, as
// the storefront has no real order backend.
type checkoutForm struct {
	shipping []textinput.Model
	payment  []textinput.Model
	focusIdx int
}

var (
	shippingLabels = []string{
		"First Name", "Last Name", "Address", "City", "State", "ZIP Code", "Phone Number",
	}
	paymentLabels = []string{"Card Number", "Expiration Date", "CVV"}
)

func newCheckoutForm() checkoutForm {
	mk := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 48
		return in
	}

	f := checkoutForm{}
	for _, l := range shippingLabels {
		f.shipping = append(f.shipping, mk(l))
	}
	for _, l := range paymentLabels {
		f.payment = append(f.payment, mk(l))
	}
	if len(f.shipping) > 0 {
		f.shipping[0].Focus()
	}
	return f
}

func (f *checkoutForm) fieldsFor(payment bool) []textinput.Model {
	if payment {
		return f.payment
	}
	return f.shipping
}

func (f *checkoutForm) focusNext(payment bool) {
	fs := f.fieldsFor(payment)
	f.focusIdx = (f.focusIdx + 1) % len(fs)
	f.applyFocus(payment)
}

func (f *checkoutForm) applyFocus(payment bool) {
	fs := f.fieldsFor(payment)
	for i := range fs {
		if i == f.focusIdx {
			fs[i].Focus()
		} else {
			fs[i].Blur()
		}
	}
}

func (f *checkoutForm) update(msg tea.Msg, payment bool) tea.Cmd {
	fs := f.fieldsFor(payment)
	if f.focusIdx < 0 || f.focusIdx >= len(fs) {
		return nil
	}
	var cmd tea.Cmd
	fs[f.focusIdx], cmd = fs[f.focusIdx].Update(msg)
	return cmd
}

func (f *checkoutForm) reset() {
	for i := range f.shipping {
		f.shipping[i].SetValue("")
	}
	for i := range f.payment {
		f.payment[i].SetValue("")
	}
	f.focusIdx = 0
	f.applyFocus(false)
}
