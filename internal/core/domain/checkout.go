package domain

// CheckoutStep is the current stage of the checkout wizard.
type CheckoutStep string

const (
	StepAuth     CheckoutStep = "auth"
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
	StepReview   CheckoutStep = "review"
)

// CheckoutState is the checkout wizard position plus the two modal flags.
// The modals are mutually exclusive surfaces: both flags are never true at
// the same time. Step is meaningful only while the checkout modal is open.
type CheckoutState struct {
	Step              CheckoutStep
	CheckoutModalOpen bool
	AuthModalOpen     bool
}
