package entity

// CheckoutState ของ session: filling -> awaiting_payment -> submitting -> completed
// ยกเลิกจาก awaiting_payment จะกลับไป filling
type CheckoutState string

const (
	CheckoutFilling         CheckoutState = "filling"
	CheckoutAwaitingPayment CheckoutState = "awaiting_payment"
	CheckoutSubmitting      CheckoutState = "submitting"
	CheckoutCompleted       CheckoutState = "completed"
)
