package constants

// Page routes the handlers redirect between
const (
	HomeRoute     = "/"
	PricingRoute  = "/pricing"
	CheckoutRoute = "/checkout"
)
