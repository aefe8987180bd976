package models

// Order is the response to a PayPal order creation: the id to poll by and
// the hosted-checkout URL to send the shopper to.
type Order struct {
	OrderID    string `json:"orderId"`
	ApproveURL string `json:"approveUrl"`
}

// OrderStatus is the payment state reported by the checkout status poll.
type OrderStatus struct {
	OrderID        string `json:"orderId"`
	Status         string `json:"status"`
	PlatformStatus string `json:"platformStatus"`
	PaymentID      string `json:"paymentId"`
}
