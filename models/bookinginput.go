package models

// BookingInput is the creation payload for a booking.
type BookingInput struct {
	ServiceID     string `json:"serviceId"`
	UserID        string `json:"userId"`
	Date          string `json:"date"`
	Location      string `json:"location"`
	ContactNumber string `json:"contactNumber"`
}

// PaymentUpdateInput carries a payment transition.
type PaymentUpdateInput struct {
	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
}

// CompletePaymentInput carries the optional fields of the composite
// complete-payment transition.
type CompletePaymentInput struct {
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
}
