package models

import "time"

// Booking statuses. Transitions are validated for membership only; no
// transition graph is enforced.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusAssigned   = "assigned"
	BookingStatusInProgress = "in-progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// ValidBookingStatus reports whether s is a member of the booking status enum.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusAssigned,
		BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a member of the payment status enum.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPending, PaymentStatusPaid,
		PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Booking is a confirmed service booking. The service* fields are a snapshot
// of the catalog entry at creation time; later catalog edits do not change
// past bookings.
type Booking struct {
	ID              string    `bson:"_id,omitempty" json:"_id"`
	ServiceID       string    `bson:"serviceId" json:"serviceId"`
	UserID          string    `bson:"userId" json:"userId"`
	Date            string    `bson:"date" json:"date"`
	Location        string    `bson:"location" json:"location"`
	ContactNumber   string    `bson:"contactNumber" json:"contactNumber"`
	ServiceName     string    `bson:"serviceName" json:"serviceName"`
	ServiceCost     float64   `bson:"serviceCost" json:"serviceCost"`
	ServiceCategory string    `bson:"serviceCategory" json:"serviceCategory"`
	ServiceUnit     string    `bson:"serviceUnit" json:"serviceUnit"`
	Status          string    `bson:"status" json:"status"`
	PaymentStatus   string    `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod   string    `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	TransactionID   string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	BookingCode     string    `bson:"bookingCode" json:"bookingCode"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
