package booking

import (
	"time"

	"go.uber.org/zap"

	bookingRepo "smarthome/database/repository/booking"
	serviceRepo "smarthome/database/repository/service"
	"smarthome/models"
)

// BookingService manages the booking lifecycle: creation with a denormalized
// service snapshot, lookups, and validated status/payment transitions.
type BookingService interface {
	CreateBooking(input models.BookingInput) (*models.Booking, error)
	GetBookingByID(id string) (*models.Booking, error)
	GetUserBookings(userID string) ([]models.Booking, error)

	UpdateStatus(id, status string) error
	UpdatePayment(id string, input models.PaymentUpdateInput) error
	CompletePayment(id string, input models.CompletePaymentInput) error
	CancelBooking(id string) error

	ExpireStaleBookings(maxAge time.Duration) (int, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository
	Logger      *zap.Logger
}
