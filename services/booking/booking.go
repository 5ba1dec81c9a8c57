package booking

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"smarthome/models"
)

// requiredFields is checked in order; validation short-circuits on the first
// missing field.
var requiredFields = []struct {
	name  string
	value func(models.BookingInput) string
}{
	{"serviceId", func(in models.BookingInput) string { return in.ServiceID }},
	{"userId", func(in models.BookingInput) string { return in.UserID }},
	{"date", func(in models.BookingInput) string { return in.Date }},
	{"location", func(in models.BookingInput) string { return in.Location }},
	{"contactNumber", func(in models.BookingInput) string { return in.ContactNumber }},
}

// newBookingCode generates a human-facing code. Uniqueness is probabilistic
// (timestamp plus a 0-999 suffix); the store-assigned id remains the real key.
func newBookingCode() string {
	return fmt.Sprintf("BK-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// CreateBooking validates the payload, resolves the referenced service and
// persists a new booking carrying a snapshot of the service fields.
func (s *DefaultBookingService) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	for _, f := range requiredFields {
		if f.value(input) == "" {
			return nil, ValidationError{Field: f.name}
		}
	}

	svc, err := s.ServiceRepo.GetByID(input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service %s: %w", input.ServiceID, err)
	}
	if svc == nil {
		return nil, NotFoundError{Resource: "Service", ID: input.ServiceID}
	}

	booking := &models.Booking{
		ServiceID:       input.ServiceID,
		UserID:          input.UserID,
		Date:            input.Date,
		Location:        input.Location,
		ContactNumber:   input.ContactNumber,
		ServiceName:     svc.ServiceName,
		ServiceCost:     svc.Cost,
		ServiceCategory: svc.Category,
		ServiceUnit:     svc.Unit,
		Status:          models.BookingStatusPending,
		PaymentStatus:   models.PaymentStatusUnpaid,
		BookingCode:     newBookingCode(),
	}

	if err := s.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.Logger.Info("Booking created",
		zap.String("bookingId", booking.ID),
		zap.String("bookingCode", booking.BookingCode),
		zap.String("serviceId", booking.ServiceID))
	return booking, nil
}

// GetBookingByID resolves a single booking.
func (s *DefaultBookingService) GetBookingByID(id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return booking, nil
}

// GetUserBookings lists all bookings owned by a user. An empty result is not
// an error.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}
