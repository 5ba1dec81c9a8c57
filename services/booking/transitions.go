package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	bookingRepo "smarthome/database/repository/booking"
	"smarthome/models"
)

// mapRepoErr translates the repository's not-found sentinel into the typed
// service error; everything else passes through as a store failure.
func mapRepoErr(err error, id string) error {
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return NotFoundError{Resource: "Booking", ID: id}
	}
	return fmt.Errorf("booking store failure for id %s: %w", id, err)
}

// UpdateStatus applies a status transition. Membership in the status enum is
// the only constraint; callers are trusted to sequence transitions sensibly.
func (s *DefaultBookingService) UpdateStatus(id, status string) error {
	if !models.ValidBookingStatus(status) {
		return ValidationError{Field: "status", Message: "Invalid status"}
	}

	if err := s.Repo.UpdateFields(id, bson.M{"status": status}); err != nil {
		return mapRepoErr(err, id)
	}

	s.Logger.Info("Booking status updated",
		zap.String("bookingId", id), zap.String("status", status))
	return nil
}

// UpdatePayment applies a payment transition, optionally recording the method
// and transaction id supplied by the caller.
func (s *DefaultBookingService) UpdatePayment(id string, input models.PaymentUpdateInput) error {
	if !models.ValidPaymentStatus(input.PaymentStatus) {
		return ValidationError{Field: "paymentStatus", Message: "Invalid payment status"}
	}

	fields := bson.M{"paymentStatus": input.PaymentStatus}
	if input.PaymentMethod != "" {
		fields["paymentMethod"] = input.PaymentMethod
	}
	if input.TransactionID != "" {
		fields["transactionId"] = input.TransactionID
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return mapRepoErr(err, id)
	}

	s.Logger.Info("Booking payment updated",
		zap.String("bookingId", id), zap.String("paymentStatus", input.PaymentStatus))
	return nil
}

// CompletePayment marks the booking paid and confirmed in a single update.
// Payment completion is simulated; no gateway is involved. The call is
// idempotent: repeating it re-asserts the same terminal fields.
func (s *DefaultBookingService) CompletePayment(id string, input models.CompletePaymentInput) error {
	method := input.PaymentMethod
	if method == "" {
		method = "online"
	}
	txn := input.TransactionID
	if txn == "" {
		txn = "TXN-" + uuid.New().String()
	}

	fields := bson.M{
		"paymentStatus": models.PaymentStatusPaid,
		"status":        models.BookingStatusConfirmed,
		"paymentMethod": method,
		"transactionId": txn,
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return mapRepoErr(err, id)
	}

	s.Logger.Info("Booking payment completed",
		zap.String("bookingId", id), zap.String("transactionId", txn))
	return nil
}

// CancelBooking soft-cancels: the document stays in the store with
// status=cancelled.
func (s *DefaultBookingService) CancelBooking(id string) error {
	if err := s.Repo.UpdateFields(id, bson.M{"status": models.BookingStatusCancelled}); err != nil {
		return mapRepoErr(err, id)
	}

	s.Logger.Info("Booking cancelled", zap.String("bookingId", id))
	return nil
}

// ExpireStaleBookings cancels bookings still pending and unpaid after maxAge.
// Returns how many were transitioned.
func (s *DefaultBookingService) ExpireStaleBookings(maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	stale, err := s.Repo.FindStalePending(cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale bookings: %w", err)
	}

	expired := 0
	for _, b := range stale {
		if err := s.Repo.UpdateFields(b.ID, bson.M{"status": models.BookingStatusCancelled}); err != nil {
			s.Logger.Warn("Failed to expire booking",
				zap.String("bookingId", b.ID), zap.Error(err))
			continue
		}
		expired++
	}

	if expired > 0 {
		s.Logger.Info("Expired stale bookings", zap.Int("count", expired))
	}
	return expired, nil
}
