package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smarthome/models"
	booking "smarthome/services/booking"
)

// stubBookingService scripts the service layer so handler mapping can be
// tested without a store.
type stubBookingService struct {
	bookings         map[string]*models.Booking
	lastCompleteWith models.CompletePaymentInput
}

func newStubBookingService() *stubBookingService {
	return &stubBookingService{bookings: make(map[string]*models.Booking)}
}

func (s *stubBookingService) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	if input.ServiceID == "" {
		return nil, booking.ValidationError{Field: "serviceId"}
	}
	if input.UserID == "" {
		return nil, booking.ValidationError{Field: "userId"}
	}
	if input.Date == "" {
		return nil, booking.ValidationError{Field: "date"}
	}
	if input.Location == "" {
		return nil, booking.ValidationError{Field: "location"}
	}
	if input.ContactNumber == "" {
		return nil, booking.ValidationError{Field: "contactNumber"}
	}
	if input.ServiceID != "svc-1" {
		return nil, booking.NotFoundError{Resource: "Service", ID: input.ServiceID}
	}
	b := &models.Booking{
		ID:            "bk-1",
		ServiceID:     input.ServiceID,
		UserID:        input.UserID,
		ServiceCost:   100,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		BookingCode:   "BK-1700000000000-7",
	}
	s.bookings[b.ID] = b
	return b, nil
}

func (s *stubBookingService) GetBookingByID(id string) (*models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.NotFoundError{Resource: "Booking", ID: id}
	}
	return b, nil
}

func (s *stubBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *stubBookingService) UpdateStatus(id, status string) error {
	if !models.ValidBookingStatus(status) {
		return booking.ValidationError{Field: "status", Message: "Invalid status"}
	}
	b, ok := s.bookings[id]
	if !ok {
		return booking.NotFoundError{Resource: "Booking", ID: id}
	}
	b.Status = status
	return nil
}

func (s *stubBookingService) UpdatePayment(id string, input models.PaymentUpdateInput) error {
	if !models.ValidPaymentStatus(input.PaymentStatus) {
		return booking.ValidationError{Field: "paymentStatus", Message: "Invalid payment status"}
	}
	b, ok := s.bookings[id]
	if !ok {
		return booking.NotFoundError{Resource: "Booking", ID: id}
	}
	b.PaymentStatus = input.PaymentStatus
	return nil
}

func (s *stubBookingService) CompletePayment(id string, input models.CompletePaymentInput) error {
	s.lastCompleteWith = input
	b, ok := s.bookings[id]
	if !ok {
		return booking.NotFoundError{Resource: "Booking", ID: id}
	}
	b.PaymentStatus = models.PaymentStatusPaid
	b.Status = models.BookingStatusConfirmed
	return nil
}

func (s *stubBookingService) CancelBooking(id string) error {
	b, ok := s.bookings[id]
	if !ok {
		return booking.NotFoundError{Resource: "Booking", ID: id}
	}
	b.Status = models.BookingStatusCancelled
	return nil
}

func (s *stubBookingService) ExpireStaleBookings(maxAge time.Duration) (int, error) {
	return 0, nil
}

func newTestRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, zap.NewNop())
	r.POST("/api/bookings", h.CreateBookingHandler)
	r.GET("/api/bookings/user/:userId", h.GetUserBookingsHandler)
	r.GET("/api/bookings/:id", h.GetBookingHandler)
	r.PATCH("/api/bookings/:id/status", h.UpdateStatusHandler)
	r.PATCH("/api/bookings/:id/payment", h.UpdatePaymentHandler)
	r.POST("/api/bookings/:id/complete-payment", h.CompletePaymentHandler)
	r.DELETE("/api/bookings/:id", h.CancelBookingHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("%s %s returned non-JSON body %q: %v", method, path, w.Body.String(), err)
	}
	return w, decoded
}

func TestCreateBookingHandler(t *testing.T) {
	r := newTestRouter(newStubBookingService())

	w, body := doJSON(t, r, http.MethodPost, "/api/bookings",
		`{"serviceId":"svc-1","userId":"u1","date":"2024-01-01","location":"X","contactNumber":"555"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %v)", w.Code, body)
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if body["bookingId"] != "bk-1" {
		t.Errorf("bookingId = %v", body["bookingId"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("data missing from response: %v", body)
	}
	if data["serviceCost"] != float64(100) {
		t.Errorf("data.serviceCost = %v, want 100", data["serviceCost"])
	}
	if data["status"] != "pending" {
		t.Errorf("data.status = %v, want pending", data["status"])
	}
}

func TestCreateBookingHandlerMissingField(t *testing.T) {
	r := newTestRouter(newStubBookingService())

	w, body := doJSON(t, r, http.MethodPost, "/api/bookings",
		`{"serviceId":"svc-1","userId":"u1","location":"X","contactNumber":"555"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["error"] != "date is required" {
		t.Errorf("error = %v, want %q", body["error"], "date is required")
	}
}

func TestCreateBookingHandlerServiceNotFound(t *testing.T) {
	r := newTestRouter(newStubBookingService())

	w, body := doJSON(t, r, http.MethodPost, "/api/bookings",
		`{"serviceId":"svc-x","userId":"u1","date":"2024-01-01","location":"X","contactNumber":"555"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body["error"] != "Service not found" {
		t.Errorf("error = %v, want %q", body["error"], "Service not found")
	}
}

func TestUpdateStatusHandlerInvalidStatus(t *testing.T) {
	svc := newStubBookingService()
	svc.bookings["bk-1"] = &models.Booking{ID: "bk-1", Status: models.BookingStatusPending}
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodPatch, "/api/bookings/bk-1/status", `{"status":"bogus"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["success"] != false || body["error"] != "Invalid status" {
		t.Errorf("body = %v, want success=false error=%q", body, "Invalid status")
	}
	if svc.bookings["bk-1"].Status != models.BookingStatusPending {
		t.Errorf("stored status mutated on invalid input")
	}
}

func TestUpdateStatusHandlerNotFound(t *testing.T) {
	r := newTestRouter(newStubBookingService())

	w, body := doJSON(t, r, http.MethodPatch, "/api/bookings/missing/status", `{"status":"confirmed"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body["error"] != "Booking not found" {
		t.Errorf("error = %v, want %q", body["error"], "Booking not found")
	}
}

func TestGetBookingHandlerNotFound(t *testing.T) {
	r := newTestRouter(newStubBookingService())

	w, body := doJSON(t, r, http.MethodGet, "/api/bookings/missing", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body["success"] != false || body["error"] != "Booking not found" {
		t.Errorf("body = %v", body)
	}
}

func TestGetUserBookingsHandlerEmptyIsSuccess(t *testing.T) {
	r := newTestRouter(newStubBookingService())

	w, body := doJSON(t, r, http.MethodGet, "/api/bookings/user/u-none", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["success"] != true || body["count"] != float64(0) {
		t.Errorf("body = %v, want success with count 0", body)
	}
}

func TestCompletePaymentHandlerWithoutBody(t *testing.T) {
	svc := newStubBookingService()
	svc.bookings["bk-1"] = &models.Booking{ID: "bk-1", Status: models.BookingStatusPending, PaymentStatus: models.PaymentStatusUnpaid}
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodPost, "/api/bookings/bk-1/complete-payment", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %v)", w.Code, body)
	}
	if svc.bookings["bk-1"].PaymentStatus != models.PaymentStatusPaid ||
		svc.bookings["bk-1"].Status != models.BookingStatusConfirmed {
		t.Errorf("composite transition not applied: %+v", svc.bookings["bk-1"])
	}
}

func TestCompletePaymentHandlerChunkedBody(t *testing.T) {
	svc := newStubBookingService()
	svc.bookings["bk-1"] = &models.Booking{ID: "bk-1", Status: models.BookingStatusPending, PaymentStatus: models.PaymentStatusUnpaid}
	r := newTestRouter(svc)

	// Chunked transfer: ContentLength is -1 but the body still carries the
	// caller-supplied payment details, which must reach the service.
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/bk-1/complete-payment",
		strings.NewReader(`{"paymentMethod":"cash","transactionId":"txn-manual"}`))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if svc.lastCompleteWith.PaymentMethod != "cash" || svc.lastCompleteWith.TransactionID != "txn-manual" {
		t.Errorf("service received %+v, want caller-supplied payment details", svc.lastCompleteWith)
	}
}

func TestCompletePaymentHandlerMalformedBody(t *testing.T) {
	svc := newStubBookingService()
	svc.bookings["bk-1"] = &models.Booking{ID: "bk-1"}
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodPost, "/api/bookings/bk-1/complete-payment", `{"paymentMethod":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %v)", w.Code, body)
	}
}

func TestCancelBookingHandler(t *testing.T) {
	svc := newStubBookingService()
	svc.bookings["bk-1"] = &models.Booking{ID: "bk-1", Status: models.BookingStatusConfirmed}
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodDelete, "/api/bookings/bk-1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %v)", w.Code, body)
	}
	if svc.bookings["bk-1"].Status != models.BookingStatusCancelled {
		t.Errorf("booking not soft-cancelled: %+v", svc.bookings["bk-1"])
	}
}
