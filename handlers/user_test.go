package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"smarthome/models"
	"smarthome/services/user"
)

type stubUserService struct {
	byEmail map[string]*models.User
}

func (s *stubUserService) UpsertUser(fields bson.M) (*models.User, error) {
	email, _ := fields["email"].(string)
	if email == "" {
		return nil, user.MissingEmailError{}
	}
	usr, ok := s.byEmail[email]
	if !ok {
		usr = &models.User{ID: "u-1", Email: email}
		s.byEmail[email] = usr
	}
	return usr, nil
}

func newUserRouter(svc user.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(svc, zap.NewNop())
	r.POST("/users", h.UpsertUserHandler)
	return r
}

func TestUpsertUserHandler(t *testing.T) {
	r := newUserRouter(&stubUserService{byEmail: make(map[string]*models.User)})

	w, body := doJSON(t, r, http.MethodPost, "/users", `{"email":"ada@example.com","name":"Ada"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %v)", w.Code, body)
	}
	if body["success"] != true || body["userId"] != "u-1" {
		t.Errorf("body = %v", body)
	}
}

func TestUpsertUserHandlerMissingEmail(t *testing.T) {
	r := newUserRouter(&stubUserService{byEmail: make(map[string]*models.User)})

	w, body := doJSON(t, r, http.MethodPost, "/users", `{"name":"Ada"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["success"] != false || body["error"] != "email is required" {
		t.Errorf("body = %v", body)
	}
}
