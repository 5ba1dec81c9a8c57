package user

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"smarthome/models"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserRepo) UpsertByEmail(email string, fields bson.M) (*models.User, error) {
	now := time.Now()
	usr, ok := f.byEmail[email]
	if !ok {
		usr = &models.User{ID: "u-1", Email: email, CreatedAt: now}
		f.byEmail[email] = usr
	}
	if name, ok := fields["name"].(string); ok {
		usr.Name = name
	}
	usr.UpdatedAt = now
	return usr, nil
}

func TestUpsertUserRequiresEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(), Logger: zap.NewNop()}

	tests := []struct {
		name   string
		fields bson.M
	}{
		{"no email key", bson.M{"name": "Ada"}},
		{"empty email", bson.M{"email": ""}},
		{"non-string email", bson.M{"email": 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertUser(tt.fields)
			var missing MissingEmailError
			if !errors.As(err, &missing) {
				t.Fatalf("UpsertUser error = %v, want MissingEmailError", err)
			}
		})
	}
}

func TestUpsertUserKeepsIdentity(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}

	first, err := svc.UpsertUser(bson.M{"email": "ada@example.com", "name": "Ada"})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second, err := svc.UpsertUser(bson.M{"email": "ada@example.com", "name": "Ada L."})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("upsert reassigned id: %q then %q", first.ID, second.ID)
	}
	if second.Name != "Ada L." {
		t.Errorf("supplied fields did not overwrite: %+v", second)
	}
	if len(repo.byEmail) != 1 {
		t.Errorf("upsert created %d documents, want 1", len(repo.byEmail))
	}
}
