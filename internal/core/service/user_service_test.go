package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/docuvault/dms/internal/core/domain"
	"github.com/docuvault/dms/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
	next  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.next++
	clone := *user
	clone.ID = "user-" + strconv.Itoa(r.next)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newUserService(users *stubUserRepo, roles *stubRoleRepo) *UserService {
	return NewUserService(users, roles, NewTokenManager("secret", time.Hour), zerolog.Nop())
}

func signupInput(email, role string) ports.SignupInput {
	return ports.SignupInput{
		Firstname: "Alice",
		Lastname:  "Doe",
		Username:  "alice",
		Email:     email,
		Password:  "s3cret",
		Role:      role,
	}
}

func TestUserService_Signup(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	role := roles.seed("regular")
	svc := newUserService(users, roles)

	user, err := svc.Signup(context.Background(), signupInput("alice@example.com", "regular"))
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role.ID != role.ID || user.Role.Title != "regular" {
		t.Fatalf("unexpected role snapshot: %+v", user.Role)
	}
	if user.IsAdmin() {
		t.Fatalf("regular user should not be admin")
	}
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	roles.seed("regular")
	svc := newUserService(users, roles)

	if _, err := svc.Signup(context.Background(), signupInput("alice@example.com", "regular")); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.Signup(context.Background(), signupInput("alice@example.com", "regular")); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserService_Signup_UnknownRole(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubRoleRepo())

	if _, err := svc.Signup(context.Background(), signupInput("alice@example.com", "nosuch")); err != domain.ErrUnknownRole {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestUserService_Login(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	roles.seed(domain.AdminRole)
	svc := newUserService(users, roles)

	if _, err := svc.Signup(context.Background(), signupInput("root@example.com", domain.AdminRole)); err != nil {
		t.Fatalf("signup: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "root@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "root@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	identity, err := NewTokenManager("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if identity.UserID != user.ID {
		t.Fatalf("token id %q does not match user %q", identity.UserID, user.ID)
	}
	if !identity.IsAdmin {
		t.Fatalf("admin role should yield admin token")
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	roles.seed("regular")
	svc := newUserService(users, roles)

	if _, err := svc.Signup(context.Background(), signupInput("bob@example.com", "regular")); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "bob@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubRoleRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Update(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo()
	roles.seed("regular")
	svc := newUserService(users, roles)

	user, err := svc.Signup(context.Background(), signupInput("carol@example.com", "regular"))
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Firstname: "Carol", Password: "newpass"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Firstname != "Carol" {
		t.Fatalf("firstname not updated: %q", updated.Firstname)
	}
	if updated.Lastname != "Doe" {
		t.Fatalf("lastname should be unchanged, got %q", updated.Lastname)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("password was not re-hashed: %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubRoleRepo())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Firstname: "X"}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
