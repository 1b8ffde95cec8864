package services

import (
	"context"
	"testing"
	"time"

	"canteen/pkg/apperr"
	"canteen/repository"
)

func newAuthService(t *testing.T) (*AuthService, *repository.EmployeeRepository) {
	t.Helper()
	db := testDB(t)
	repo := repository.NewEmployeeRepository(db)
	return NewAuthService(repo, nil, "test-secret", time.Hour), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	emp, err := svc.Register(&RegisterRequest{
		EmployeeID: "EMP001",
		Email:      "emp001@example.com",
		Password:   "secret123",
		FirstName:  "Asha",
		LastName:   "Patel",
		Department: "Finance",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if emp.Password == "secret123" {
		t.Fatal("password stored in plain text")
	}
	if emp.Role() != "employee" {
		t.Errorf("role = %q, want employee", emp.Role())
	}

	result, err := svc.Login(&LoginRequest{EmployeeID: "EMP001", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Error("empty token")
	}

	if _, err := svc.Login(&LoginRequest{EmployeeID: "EMP001", Password: "wrong"}); !apperr.IsUnauthorized(err) {
		t.Errorf("bad password err = %v, want unauthorized", err)
	}
	if _, err := svc.Login(&LoginRequest{EmployeeID: "EMP404", Password: "secret123"}); !apperr.IsUnauthorized(err) {
		t.Errorf("unknown employee err = %v, want unauthorized", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newAuthService(t)

	req := &RegisterRequest{
		EmployeeID: "EMP001",
		Email:      "emp001@example.com",
		Password:   "secret123",
		FirstName:  "Asha",
	}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("register: %v", err)
	}

	dup := *req
	dup.Email = "other@example.com"
	if _, err := svc.Register(&dup); !apperr.IsInvalidRequest(err) {
		t.Errorf("duplicate employee id err = %v, want invalid request", err)
	}

	dup = *req
	dup.EmployeeID = "EMP002"
	if _, err := svc.Register(&dup); !apperr.IsInvalidRequest(err) {
		t.Errorf("duplicate email err = %v, want invalid request", err)
	}
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	svc, repo := newAuthService(t)

	emp, err := svc.Register(&RegisterRequest{
		EmployeeID: "EMP001",
		Email:      "emp001@example.com",
		Password:   "secret123",
		FirstName:  "Asha",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	emp.Active = false
	if err := repo.Save(emp); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := svc.Login(&LoginRequest{EmployeeID: "EMP001", Password: "secret123"}); !apperr.IsUnauthorized(err) {
		t.Errorf("deactivated login err = %v, want unauthorized", err)
	}
}

func TestPasswordResetUnavailableWithoutRedis(t *testing.T) {
	svc, _ := newAuthService(t)

	if _, err := svc.RequestPasswordReset(context.Background(), "EMP001"); !apperr.IsInvalidRequest(err) {
		t.Errorf("reset request err = %v, want invalid request", err)
	}
}
