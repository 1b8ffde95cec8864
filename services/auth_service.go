package services

import (
	"context"
	"errors"
	"time"

	"canteen/entity"
	"canteen/pkg/apperr"
	"canteen/pkg/otp"
	"canteen/repository"
	"canteen/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Repo      *repository.EmployeeRepository
	OTP       *otp.Store // nil when redis is not configured
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.EmployeeRepository, otpStore *otp.Store, jwtSecret string, jwtTTL time.Duration) *AuthService {
	return &AuthService{Repo: repo, OTP: otpStore, JWTSecret: jwtSecret, JWTTTL: jwtTTL}
}

type RegisterRequest struct {
	EmployeeID   string `json:"employeeId" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName"`
	Department   string `json:"department"`
	CustomerType string `json:"customerType"`
}

type LoginRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Employee *entity.Employee `json:"employee"`
}

func (s *AuthService) Register(req *RegisterRequest) (*entity.Employee, error) {
	if count, err := s.Repo.CountByEmployeeID(req.EmployeeID); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, apperr.InvalidRequest("employee id already registered")
	}
	if count, err := s.Repo.CountByEmail(req.Email); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, apperr.InvalidRequest("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &entity.Employee{
		EmployeeID:   req.EmployeeID,
		Email:        req.Email,
		Password:     string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Department:   req.Department,
		CustomerType: req.CustomerType,
		Active:       true,
	}
	if err := s.Repo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	employee, err := s.Repo.FindByEmployeeID(req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if !employee.Active {
		return nil, apperr.Unauthorized("account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(req.Password)) != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := utils.GenerateToken(employee.EmployeeID, employee.Role(), s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, Employee: employee}, nil
}

// RequestPasswordReset issues a one-time code for the employee. The code
// is returned to the caller for delivery; the handler decides how it
// reaches the employee.
func (s *AuthService) RequestPasswordReset(ctx context.Context, employeeID string) (string, error) {
	if s.OTP == nil {
		return "", apperr.InvalidRequest("password reset is not available")
	}
	if _, err := s.Repo.FindByEmployeeID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("employee")
		}
		return "", err
	}
	return s.OTP.Issue(ctx, employeeID)
}

func (s *AuthService) ResetPassword(ctx context.Context, employeeID, code, newPassword string) error {
	if s.OTP == nil {
		return apperr.InvalidRequest("password reset is not available")
	}
	if len(newPassword) < 6 {
		return apperr.InvalidRequest("password must be at least 6 characters")
	}

	ok, err := s.OTP.Verify(ctx, employeeID, code)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Unauthorized("invalid or expired reset code")
	}

	employee, err := s.Repo.FindByEmployeeID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("employee")
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	employee.Password = string(hashed)
	return s.Repo.Save(employee)
}

func (s *AuthService) ListEmployees() ([]entity.Employee, error) {
	return s.Repo.ListAll()
}

// SetActive toggles the account. A deactivated employee cannot log in;
// their existing ledger rows are untouched.
func (s *AuthService) SetActive(employeeID string, active bool) (*entity.Employee, error) {
	employee, err := s.Repo.FindByEmployeeID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("employee")
		}
		return nil, err
	}
	employee.Active = active
	if err := s.Repo.Save(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *AuthService) GetProfile(employeeID string) (*entity.Employee, error) {
	employee, err := s.Repo.FindByEmployeeID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("employee")
		}
		return nil, err
	}
	return employee, nil
}
