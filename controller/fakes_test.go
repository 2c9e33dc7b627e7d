package controller

import (
	"context"

	"planboard/model"
	"planboard/repository"

	"github.com/google/uuid"
)

// Test stubs embed the repository interface so only the methods a handler
// actually reaches need an implementation; anything else panics loudly.

type stubUserRepo struct {
	repository.UserRepository
	createFunc       func(user *model.User) error
	getByIDFunc      func(id uuid.UUID) (*model.User, error)
	getByEmailFunc   func(email string) (*model.User, error)
	updateFieldsFunc func(id uuid.UUID, fields map[string]interface{}) error
}

func (s *stubUserRepo) Create(user *model.User) error             { return s.createFunc(user) }
func (s *stubUserRepo) GetByID(id uuid.UUID) (*model.User, error) { return s.getByIDFunc(id) }
func (s *stubUserRepo) GetByEmail(email string) (*model.User, error) {
	return s.getByEmailFunc(email)
}
func (s *stubUserRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return s.updateFieldsFunc(id, fields)
}

type stubCredentialRepo struct {
	repository.CredentialRepository
	createFunc func(cred *model.Credential) error
}

func (s *stubCredentialRepo) Create(cred *model.Credential) error { return s.createFunc(cred) }

type stubRefreshTokenRepo struct {
	repository.RefreshTokenRepository
	createFunc func(rt *model.RefreshToken) error
}

func (s *stubRefreshTokenRepo) Create(rt *model.RefreshToken) error { return s.createFunc(rt) }

type stubRoleRepo struct {
	repository.RoleRepository
	getByCodeFunc func(code string) (*model.Role, error)
}

func (s *stubRoleRepo) GetByCode(code string) (*model.Role, error) { return s.getByCodeFunc(code) }

type stubOTPRepo struct {
	repository.OTPRepository
	upsertFunc           func(otp *model.OTPCode) error
	getByEmailAndPurpose func(email string, purpose model.OTPPurpose) (*model.OTPCode, error)
	markUsedFunc         func(id uuid.UUID) error
}

func (s *stubOTPRepo) Upsert(otp *model.OTPCode) error { return s.upsertFunc(otp) }
func (s *stubOTPRepo) GetByEmailAndPurpose(email string, purpose model.OTPPurpose) (*model.OTPCode, error) {
	return s.getByEmailAndPurpose(email, purpose)
}
func (s *stubOTPRepo) MarkUsed(id uuid.UUID) error { return s.markUsedFunc(id) }

type stubThrottle struct {
	allowed bool
}

func (s *stubThrottle) Reserve(context.Context, string, model.OTPPurpose) (bool, error) {
	return s.allowed, nil
}

// stubSender drops mail on the floor; controller tests only care about
// the HTTP side of the flow.
type stubSender struct{}

func (stubSender) SendOTP(string, string, string, model.OTPPurpose) error { return nil }
