package service

import (
	"context"
	"sync"

	"planboard/model"

	"github.com/google/uuid"
)

// Hand-written fakes for the repository interfaces. Each method delegates
// to a func field so individual tests can script exactly the behavior they
// need; unset methods panic, which keeps tests honest about what they touch.

type mockUserRepo struct {
	createFunc       func(user *model.User) error
	getByIDFunc      func(id uuid.UUID) (*model.User, error)
	getByEmailFunc   func(email string) (*model.User, error)
	getByUsername    func(username string) (*model.User, error)
	updateFunc       func(user *model.User) error
	updateFieldsFunc func(id uuid.UUID, fields map[string]interface{}) error
	deleteFunc       func(id uuid.UUID) error
}

func (m *mockUserRepo) Create(user *model.User) error          { return m.createFunc(user) }
func (m *mockUserRepo) GetByID(id uuid.UUID) (*model.User, error) { return m.getByIDFunc(id) }
func (m *mockUserRepo) GetByEmail(email string) (*model.User, error) {
	return m.getByEmailFunc(email)
}
func (m *mockUserRepo) GetByUsername(username string) (*model.User, error) {
	return m.getByUsername(username)
}
func (m *mockUserRepo) Update(user *model.User) error { return m.updateFunc(user) }
func (m *mockUserRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return m.updateFieldsFunc(id, fields)
}
func (m *mockUserRepo) Delete(id uuid.UUID) error { return m.deleteFunc(id) }

type mockCredentialRepo struct {
	createFunc           func(cred *model.Credential) error
	getByIDFunc          func(id uuid.UUID) (*model.Credential, error)
	getByUserIDAndType   func(userID uuid.UUID, credType model.CredentialType) (*model.Credential, error)
	updateFunc           func(cred *model.Credential) error
	deleteFunc           func(id uuid.UUID) error
}

func (m *mockCredentialRepo) Create(cred *model.Credential) error { return m.createFunc(cred) }
func (m *mockCredentialRepo) GetByID(id uuid.UUID) (*model.Credential, error) {
	return m.getByIDFunc(id)
}
func (m *mockCredentialRepo) GetByUserIDAndType(userID uuid.UUID, credType model.CredentialType) (*model.Credential, error) {
	return m.getByUserIDAndType(userID, credType)
}
func (m *mockCredentialRepo) Update(cred *model.Credential) error { return m.updateFunc(cred) }
func (m *mockCredentialRepo) Delete(id uuid.UUID) error           { return m.deleteFunc(id) }

type mockRefreshTokenRepo struct {
	createFunc         func(rt *model.RefreshToken) error
	getByIDFunc        func(id uuid.UUID) (*model.RefreshToken, error)
	getByTokenHashFunc func(hash string) (*model.RefreshToken, error)
	revokeByIDFunc     func(id uuid.UUID) error
	revokeAllFunc      func(userID uuid.UUID) error
	updateFunc         func(rt *model.RefreshToken) error
	deleteExpiredFunc  func() error
	deleteFunc         func(id uuid.UUID) error
}

func (m *mockRefreshTokenRepo) Create(rt *model.RefreshToken) error { return m.createFunc(rt) }
func (m *mockRefreshTokenRepo) GetByID(id uuid.UUID) (*model.RefreshToken, error) {
	return m.getByIDFunc(id)
}
func (m *mockRefreshTokenRepo) GetByTokenHash(hash string) (*model.RefreshToken, error) {
	return m.getByTokenHashFunc(hash)
}
func (m *mockRefreshTokenRepo) RevokeByID(id uuid.UUID) error      { return m.revokeByIDFunc(id) }
func (m *mockRefreshTokenRepo) RevokeAllForUser(userID uuid.UUID) error {
	return m.revokeAllFunc(userID)
}
func (m *mockRefreshTokenRepo) Update(rt *model.RefreshToken) error { return m.updateFunc(rt) }
func (m *mockRefreshTokenRepo) DeleteExpired() error                { return m.deleteExpiredFunc() }
func (m *mockRefreshTokenRepo) Delete(id uuid.UUID) error           { return m.deleteFunc(id) }

type mockRoleRepo struct {
	getByCodeFunc func(code string) (*model.Role, error)
}

func (m *mockRoleRepo) GetByCode(code string) (*model.Role, error) { return m.getByCodeFunc(code) }

type mockOTPRepo struct {
	upsertFunc            func(otp *model.OTPCode) error
	getByEmailAndPurpose  func(email string, purpose model.OTPPurpose) (*model.OTPCode, error)
	markUsedFunc          func(id uuid.UUID) error
	deleteExpiredFunc     func() error
}

func (m *mockOTPRepo) Upsert(otp *model.OTPCode) error { return m.upsertFunc(otp) }
func (m *mockOTPRepo) GetByEmailAndPurpose(email string, purpose model.OTPPurpose) (*model.OTPCode, error) {
	return m.getByEmailAndPurpose(email, purpose)
}
func (m *mockOTPRepo) MarkUsed(id uuid.UUID) error { return m.markUsedFunc(id) }
func (m *mockOTPRepo) DeleteExpired() error        { return m.deleteExpiredFunc() }

type mockThrottleRepo struct {
	reserveFunc func(ctx context.Context, email string, purpose model.OTPPurpose) (bool, error)
}

func (m *mockThrottleRepo) Reserve(ctx context.Context, email string, purpose model.OTPPurpose) (bool, error) {
	if m.reserveFunc == nil {
		return true, nil
	}
	return m.reserveFunc(ctx, email, purpose)
}

// mockSender records sent mail; Issue sends from a goroutine, so access is
// guarded and a channel signals completion for tests that want to wait.
type mockSender struct {
	mu        sync.Mutex
	lastEmail string
	lastCode  string
	lastRef   string
	callCount int
	err       error
	sent      chan struct{}
}

func newMockSender() *mockSender {
	return &mockSender{sent: make(chan struct{}, 8)}
}

func (m *mockSender) SendOTP(toEmail, code, reference string, purpose model.OTPPurpose) error {
	m.mu.Lock()
	m.lastEmail = toEmail
	m.lastCode = code
	m.lastRef = reference
	m.callCount++
	err := m.err
	m.mu.Unlock()

	m.sent <- struct{}{}
	return err
}

func (m *mockSender) last() (string, string, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastEmail, m.lastCode, m.lastRef
}
