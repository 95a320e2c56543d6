package services

import (
	"errors"
	"fmt"
	"testing"

	"studyabroad-backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUserRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing name", RegisterRequest{Email: "a@x.com", Password: "pw"}},
		{"missing email", RegisterRequest{Name: "A", Password: "pw"}},
		{"missing password", RegisterRequest{Name: "A", Email: "a@x.com"}},
		{"bad email", RegisterRequest{Name: "A", Email: "not-an-email", Password: "pw"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RegisterUser(tc.req)
			assert.Error(t, err)
		})
	}
}

// Only validator failures count as the caller's fault; storage and hashing
// errors must not be mistaken for bad input.
func TestIsValidationError(t *testing.T) {
	validationErr := validate.Struct(RegisterRequest{})
	require.Error(t, validationErr)

	assert.True(t, IsValidationError(validationErr))
	assert.True(t, IsValidationError(fmt.Errorf("register: %w", validationErr)))

	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(ErrEmailTaken))
	assert.False(t, IsValidationError(errors.New("connection refused")))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	require.NoError(t, err)
	assert.NotEqual(t, "pw", string(hashed))

	assert.NoError(t, bcrypt.CompareHashAndPassword(hashed, []byte("pw")))
	assert.Error(t, bcrypt.CompareHashAndPassword(hashed, []byte("wrong")))
}

// MockAuthService mirrors the register/login surface for the flow test.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(req RegisterRequest) (*models.User, string, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(email, password string) (*models.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func TestRegisterThenLoginFlow(t *testing.T) {
	mockService := new(MockAuthService)

	registered := &models.User{Name: "A", Email: "a@x.com", Role: "student"}
	regReq := RegisterRequest{Name: "A", Email: "a@x.com", Password: "pw"}

	mockService.On("Register", regReq).Return(registered, "token-reg", nil)
	mockService.On("Login", "a@x.com", "pw").Return(registered, "token-login", nil)
	mockService.On("Login", "a@x.com", "wrong").Return(nil, "", ErrInvalidCredentials)

	user, token, err := mockService.Register(regReq)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "student", user.Role)
	assert.Empty(t, user.Password, "hash must never leave the service response")

	user, token, err = mockService.Login("a@x.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "a@x.com", user.Email)

	// wrong password: same uniform error as an unknown email
	user, token, err = mockService.Login("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Empty(t, token)

	mockService.AssertExpectations(t)
}

func TestUniformCredentialError(t *testing.T) {
	// both failure modes must surface the same sentinel
	assert.Equal(t, ErrInvalidCredentials.Error(), "invalid email or password")
}
