package validator

import (
	"testing"

	"slotswap/modules/auth/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignupRequest_Valid(t *testing.T) {
	req := &dto.SignupRequest{
		Name:     "Alice",
		Email:    "Alice@Example.COM ",
		Password: "supersecret",
	}

	result := ValidateSignupRequest(req)

	assert.False(t, result.HasError())
	// Email is normalized before it reaches storage.
	assert.Equal(t, "alice@example.com", req.Email)
}

func TestValidateSignupRequest_MissingFields(t *testing.T) {
	result := ValidateSignupRequest(&dto.SignupRequest{})

	assert.True(t, result.HasError())
	assert.Len(t, result.Errors, 3)
}

func TestValidateSignupRequest_BadEmail(t *testing.T) {
	req := &dto.SignupRequest{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "supersecret",
	}

	result := ValidateSignupRequest(req)

	assert.True(t, result.HasError())
	assert.Equal(t, "email", result.Errors[0].Field)
}

func TestValidateSignupRequest_ShortPassword(t *testing.T) {
	req := &dto.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "short",
	}

	result := ValidateSignupRequest(req)

	assert.True(t, result.HasError())
	assert.Equal(t, "password", result.Errors[0].Field)
}

func TestValidateLoginRequest_Missing(t *testing.T) {
	result := ValidateLoginRequest(&dto.LoginRequest{})

	assert.True(t, result.HasError())
	assert.Len(t, result.Errors, 2)
}
