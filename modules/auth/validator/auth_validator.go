package validator

import (
	"regexp"
	"strings"

	"slotswap/core/validation"
	"slotswap/modules/auth/dto"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidateSignupRequest(req *dto.SignupRequest) *validation.Result {
	result := &validation.Result{}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Name == "" {
		result.Add("name", "Name is required")
	} else if len(req.Name) > 100 {
		result.Add("name", "Name cannot exceed 100 characters")
	}

	if req.Email == "" {
		result.Add("email", "Email is required")
	} else if !emailPattern.MatchString(req.Email) {
		result.Add("email", "Email must be a valid email address")
	}

	if len(req.Password) < 8 {
		result.Add("password", "Password must be at least 8 characters long")
	}

	return result
}

func ValidateLoginRequest(req *dto.LoginRequest) *validation.Result {
	result := &validation.Result{}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Email == "" {
		result.Add("email", "Email is required")
	}
	if req.Password == "" {
		result.Add("password", "Password is required")
	}

	return result
}
