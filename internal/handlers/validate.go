package handlers

import (
	"regexp"
	"strings"

	"usermgmt-backend/internal/models"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// normalizeEmail lowercases and trims so lookups and uniqueness are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validateCredentials(email, password string) []models.FieldError {
	var errs []models.FieldError
	if !validEmail(email) {
		errs = append(errs, models.FieldError{Field: "email", Message: "Please provide a valid email address"})
	}
	if len(password) < minPasswordLength {
		errs = append(errs, models.FieldError{Field: "password", Message: "Password must be at least 6 characters long"})
	}
	return errs
}

func validateCreateUser(input models.CreateUserInput) []models.FieldError {
	errs := validateCredentials(input.Email, input.Password)

	first := strings.TrimSpace(input.FirstName)
	if first == "" || len(first) > 100 {
		errs = append(errs, models.FieldError{Field: "first_name", Message: "First name is required and must be less than 100 characters"})
	}
	last := strings.TrimSpace(input.LastName)
	if last == "" || len(last) > 100 {
		errs = append(errs, models.FieldError{Field: "last_name", Message: "Last name is required and must be less than 100 characters"})
	}
	if input.RoleID < 1 {
		errs = append(errs, models.FieldError{Field: "role_id", Message: "Valid role ID is required"})
	}
	if input.CompanyID < 1 {
		errs = append(errs, models.FieldError{Field: "company_id", Message: "Valid company ID is required"})
	}

	return errs
}
