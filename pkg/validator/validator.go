package validator

import "strings"

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// Presence checks only. Format rules for usernames, emails and passwords are
// deliberately not enforced here.

func ValidateRegister(username, email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(username) == "" {
		errs.Add("username", "Username is required")
	}
	if strings.TrimSpace(email) == "" {
		errs.Add("email", "Email is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateLogin(usernameOrEmail, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(usernameOrEmail) == "" {
		errs.Add("usernameOrEmail", "Username or email is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateSubmit(sideA, sideB []string) ValidationErrors {
	errs := make(ValidationErrors)

	if len(sideA) == 0 {
		errs.Add("sideA", "Side A arguments are required")
	}
	if len(sideB) == 0 {
		errs.Add("sideB", "Side B arguments are required")
	}

	return errs
}
