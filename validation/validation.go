package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"brigade-service/models"
)

// The same rule set runs on both the submitting side (client package)
// and the accepting side (contact handler), so a record rejected by one
// is rejected by the other.

var (
	// Simple email pattern; the length check runs first so the pattern
	// never sees pathological input.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Australian mobile and landline numbers.
	phonePattern = regexp.MustCompile(`^(\+?61|0)[2-478](?:[ -]?[0-9]){8}$`)

	phoneStrip = regexp.MustCompile(`[\s()-]`)
)

// Validate checks a contact submission against every field rule and
// returns one message per violated rule. An empty slice means valid.
// Rules are not short-circuited.
func Validate(sub models.ContactSubmission) []string {
	var errors []string

	// Name validation
	name := strings.TrimSpace(sub.Name)
	if utf8.RuneCountInString(name) < 2 {
		errors = append(errors, "Name must be at least 2 characters long")
	}
	if sub.Name != "" && utf8.RuneCountInString(name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	// Email validation
	if sub.Email == "" {
		errors = append(errors, "Please provide a valid email address")
	} else if len(sub.Email) > 254 {
		// RFC 5321: maximum email length is 254 characters
		errors = append(errors, "Email address is too long")
	} else if !emailPattern.MatchString(sub.Email) {
		errors = append(errors, "Please provide a valid email address")
	}

	// Phone validation (optional field)
	if strings.TrimSpace(sub.Phone) != "" {
		cleanPhone := phoneStrip.ReplaceAllString(sub.Phone, "")
		if !phonePattern.MatchString(cleanPhone) {
			errors = append(errors, "Please provide a valid Australian phone number")
		}
	}

	// Message validation
	message := strings.TrimSpace(sub.Message)
	if utf8.RuneCountInString(message) < 10 {
		errors = append(errors, "Message must be at least 10 characters long")
	}
	if sub.Message != "" && utf8.RuneCountInString(message) > 2000 {
		errors = append(errors, "Message must be less than 2000 characters")
	}

	return errors
}

// Sanitize normalizes a validated submission for forwarding upstream.
func Sanitize(sub models.ContactSubmission) models.ContactForward {
	return models.ContactForward{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.ToLower(strings.TrimSpace(sub.Email)),
		Phone:   strings.TrimSpace(sub.Phone),
		Message: strings.TrimSpace(sub.Message),
	}
}
