package model

import (
	"math"
	"regexp"
	"unicode/utf8"
)

const (
	maxNameLen = 50
	maxTextLen = 1000
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// lengthBetween counts characters, not bytes.
func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func validateFirstName(v string) error {
	if !lengthBetween(v, 1, maxNameLen) {
		return Validation("First name must not be empty and must not exceed 50 characters")
	}
	return nil
}

func validateLastName(v string) error {
	if !lengthBetween(v, 1, maxNameLen) {
		return Validation("Last name must not be empty and must not exceed 50 characters")
	}
	return nil
}

func validateEmail(v string) error {
	if !emailPattern.MatchString(v) {
		return Validation("Incorrect email format")
	}
	return nil
}

func validateAmenityName(v string) error {
	if !lengthBetween(v, 1, maxNameLen) {
		return Validation("Name must not be empty and must not exceed 50 characters")
	}
	return nil
}

func validateTitle(v string) error {
	if !lengthBetween(v, 1, maxNameLen) {
		return Validation("Title must not be empty and must not exceed 50 characters")
	}
	return nil
}

func validateDescription(v string) error {
	if utf8.RuneCountInString(v) > maxTextLen {
		return Validation("Description must not exceed 1000 characters")
	}
	return nil
}

func validatePrice(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Validation("Price must be a non-negative number")
	}
	return nil
}

func validateLatitude(v float64) error {
	if math.IsNaN(v) || v < -90 || v > 90 {
		return Validation("Latitude must be between -90 and 90")
	}
	return nil
}

func validateLongitude(v float64) error {
	if math.IsNaN(v) || v < -180 || v > 180 {
		return Validation("Longitude must be between -180 and 180")
	}
	return nil
}

func validateText(v string) error {
	if utf8.RuneCountInString(v) > maxTextLen {
		return Validation("Text must not exceed 1000 characters")
	}
	return nil
}

func validateRating(v int) error {
	if v < 1 || v > 5 {
		return Validation("Rating must be between 1 and 5")
	}
	return nil
}

// RatingFromNumber converts a decoded JSON number into a rating,
// rejecting fractional values.
func RatingFromNumber(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, Validation("Rating must be an integer")
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, Validation("Rating must be between 1 and 5")
	}
	rating := int(v)
	if err := validateRating(rating); err != nil {
		return 0, err
	}
	return rating, nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
