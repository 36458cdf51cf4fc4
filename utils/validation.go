package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNotEmpty checks if a slice is not empty
func ValidateNotEmpty[T any](slice []T, fieldName string) error {
	if len(slice) == 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be empty", fieldName))
	}
	return nil
}

// ValidateSplitType checks that a split type is one of the supported kinds
func ValidateSplitType(splitType string) error {
	switch splitType {
	case SplitTypeEqual, SplitTypePercentage, SplitTypeExact:
		return nil
	}
	return NewValidationError(fmt.Sprintf("unknown split type %q", splitType))
}

// ValidateSplitSum checks that the split amounts sum to the expense amount
// within the permitted tolerance
func ValidateSplitSum(amount, splitSum float64) error {
	if !WithinTolerance(amount, splitSum) {
		return NewValidationError(fmt.Sprintf(
			"split amounts (%.2f) do not add up to the expense amount (%.2f)", splitSum, amount))
	}
	return nil
}

// ValidateDistinct checks that two user ids differ
func ValidateDistinct(a, b, message string) error {
	if a == b {
		return NewValidationError(message)
	}
	return nil
}
