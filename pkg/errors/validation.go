package errors

// Input validation helpers for the layout parameters. Each returns a
// structured *Error with ErrCodeInvalidInput so the CLI can surface a
// consistent message before any computation runs.

// MinInnerRange is the inclusive valid range for the innermost band minimum.
const (
	MinInnerFloor   = 1
	MinInnerCeiling = 50
)

// ValidateDimensions checks that fingerprint width and height are positive.
func ValidateDimensions(width, height float64) error {
	if width <= 0 {
		return New(ErrCodeInvalidInput, "fingerprint width must be positive, got %g", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidInput, "fingerprint height must be positive, got %g", height)
	}
	return nil
}

// ValidateSpacing checks that the band spacing percentage is positive.
func ValidateSpacing(percent float64) error {
	if percent <= 0 {
		return New(ErrCodeInvalidInput, "band spacing must be positive, got %g%%", percent)
	}
	return nil
}

// ValidateMinInner checks that the innermost band minimum is within [1, 50].
func ValidateMinInner(n int) error {
	if n < MinInnerFloor || n > MinInnerCeiling {
		return New(ErrCodeInvalidInput,
			"minimum inner fingerprints must be between %d and %d, got %d",
			MinInnerFloor, MinInnerCeiling, n)
	}
	return nil
}

// ValidateMargin checks that the page margin is non-negative.
func ValidateMargin(margin float64) error {
	if margin < 0 {
		return New(ErrCodeInvalidInput, "margin must be non-negative, got %g", margin)
	}
	return nil
}
