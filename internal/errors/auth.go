package errors

var (
	ErrInvalidOTP = &DomainError{
		Code:    "INVALID_OTP",
		Message: "Invalid OTP. Please try again.",
	}
	ErrInvalidToken = &DomainError{
		Code:    "INVALID_TOKEN",
		Message: "invalid or expired session token",
	}
)
