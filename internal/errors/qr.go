package errors

var (
	ErrInvalidQRFormat = &DomainError{
		Code:    "INVALID_QR",
		Message: "Invalid QR code format.",
	}
	ErrQRExpired = &DomainError{
		Code:    "QR_EXPIRED",
		Message: "QR code has expired",
	}
	ErrInvalidQRType = &DomainError{
		Code:    "INVALID_QR_TYPE",
		Message: "QR type must be personal or payment",
	}
	ErrQRAmountRequired = &DomainError{
		Code:    "QR_AMOUNT_REQUIRED",
		Message: "amount is required for a payment QR",
	}
)
