package errors

var (
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "Insufficient balance in your account.",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
	ErrRequestNotFound = &DomainError{
		Code:    "REQUEST_NOT_FOUND",
		Message: "payment request not found",
	}
	ErrInvalidRequestAction = &DomainError{
		Code:    "INVALID_REQUEST_ACTION",
		Message: "action must be accept or decline",
	}
)
