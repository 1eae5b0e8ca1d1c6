package errors

const (
	UnauthorizedAccess   = "unauthorized access"
	InvalidBookingData   = "Invalid booking data"
	BookingSaveError     = "Error saving booking data"
	InvalidRoomIDError   = "Invalid room ID"
	InvalidEmailFormat   = "Invalid email format"
	InvalidRequestFormat = "Invalid request format"
	InvalidPaymentData   = "Invalid payment data"
	PaymentIntentError   = "Error creating payment intent"
	DatabaseError        = "Database error"
)
