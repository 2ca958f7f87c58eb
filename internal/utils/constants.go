package utils

import "time"

// Application Constants
const (
	AppName    = "TagAlong"
	AppVersion = "1.0.0"

	// Default values
	DefaultLanguage    = "en"
	DefaultCurrency    = "INR"
	DefaultCountryCode = "+91"
	DefaultTimeZone    = "Asia/Kolkata"

	// Authentication
	JWTAccessTokenTTL = 24 * time.Hour
	PasswordMinLength = 8

	// Ride Constants
	MaxBikeSeats       = 1
	MaxCarSeats        = 4
	MinSuggestionChars = 2

	// Fare rate table (rupees)
	BikeRatePerKM = 7
	CarRatePerKM  = 14
	BikeMinFare   = 30
	CarMinFare    = 60

	// Chat Constants
	ReplyEchoLimit    = 30
	DefaultReplyDelay = 2 * time.Second

	// Response statuses
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized access"
)
