package response

import "time"

const (
	DateTimeFormat = time.RFC3339

	MessageSuccess      = "Success"
	MessageUnauthorized = "Unauthorized"
	MessageInternal     = "Something went wrong"
	MessageValidation   = "Invalid request"

	CodeSuccess      = 0
	CodeValidation   = 400
	CodeUnauthorized = 401
	CodeInternal     = 500
)
