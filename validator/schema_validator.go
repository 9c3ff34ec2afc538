package validator

import (
	"frontend/model"

	"github.com/Oudwins/zog"
)

var EmailShape = zog.Schema{
	"Email": zog.String().Email().Required(),
}

var TickShape = zog.Schema{
	"Tick": zog.String().Min(1).Required(),
}

var (
	signupSchema   = zog.Struct(EmailShape)
	addStockSchema = zog.Struct(TickShape)
)

// ValidateEmail reports whether s is acceptable as a notification address.
// Failing here blocks the registration call entirely.
func ValidateEmail(s string) bool {
	form := model.SignupForm{Email: s}
	return signupSchema.Validate(&form) == nil
}

// ValidateTicker reports whether s can be submitted to the add endpoint.
func ValidateTicker(s string) bool {
	form := model.AddStockForm{Tick: s}
	return addStockSchema.Validate(&form) == nil
}
