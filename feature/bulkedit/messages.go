package bulkedit

import "fmt"

// Field validation messages.
const (
	MsgRequired          = "Required"
	MsgTooManyValues     = "Too many values"
	MsgInvalidSection    = "Must be a valid section"
	MsgInvalidCategory   = "Must be a valid category"
	MsgAttributeNotFound = "Attribute is not available for this category"
	MsgEmptyValue        = "Value cannot be empty"
	MsgInvalidImageID    = "Must be an uploaded image"
)

func lengthMessage(max int) string {
	return fmt.Sprintf("Must be %d characters or less", max)
}

func countMessage(max int) string {
	return fmt.Sprintf("%s: at most %d are allowed", MsgTooManyValues, max)
}
