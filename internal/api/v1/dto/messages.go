package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps struct field + failing tag to the message shown to
// API consumers.
var fieldMessages = map[string]map[string]string{
	"FirstName": {
		"required": "A first name is required",
	},
	"LastName": {
		"required": "A last name is required",
	},
	"EmailAddress": {
		"required": "An email address is required",
		"email":    "Please provide a valid email address",
	},
	"Password": {
		"required": "A password is required",
		"min":      "The password should be between 8 and 20 characters in length",
		"max":      "The password should be between 8 and 20 characters in length",
	},
	"Title": {
		"required": "A title is required",
	},
	"Description": {
		"required": "A description is required",
	},
}

// ValidationMessages translates validator errors into the ordered list of
// human-readable messages surfaced in the 400 {"errors": [...]} body.
// Non-validator errors yield an empty list.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.StructField()][fe.Tag()]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, "Invalid value for "+fe.Field())
	}
	return messages
}
