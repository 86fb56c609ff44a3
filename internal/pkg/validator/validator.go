// Package validator applies the struct tag rules carried by the domain
// entities and reports failures per field.
package validator

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Validate checks a struct against its validate tags. It returns a
// field-to-rule map of the failures, or nil when everything passes.
func Validate(target any) map[string]string {
	err := v.Struct(target)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
