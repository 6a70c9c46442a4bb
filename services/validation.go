package services

import (
	"errors"

	"gorm.io/gorm"
)

// field pairs an attribute name with whether a usable value was supplied.
type field struct {
	name string
	set  bool
}

func str(name, value string) field {
	return field{name: name, set: value != ""}
}

func ref(name string, id uint) field {
	return field{name: name, set: id != 0}
}

// requireAll returns a ValidationError for the first unset field.
// Later rules (existence, uniqueness) are only evaluated once this passes.
func requireAll(fields ...field) error {
	for _, f := range fields {
		if !f.set {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// notFound maps a record-not-found lookup error to the domain error,
// passing anything else through unchanged.
func notFound(resource string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return err
}
