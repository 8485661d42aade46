package models

import "slices"

// Validate checks if the post meets all validation requirements
func (b *BlogPost) Validate() error {
	if err := validate.Struct(b); err != nil {
		return toValidationError(err)
	}

	if b.Date.IsZero() {
		return &ValidationError{Field: "BlogPost.Date", Message: "date cannot be zero"}
	}

	return nil
}

// Clone returns a copy that shares no slices with b.
func (b BlogPost) Clone() BlogPost {
	b.Tags = slices.Clone(b.Tags)
	return b
}
