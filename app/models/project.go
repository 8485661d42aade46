package models

import "slices"

// Validate checks if the project meets all validation requirements
func (p *Project) Validate() error {
	if err := validate.Struct(p); err != nil {
		return toValidationError(err)
	}
	return nil
}

// Summary returns the long description, falling back to the short one.
func (p Project) Summary() string {
	if p.LongDescription != "" {
		return p.LongDescription
	}
	return p.Description
}

// Clone returns a copy that shares no slices with p.
func (p Project) Clone() Project {
	p.Tags = slices.Clone(p.Tags)
	return p
}
