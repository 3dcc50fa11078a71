package model

// Creator is the issuer/signatory of an invoice.
type Creator struct {
	Name string
	// StampFilename is an optional path to a stamp or signature image
	// drawn by the PDF renderer.
	StampFilename string
}

// NewCreator creates a creator. Name is required.
func NewCreator(name string) (*Creator, error) {
	if name == "" {
		return nil, NewValidationError("name", nil, "required", "creator name must not be empty")
	}
	return &Creator{Name: name}, nil
}
