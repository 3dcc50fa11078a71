package model

// Correction is an amendment document referencing a prior invoice. It
// carries the full Invoice contract unchanged; the corrected number and
// reason are display data only and never affect totals.
type Correction struct {
	Invoice

	// CorrectedNumber is the number of the invoice being amended.
	CorrectedNumber string
	Reason          string
}

// NewCorrection creates a correction for a prior invoice. The corrected
// number is required; reason is free text.
func NewCorrection(client, provider *Party, creator *Creator, correctedNumber, reason string) (*Correction, error) {
	if correctedNumber == "" {
		return nil, NewValidationError("corrected_number", nil, "required", "correction requires the number of the corrected invoice")
	}
	inv, err := NewInvoice(client, provider, creator)
	if err != nil {
		return nil, err
	}
	return &Correction{
		Invoice:         *inv,
		CorrectedNumber: correctedNumber,
		Reason:          reason,
	}, nil
}
