package models

// SearchQuery is the ephemeral filter state of one search session.
// AppliedPincode is either empty or exactly six digits.
type SearchQuery struct {
	RawPincodeInput         string   `json:"rawPincodeInput"`
	AppliedPincode          string   `json:"appliedPincode"`
	SelectedSpecializations []string `json:"selectedSpecializations"`
}

// FallbackPrompt is the open pincode-fallback dialog: the pincode the
// user entered and the city suggested from its 3-digit prefix. A nil
// prompt means the dialog is closed.
type FallbackPrompt struct {
	Pincode string `json:"pincode"`
	City    string `json:"city"`
}

// SearchSession holds one user's search state between requests.
type SearchSession struct {
	SessionID string          `json:"sessionId"`
	UserID    string          `json:"userId"`
	Query     SearchQuery     `json:"query"`
	Fallback  *FallbackPrompt `json:"fallback,omitempty"`
}
