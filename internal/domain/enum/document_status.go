package enum

// DocumentStatus tracks the documentation pipeline sub-state
type DocumentStatus string

const (
	DocumentsPending   DocumentStatus = "Pending Documents"
	DocumentsSubmitted DocumentStatus = "Documents Submitted"
	DocumentsReviewed  DocumentStatus = "Documents Reviewed"
	DocumentsSigned    DocumentStatus = "Signed Mandate"
)

func (d DocumentStatus) String() string {
	return string(d)
}

func (d DocumentStatus) IsValid() bool {
	switch d {
	case DocumentsPending, DocumentsSubmitted, DocumentsReviewed, DocumentsSigned:
		return true
	}
	return false
}
