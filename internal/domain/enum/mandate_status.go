package enum

// MandateStatus tracks the legal mandate pipeline, separate from the
// primary sales status
type MandateStatus string

const (
	MandatePending    MandateStatus = "Pending"
	MandateInProgress MandateStatus = "In Progress"
	MandateCompleted  MandateStatus = "Completed"
)

func (m MandateStatus) String() string {
	return string(m)
}

func (m MandateStatus) IsValid() bool {
	switch m {
	case MandatePending, MandateInProgress, MandateCompleted:
		return true
	}
	return false
}
