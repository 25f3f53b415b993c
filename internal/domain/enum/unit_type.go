package enum

// UnitType classifies the electrical connection a lead is about
type UnitType string

const (
	UnitTypeNew      UnitType = "New"
	UnitTypeExisting UnitType = "Existing"
	UnitTypeOther    UnitType = "Other"
)

func (u UnitType) String() string {
	return string(u)
}

func (u UnitType) IsValid() bool {
	switch u {
	case UnitTypeNew, UnitTypeExisting, UnitTypeOther:
		return true
	}
	return false
}
