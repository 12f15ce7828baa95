package events

// StaffHiredEventType is the event type identifier.
const StaffHiredEventType = "STAFF_HIRED"

// StaffHired records a new staff member joining the payroll.
type StaffHired struct {
	StaffID string
	Role    string
	Wage    float64
}

// BuildStaffHired creates a new StaffHired event.
func BuildStaffHired(staffID string, role string, wage float64) StaffHired {
	return StaffHired{
		StaffID: staffID,
		Role:    role,
		Wage:    wage,
	}
}

// EventType returns the event type identifier.
func (e StaffHired) EventType() string {
	return StaffHiredEventType
}

// StaffFiredEventType is the event type identifier.
const StaffFiredEventType = "STAFF_FIRED"

// StaffFired records a staff member leaving with severance paid out.
type StaffFired struct {
	StaffID   string
	Role      string
	Severance float64
}

// BuildStaffFired creates a new StaffFired event.
func BuildStaffFired(staffID string, role string, severance float64) StaffFired {
	return StaffFired{
		StaffID:   staffID,
		Role:      role,
		Severance: severance,
	}
}

// EventType returns the event type identifier.
func (e StaffFired) EventType() string {
	return StaffFiredEventType
}
