package constants

// ==========================
// ✅ Employee categories
// ==========================
const (
	TypeMasterCrew        = "MasterCrew"
	TypeSeniorCrew        = "SeniorCrew"
	TypeIntern            = "Intern"
	TypeSpecialistTrainee = "SpecialistTrainee"
	TypeLocalCrew         = "LocalCrew"
	TypeForeignCrew       = "ForeignCrew"
	TypeDirectIntake      = "DirectIntake"
)

var AllEmployeeTypes = []string{
	TypeMasterCrew,
	TypeSeniorCrew,
	TypeIntern,
	TypeSpecialistTrainee,
	TypeLocalCrew,
	TypeForeignCrew,
	TypeDirectIntake,
}

// Categories that carry the training-form / shift-certification cluster.
var ShiftCertifiedTypes = []string{
	TypeSeniorCrew,
	TypeSpecialistTrainee,
	TypeLocalCrew,
	TypeForeignCrew,
}

// ==========================
// ✅ Employee statuses
// ==========================
const (
	StatusInProgress = "InProgress"
	StatusPassed     = "Passed"
	StatusTerminated = "Terminated"
	StatusPermStaff  = "PermStaff"
)

var AllEmployeeStatuses = []string{
	StatusInProgress,
	StatusPassed,
	StatusTerminated,
	StatusPermStaff,
}

func IsValidEmployeeType(t string) bool {
	for _, v := range AllEmployeeTypes {
		if v == t {
			return true
		}
	}
	return false
}

func IsValidEmployeeStatus(s string) bool {
	for _, v := range AllEmployeeStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsShiftCertifiedType(t string) bool {
	for _, v := range ShiftCertifiedTypes {
		if v == t {
			return true
		}
	}
	return false
}
