package report

// IrregularityType is the closed set of schedule deviations the classifier
// emits. Values double as the Turkish display labels shown in the admin UI
// and in exports.
type IrregularityType string

const (
	IrregularityLateArrival    IrregularityType = "Geç Giriş"
	IrregularityEarlyDeparture IrregularityType = "Erken Çıkış"
	IrregularityLongLunch      IrregularityType = "Uzun Mola"
	IrregularityShortWorkday   IrregularityType = "Kısa Çalışma Günü"
	IrregularityMissingPunch   IrregularityType = "Eksik Giriş/Çıkış Kaydı"
	IrregularityMissingLunch   IrregularityType = "Eksik Mola Kaydı"
)

var IrregularityTypeValues = []string{
	string(IrregularityLateArrival),
	string(IrregularityEarlyDeparture),
	string(IrregularityLongLunch),
	string(IrregularityShortWorkday),
	string(IrregularityMissingPunch),
	string(IrregularityMissingLunch),
}

// Irregularity is one detected deviation for one employee-day. Several
// records of different types may exist for the same employee and date.
// Expected/Actual carry wall-clock times, Duration/ExpectedDuration carry
// formatted durations; each is set only where it makes sense for the type.
type Irregularity struct {
	EmployeeID       string           `json:"employee_id"`
	EmployeeName     string           `json:"employee_name"`
	DepartmentName   *string          `json:"department_name,omitempty"`
	Date             string           `json:"date"`
	Type             IrregularityType `json:"type"`
	Details          string           `json:"details"`
	Expected         *string          `json:"expected,omitempty"`
	Actual           *string          `json:"actual,omitempty"`
	ExpectedDuration *string          `json:"expected_duration,omitempty"`
	Duration         *string          `json:"duration,omitempty"`
}
