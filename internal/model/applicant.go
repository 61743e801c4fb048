package model

// ApplicantStatus は応募者の選考状態を表す。
type ApplicantStatus string

const (
	// StatusUndecided は未決定の応募者を示す。
	StatusUndecided ApplicantStatus = "undecided"
	// StatusAccepted は採用決定済みの応募者を示す。
	StatusAccepted ApplicantStatus = "accepted"
	// StatusDenied は不採用決定済みの応募者を示す。
	StatusDenied ApplicantStatus = "denied"
)

// IsValid はステータスが定義済みのいずれかであるかを返す。
func (s ApplicantStatus) IsValid() bool {
	switch s {
	case StatusUndecided, StatusAccepted, StatusDenied:
		return true
	}
	return false
}

// Applicant は採用ポジションに応募した学生を表す。
// DecidedAt/DecidedByは決定時に同時に設定され、再オープン時に同時にクリアされる。
// 適格性分類は保存せず、読み取りのたびに現行ルールで再計算する。
type Applicant struct {
	ID              string
	Name            string
	StudentID       string
	Position        string
	Address         string
	Age             int
	Birthday        string
	CitizenshipISO3 string
	Email           string
	AppliedAt       string
	Visa            string
	Status          ApplicantStatus
	DecidedAt       *string
	DecidedBy       *string
	CreditHours     int
}

// Employee は雇用中の学生従業員を表す。
// workStatusは保存せず、常にmaxHoursPerWeekとworkedHoursPerWeekから導出する。
type Employee struct {
	ID                 string
	StudentID          string
	Name               string
	Position           string
	HourlyPay          float64
	HireDate           string
	Supervisor         string
	Email              string
	Phone              string
	MaxHoursPerWeek    float64
	WorkedHoursPerWeek float64
}

// EligibilityRule は適格性判定のポリシーしきい値を表す。
// レコードは高々1件（シングルトン）で、存在しない場合は既定値が使われる。
type EligibilityRule struct {
	MinAge           int
	MinCreditHours   int
	AllowedCountries []string
}

// DefaultEligibilityRule はルールレコードが存在しない場合の既定値を返す。
func DefaultEligibilityRule() EligibilityRule {
	return EligibilityRule{
		MinAge:           18,
		MinCreditHours:   12,
		AllowedCountries: []string{},
	}
}
