package estimation

// PeriodType is the unit in which the requested time window is expressed.
type PeriodType string

const (
	PeriodDays   PeriodType = "days"
	PeriodWeeks  PeriodType = "weeks"
	PeriodMonths PeriodType = "months"
)

// Calculator encapsulates one projection scenario (e.g. "best case", "severe case").
type Calculator interface {
	// Name returns the scenario name, used as the key in Engine results.
	Name() string
	// Calculate projects the impact of the input over the given number of normalized days.
	Calculate(input Input, days int) (Impact, error)
}

// Region describes the population the estimate is made for.
type Region struct {
	Name                     string
	AvgAge                   float64
	AvgDailyIncomeInUSD      float64
	AvgDailyIncomePopulation float64 // fraction of the population earning AvgDailyIncomeInUSD (0-1)
}

// Input is a validated estimation request.
type Input struct {
	Region            Region
	PeriodType        PeriodType
	TimeToElapse      float64
	ReportedCases     int64
	Population        int64
	TotalHospitalBeds int64
}

// Impact is the projection of a single scenario
type Impact struct {
	CurrentlyInfected                  int64
	InfectionsByRequestedTime          int64
	SevereCasesByRequestedTime         float64
	HospitalBedsByRequestedTime        int64 // negative when demand exceeds the reserved capacity
	CasesForICUByRequestedTime         float64
	CasesForVentilatorsByRequestedTime float64
	DollarsInFlight                    int64
}
