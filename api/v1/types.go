package v1

import (
	"encoding/xml"
	"net/http"

	"github.com/go-chi/render"
)

// PeriodType is the unit of TimeToElapse.
type PeriodType string

const (
	PeriodTypeDays   PeriodType = "days"
	PeriodTypeWeeks  PeriodType = "weeks"
	PeriodTypeMonths PeriodType = "months"
)

// Region describes the population the estimate is made for.
type Region struct {
	Name                     string  `json:"name" xml:"name" validate:"required"`
	AvgAge                   float64 `json:"avgAge" xml:"avgAge" validate:"required,gt=0"`
	AvgDailyIncomeInUSD      float64 `json:"avgDailyIncomeInUSD" xml:"avgDailyIncomeInUSD" validate:"required,gt=0"`
	AvgDailyIncomePopulation float64 `json:"avgDailyIncomePopulation" xml:"avgDailyIncomePopulation" validate:"required,gt=0,lte=1"`
}

// EstimateRequest is the body of an estimation request. Every field is required
// and must be non-zero.
type EstimateRequest struct {
	Region            Region     `json:"region" xml:"region"`
	PeriodType        PeriodType `json:"periodType" xml:"periodType" validate:"required,period_type"`
	TimeToElapse      float64    `json:"timeToElapse" xml:"timeToElapse" validate:"required,gt=0"`
	ReportedCases     int64      `json:"reportedCases" xml:"reportedCases" validate:"required,gt=0"`
	Population        int64      `json:"population" xml:"population" validate:"required,gt=0"`
	TotalHospitalBeds int64      `json:"totalHospitalBeds" xml:"totalHospitalBeds" validate:"required,gt=0"`
}

// Impact is the projection of a single scenario.
type Impact struct {
	CurrentlyInfected                  int64   `json:"currentlyInfected" xml:"currentlyInfected"`
	InfectionsByRequestedTime          int64   `json:"infectionsByRequestedTime" xml:"infectionsByRequestedTime"`
	SevereCasesByRequestedTime         float64 `json:"severeCasesByRequestedTime" xml:"severeCasesByRequestedTime"`
	HospitalBedsByRequestedTime        int64   `json:"hospitalBedsByRequestedTime" xml:"hospitalBedsByRequestedTime"`
	CasesForICUByRequestedTime         float64 `json:"casesForICUByRequestedTime" xml:"casesForICUByRequestedTime"`
	CasesForVentilatorsByRequestedTime float64 `json:"casesForVentilatorsByRequestedTime" xml:"casesForVentilatorsByRequestedTime"`
	DollarsInFlight                    int64   `json:"dollarsInFlight" xml:"dollarsInFlight"`
}

// EstimateReply echoes the request and carries both scenarios.
// It is rendered as {data, impact, severeImpact} in JSON and YAML and as
// <root><data/><impact/><severeImpact/></root> in XML.
type EstimateReply struct {
	XMLName      xml.Name        `json:"-" xml:"root"`
	Data         EstimateRequest `json:"data" xml:"data"`
	Impact       Impact          `json:"impact" xml:"impact"`
	SevereImpact Impact          `json:"severeImpact" xml:"severeImpact"`
}

func (e *EstimateReply) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, http.StatusOK)
	return nil
}

const StatusError = "Error"

// ErrorReply is the body of every non-2xx response.
type ErrorReply struct {
	HTTPStatusCode int `json:"-" xml:"-"`

	Status  string `json:"status" xml:"status"`
	Message string `json:"message" xml:"message"`
}

func NewErrorReply(statusCode int, message string) *ErrorReply {
	return &ErrorReply{HTTPStatusCode: statusCode, Status: StatusError, Message: message}
}

func (e *ErrorReply) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}
