package mappers

import (
	api "github.com/covid19-impact/estimator/api/v1"
	"github.com/covid19-impact/estimator/internal/estimation"
)

func RegionFormApi(region api.Region) estimation.Region {
	return estimation.Region{
		Name:                     region.Name,
		AvgAge:                   region.AvgAge,
		AvgDailyIncomeInUSD:      region.AvgDailyIncomeInUSD,
		AvgDailyIncomePopulation: region.AvgDailyIncomePopulation,
	}
}

// EstimateRequestFormApi converts a validated request to the estimation input.
func EstimateRequestFormApi(req api.EstimateRequest) estimation.Input {
	return estimation.Input{
		Region:            RegionFormApi(req.Region),
		PeriodType:        estimation.PeriodType(req.PeriodType),
		TimeToElapse:      req.TimeToElapse,
		ReportedCases:     req.ReportedCases,
		Population:        req.Population,
		TotalHospitalBeds: req.TotalHospitalBeds,
	}
}
