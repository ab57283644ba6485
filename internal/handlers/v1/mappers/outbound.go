package mappers

import (
	api "github.com/covid19-impact/estimator/api/v1"
	"github.com/covid19-impact/estimator/internal/estimation"
	"github.com/covid19-impact/estimator/internal/service"
)

func RegionToApi(region estimation.Region) api.Region {
	return api.Region{
		Name:                     region.Name,
		AvgAge:                   region.AvgAge,
		AvgDailyIncomeInUSD:      region.AvgDailyIncomeInUSD,
		AvgDailyIncomePopulation: region.AvgDailyIncomePopulation,
	}
}

func InputToApi(input estimation.Input) api.EstimateRequest {
	return api.EstimateRequest{
		Region:            RegionToApi(input.Region),
		PeriodType:        api.PeriodType(input.PeriodType),
		TimeToElapse:      input.TimeToElapse,
		ReportedCases:     input.ReportedCases,
		Population:        input.Population,
		TotalHospitalBeds: input.TotalHospitalBeds,
	}
}

func ImpactToApi(impact estimation.Impact) api.Impact {
	return api.Impact{
		CurrentlyInfected:                  impact.CurrentlyInfected,
		InfectionsByRequestedTime:          impact.InfectionsByRequestedTime,
		SevereCasesByRequestedTime:         impact.SevereCasesByRequestedTime,
		HospitalBedsByRequestedTime:        impact.HospitalBedsByRequestedTime,
		CasesForICUByRequestedTime:         impact.CasesForICUByRequestedTime,
		CasesForVentilatorsByRequestedTime: impact.CasesForVentilatorsByRequestedTime,
		DollarsInFlight:                    impact.DollarsInFlight,
	}
}

// EstimationResultToApi converts a service result to the {data, impact, severeImpact} reply.
func EstimationResultToApi(result service.EstimationResult) *api.EstimateReply {
	return &api.EstimateReply{
		Data:         InputToApi(result.Input),
		Impact:       ImpactToApi(result.Impact),
		SevereImpact: ImpactToApi(result.SevereImpact),
	}
}
