package v1_test

import (
	"encoding/json"
	"encoding/xml"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"

	api "github.com/covid19-impact/estimator/api/v1"
	"github.com/covid19-impact/estimator/internal/accesslog"
	handlers "github.com/covid19-impact/estimator/internal/handlers/v1"
	"github.com/covid19-impact/estimator/internal/service"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	validJSONBody = `{
		"region": {"name": "Africa", "avgAge": 19.7, "avgDailyIncomeInUSD": 4, "avgDailyIncomePopulation": 0.5},
		"periodType": "days",
		"timeToElapse": 10,
		"reportedCases": 10,
		"population": 66622705,
		"totalHospitalBeds": 1000
	}`

	validXMLBody = `<root>
		<region><name>Africa</name><avgAge>19.7</avgAge><avgDailyIncomeInUSD>4</avgDailyIncomeInUSD><avgDailyIncomePopulation>0.5</avgDailyIncomePopulation></region>
		<periodType>weeks</periodType>
		<timeToElapse>2</timeToElapse>
		<reportedCases>10</reportedCases>
		<population>66622705</population>
		<totalHospitalBeds>1000</totalHospitalBeds>
	</root>`

	invalidInputReply = `{"status":"Error","message":"Invalid Input. All values were not provided."}`
)

func newHandler(sink accesslog.Sink) *handlers.ServiceHandler {
	swagger, err := api.GetSwagger()
	Expect(err).ToNot(HaveOccurred())
	return handlers.NewServiceHandler(
		service.NewEstimationService(),
		service.NewAccessLogService(sink),
		swagger,
	)
}

func post(handler http.HandlerFunc, body, contentType, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/on-covid-19", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func expectBestCase(reply api.EstimateReply) {
	Expect(reply.Impact.CurrentlyInfected).To(Equal(int64(100)))
	Expect(reply.Impact.InfectionsByRequestedTime).To(Equal(int64(800)))
	Expect(reply.Impact.SevereCasesByRequestedTime).To(Equal(120.0))
	Expect(reply.Impact.HospitalBedsByRequestedTime).To(Equal(int64(350)))
	Expect(reply.Impact.CasesForICUByRequestedTime).To(Equal(40.0))
	Expect(reply.Impact.CasesForVentilatorsByRequestedTime).To(Equal(16.0))
	Expect(reply.Impact.DollarsInFlight).To(Equal(int64(16000)))
	Expect(reply.SevereImpact.CurrentlyInfected).To(Equal(int64(500)))
	Expect(reply.SevereImpact.HospitalBedsByRequestedTime).To(Equal(int64(-250)))
}

var _ = Describe("estimation handler", func() {
	var h *handlers.ServiceHandler

	BeforeEach(func() {
		h = newHandler(accesslog.NewFileSink(GinkgoT().TempDir() + "/logs.txt"))
	})

	Context("json", func() {
		It("estimates successfully", func() {
			rec := post(h.EstimateJSON, validJSONBody, "application/json", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var reply api.EstimateReply
			Expect(json.Unmarshal(rec.Body.Bytes(), &reply)).To(Succeed())
			Expect(reply.Data.Region.Name).To(Equal("Africa"))
			Expect(reply.Data.PeriodType).To(Equal(api.PeriodTypeDays))
			expectBestCase(reply)
		})

		It("reads a body without content type as json", func() {
			rec := post(h.EstimateJSON, validJSONBody, "", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("answers very long horizons with saturated numbers", func() {
			body := strings.Replace(validJSONBody, `"periodType": "days"`, `"periodType": "months"`, 1)
			body = strings.Replace(body, `"timeToElapse": 10`, `"timeToElapse": 100000000`, 1)
			rec := post(h.EstimateJSON, body, "application/json", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var reply api.EstimateReply
			Expect(json.Unmarshal(rec.Body.Bytes(), &reply)).To(Succeed())
			Expect(reply.Data.TimeToElapse).To(Equal(100000000.0))
			Expect(reply.Impact.InfectionsByRequestedTime).To(Equal(int64(math.MaxInt64)))
		})

		It("replies json even when xml is accepted", func() {
			rec := post(h.EstimateJSON, validJSONBody, "application/json", "application/xml")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(ContainSubstring("application/json"))
		})
	})

	Context("xml", func() {
		It("estimates successfully from a json body", func() {
			rec := post(h.EstimateXML, validJSONBody, "application/json", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(ContainSubstring("application/xml"))
			Expect(rec.Body.String()).To(HavePrefix("<?xml"))
			Expect(rec.Body.String()).To(ContainSubstring("<root><data><region><name>Africa</name>"))

			var reply api.EstimateReply
			Expect(xml.Unmarshal(rec.Body.Bytes(), &reply)).To(Succeed())
			expectBestCase(reply)
		})

		It("carries the same numbers as json", func() {
			jsonRec := post(h.EstimateJSON, validJSONBody, "application/json", "")
			xmlRec := post(h.EstimateXML, validJSONBody, "application/json", "")

			var fromJSON, fromXML api.EstimateReply
			Expect(json.Unmarshal(jsonRec.Body.Bytes(), &fromJSON)).To(Succeed())
			Expect(xml.Unmarshal(xmlRec.Body.Bytes(), &fromXML)).To(Succeed())

			Expect(fromXML.Data).To(Equal(fromJSON.Data))
			Expect(fromXML.Impact).To(Equal(fromJSON.Impact))
			Expect(fromXML.SevereImpact).To(Equal(fromJSON.SevereImpact))
		})

		It("accepts an xml body", func() {
			rec := post(h.EstimateXML, validXMLBody, "application/xml", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var reply api.EstimateReply
			Expect(xml.Unmarshal(rec.Body.Bytes(), &reply)).To(Succeed())
			Expect(reply.Data.PeriodType).To(Equal(api.PeriodTypeWeeks))
			// 14 days = 4 doublings
			Expect(reply.Impact.InfectionsByRequestedTime).To(Equal(int64(1600)))
		})
	})

	Context("negotiated", func() {
		It("defaults to json", func() {
			rec := post(h.Estimate, validJSONBody, "application/json", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(ContainSubstring("application/json"))
		})

		It("replies xml when asked for", func() {
			rec := post(h.Estimate, validJSONBody, "application/json", "application/xml")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(ContainSubstring("application/xml"))

			var reply api.EstimateReply
			Expect(xml.Unmarshal(rec.Body.Bytes(), &reply)).To(Succeed())
			expectBestCase(reply)
		})
	})

	Context("invalid input", func() {
		DescribeTable("replies 400 with a json error",
			func(handler func(h *handlers.ServiceHandler) http.HandlerFunc, body, contentType string) {
				rec := post(handler(h), body, contentType, "application/xml")
				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				Expect(rec.Header().Get("Content-Type")).To(ContainSubstring("application/json"))
				Expect(rec.Body.String()).To(MatchJSON(invalidInputReply))
			},
			Entry("missing field", jsonHandler,
				`{"region": {"name": "Africa", "avgAge": 19.7, "avgDailyIncomeInUSD": 4, "avgDailyIncomePopulation": 0.5}, "periodType": "days", "timeToElapse": 10, "population": 5, "totalHospitalBeds": 1000}`,
				"application/json"),
			Entry("zero reported cases", xmlHandler, strings.Replace(validJSONBody, `"reportedCases": 10`, `"reportedCases": 0`, 1), "application/json"),
			Entry("unknown period type", negotiatedHandler, strings.Replace(validJSONBody, `"days"`, `"years"`, 1), "application/json"),
			Entry("missing region", jsonHandler, `{"periodType": "days", "timeToElapse": 10, "reportedCases": 10, "population": 5, "totalHospitalBeds": 1000}`, "application/json"),
			Entry("malformed json", jsonHandler, `{"region":`, "application/json"),
			Entry("empty body", xmlHandler, ``, "application/json"),
			Entry("string where a number is expected", jsonHandler, strings.Replace(validJSONBody, `"population": 66622705`, `"population": "many"`, 1), "application/json"),
			Entry("count written as a decimal", jsonHandler, strings.Replace(validJSONBody, `"reportedCases": 10`, `"reportedCases": 10.0`, 1), "application/json"),
			Entry("form body", jsonHandler, "periodType=days&timeToElapse=10", "application/x-www-form-urlencoded"),
		)
	})
})

func jsonHandler(h *handlers.ServiceHandler) http.HandlerFunc       { return h.EstimateJSON }
func xmlHandler(h *handlers.ServiceHandler) http.HandlerFunc        { return h.EstimateXML }
func negotiatedHandler(h *handlers.ServiceHandler) http.HandlerFunc { return h.Estimate }
