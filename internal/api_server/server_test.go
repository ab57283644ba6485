package apiserver_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/covid19-impact/estimator/api/v1"
	"github.com/covid19-impact/estimator/internal/accesslog"
	apiserver "github.com/covid19-impact/estimator/internal/api_server"
	handlers "github.com/covid19-impact/estimator/internal/handlers/v1"
	"github.com/covid19-impact/estimator/internal/service"
	"github.com/covid19-impact/estimator/pkg/requestid"
)

const estimateBody = `{
	"region": {"name": "Africa", "avgAge": 19.7, "avgDailyIncomeInUSD": 5, "avgDailyIncomePopulation": 0.71},
	"periodType": "days",
	"timeToElapse": 58,
	"reportedCases": 674,
	"population": 66622705,
	"totalHospitalBeds": 1380614
}`

var _ = Describe("router", func() {
	var (
		router chi.Router
		sink   *accesslog.FileSink
	)

	BeforeEach(func() {
		sink = accesslog.NewFileSink(filepath.Join(GinkgoT().TempDir(), "logs.txt"))
		swagger, err := api.GetSwagger()
		Expect(err).ToNot(HaveOccurred())

		h := handlers.NewServiceHandler(
			service.NewEstimationService(),
			service.NewAccessLogService(sink),
			swagger,
		)
		router = apiserver.NewRouter(h, sink, []string{"*"})
	})

	serve := func(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	logLines := func() []string {
		content, err := sink.Read()
		Expect(err).ToNot(HaveOccurred())
		if len(content) == 0 {
			return nil
		}
		return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	}

	It("serves the welcome page and logs it", func() {
		rec := serve(http.MethodGet, apiserver.APIPrefix, "", nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal(handlers.WelcomeMessage))

		lines := logLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(MatchRegexp(`^GET\t/api/v1/on-covid-19\t200\t\d+ ms$`))
	})

	It("serves all estimation routes", func() {
		json := map[string]string{"Content-Type": "application/json"}

		Expect(serve(http.MethodPost, apiserver.APIPrefix, estimateBody, json).Code).To(Equal(http.StatusOK))
		Expect(serve(http.MethodPost, apiserver.APIPrefix+"/json", estimateBody, json).Code).To(Equal(http.StatusOK))

		rec := serve(http.MethodPost, apiserver.APIPrefix+"/xml", estimateBody, json)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("<severeImpact>"))

		lines := logLines()
		Expect(lines).To(HaveLen(3))
		Expect(lines[2]).To(HavePrefix("POST\t/api/v1/on-covid-19/xml\t200\t"))
	})

	It("logs rejected estimations", func() {
		rec := serve(http.MethodPost, apiserver.APIPrefix+"/json", `{}`, map[string]string{"Content-Type": "application/json"})
		Expect(rec.Code).To(Equal(http.StatusBadRequest))

		lines := logLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(HavePrefix("POST\t/api/v1/on-covid-19/json\t400\t"))
	})

	It("returns previously logged requests on both logs methods", func() {
		serve(http.MethodGet, apiserver.APIPrefix, "", nil)

		rec := serve(http.MethodGet, apiserver.APIPrefix+"/logs", "", nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchRegexp(`^GET\t/api/v1/on-covid-19\t200\t\d+ ms\n$`))

		rec = serve(http.MethodPost, apiserver.APIPrefix+"/logs", "", nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(strings.Count(rec.Body.String(), "\n")).To(Equal(2))
	})

	It("replies 404 under the api prefix and logs it", func() {
		rec := serve(http.MethodGet, apiserver.APIPrefix+"/nowhere", "", nil)
		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(rec.Body.String()).To(MatchJSON(`{"status":"Error","message":"Not Found"}`))

		lines := logLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(HavePrefix("GET\t/api/v1/on-covid-19/nowhere\t404\t"))
	})

	It("replies 405 for a wrong method", func() {
		rec := serve(http.MethodPut, apiserver.APIPrefix+"/json", "", nil)
		Expect(rec.Code).To(Equal(http.StatusMethodNotAllowed))
		Expect(rec.Body.String()).To(MatchJSON(`{"status":"Error","message":"Method Not Allowed"}`))

		lines := logLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(HavePrefix("PUT\t/api/v1/on-covid-19/json\t405\t"))
	})

	It("does not log requests outside the api prefix", func() {
		Expect(serve(http.MethodGet, "/health", "", nil).Code).To(Equal(http.StatusOK))

		rec := serve(http.MethodGet, "/nowhere", "", nil)
		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(rec.Body.String()).To(MatchJSON(`{"status":"Error","message":"Not Found"}`))

		Expect(logLines()).To(BeEmpty())
	})

	It("propagates the request id", func() {
		rec := serve(http.MethodGet, apiserver.APIPrefix, "", map[string]string{requestid.Header: "req-42"})
		Expect(rec.Header().Get(requestid.Header)).To(Equal("req-42"))

		rec = serve(http.MethodGet, apiserver.APIPrefix, "", nil)
		Expect(rec.Header().Get(requestid.Header)).ToNot(BeEmpty())
	})

	It("answers cors preflight requests", func() {
		rec := serve(http.MethodOptions, apiserver.APIPrefix+"/json", "", map[string]string{
			"Origin":                        "https://dashboard.example",
			"Access-Control-Request-Method": http.MethodPost,
		})
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).ToNot(BeEmpty())
		Expect(logLines()).To(BeEmpty())
	})
})
