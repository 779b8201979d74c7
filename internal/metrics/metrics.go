// Package metrics exposes Prometheus counters for the word API.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors registered on one registry.
type Metrics struct {
	reg *prometheus.Registry

	Requests    *prometheus.CounterVec
	WordChecks  *prometheus.CounterVec
	Evaluations *prometheus.CounterVec
	Rounds      prometheus.Counter
}

// New registers the collectors on a fresh registry, plus Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordapi_http_requests_total",
			Help: "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		WordChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordapi_word_checks_total",
			Help: "Dictionary membership checks by result.",
		}, []string{"valid"}),
		Evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordapi_evaluations_total",
			Help: "Guess evaluations by outcome (solved, unsolved, rejected).",
		}, []string{"outcome"}),
		Rounds: f.NewCounter(prometheus.CounterOpts{
			Name: "wordapi_rounds_issued_total",
			Help: "Hidden-target rounds issued.",
		}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// ObserveRequest counts one finished request.
func (m *Metrics) ObserveRequest(route, method string, code int) {
	if route == "" {
		route = "unmatched"
	}
	m.Requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
}

// ObserveCheck counts one /check-word lookup.
func (m *Metrics) ObserveCheck(valid bool) {
	m.WordChecks.WithLabelValues(strconv.FormatBool(valid)).Inc()
}

// ObserveEvaluation counts one guess evaluation.
func (m *Metrics) ObserveEvaluation(outcome string) {
	m.Evaluations.WithLabelValues(outcome).Inc()
}
