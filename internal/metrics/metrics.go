package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	ProjectsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "projects_created_total",
			Help: "Total projects created",
		},
	)
	ProposalsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "proposals_submitted_total",
			Help: "Total proposals submitted",
		},
	)
	ProposalDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proposal_decisions_total",
			Help: "Total proposal decisions",
		},
		[]string{"status"}, // accepted|rejected
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ProjectsCreated)
	prometheus.MustRegister(ProposalsSubmitted)
	prometheus.MustRegister(ProposalDecisions)
	prometheus.MustRegister(WorkerQueueDepth)
}
