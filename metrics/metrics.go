// Package metrics exposes the Prometheus collectors of the portal API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartcity",
		Name:      "registrations_submitted_total",
		Help:      "Registrations accepted into the pending queue, by account type.",
	}, []string{"account_type"})

	RegistrationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartcity",
		Name:      "registration_decisions_total",
		Help:      "Admin decisions applied to pending registrations, by resulting status.",
	}, []string{"status"})

	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "smartcity",
		Name:      "decision_notification_failures_total",
		Help:      "Decision emails that could not be delivered.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartcity",
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by route pattern and status code.",
	}, []string{"route", "code"})
)
