package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

var (
	NotificationsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_published_total",
			Help: "Total number of status notifications published to Kafka",
		},
		[]string{"topic", "result"},
	)

	NotificationPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notification_publish_duration_seconds",
			Help:    "Duration of notification publish calls",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"topic", "result"},
	)
)
