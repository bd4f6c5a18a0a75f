package monitor

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "prompt_api"

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Handled prompt requests by variant, method and status code.",
	}, []string{"variant", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "End-to-end handler latency.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16, 32},
	}, []string{"variant", "status"})

	inferenceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "inference_duration_seconds",
		Help:      "Latency of Bedrock Converse calls.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16, 32},
	}, []string{"model", "result"})

	inferenceTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inference_tokens_total",
		Help:      "Tokens reported by Bedrock, split by direction.",
	}, []string{"model", "direction"})
)

// RecordRequest counts one finished request.
func RecordRequest(variant, method string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	requestsTotal.WithLabelValues(variant, method, code).Inc()
	requestDuration.WithLabelValues(variant, code).Observe(elapsed.Seconds())
}

// RecordInference observes one Converse round trip.
func RecordInference(model string, elapsed time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	inferenceDuration.WithLabelValues(model, result).Observe(elapsed.Seconds())
}

// RecordTokens adds the usage reported for one Converse call.
func RecordTokens(model string, input, output int) {
	if input > 0 {
		inferenceTokens.WithLabelValues(model, "input").Add(float64(input))
	}
	if output > 0 {
		inferenceTokens.WithLabelValues(model, "output").Add(float64(output))
	}
}
