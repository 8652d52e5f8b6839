package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Serve starts a /metrics HTTP endpoint for reg on addr in the
// background. It does not block; a bind failure is logged rather than
// returned, since it surfaces well after command-line flag validation
// has already succeeded.
func Serve(reg prometheus.Gatherer, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error().Err(err).Str("addr", addr).Msg("metrics endpoint stopped")
		}
	}()
}
