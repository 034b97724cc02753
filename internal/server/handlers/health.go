package handlers

import (
	"net/http"

	"github.com/gateway-delegation/lookup-services/internal/lookup"
	"github.com/gateway-delegation/lookup-services/internal/respond"
)

// HandleHealth godoc
//
//	@Summary		Health check
//	@Description	Reports the service name, status and number of catalog records.
//	@Description	The check reads in-process state only and always succeeds.
//	@Tags			Common
//	@Produce		json
//
//	@Success		200	{object}	lookup.HealthReport
//
//	@Router			/health [get]
func HandleHealth(svc lookup.Endpoint, endpoints []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, svc.Health(endpoints))
	}
}

// HandleRoot godoc
//
//	@Summary		Liveness check
//	@Description	Returns the service name, status and version.
//	@Tags			Common
//	@Produce		json
//
//	@Success		200	{object}	lookup.RootReport
//
//	@Router			/ [get]
func HandleRoot(svc lookup.Endpoint, version string) http.HandlerFunc {
	// the report never changes, so build it once
	report := svc.Root(version)

	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, report)
	}
}
