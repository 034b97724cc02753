package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/gateway-delegation/lookup-services/internal/lookup"
	"github.com/gateway-delegation/lookup-services/internal/respond"
)

// HandleLookup godoc
//
//	@Summary		Look up a record by key
//	@Description	Returns the record stored under the key in the path.
//	@Description
//	@Description	An unknown key is not an error: the response is a not-found record echoing the key, with status 404.
//	@Description
//	@Description	The service does no authentication. x-caller-id and x-caller-email are set by the API gateway
//	@Description	and are only logged.
//	@Tags			Lookup
//	@Produce		json
//	@Param			key				path		string	true	"Order id or SKU"
//	@Param			x-caller-id		header		string	false	"Caller id asserted by the gateway"
//	@Param			x-caller-email	header		string	false	"Caller email asserted by the gateway"
//	@Success		200				{object}	orders.Order
//	@Failure		404				{object}	orders.NotFound
//	@Router			/orders/{key} [get]
//	@Router			/prices/{key} [get]
func HandleLookup(svc lookup.Endpoint, headers lookup.IdentityHeaders) http.HandlerFunc {
	param := svc.Info().Param

	return func(w http.ResponseWriter, r *http.Request) {
		key := pathKey(r, param)
		identity := lookup.IdentityFromRequest(r, headers)

		resp := svc.Lookup(r.Context(), key, identity)
		respond.JSON(w, r, resp.StatusCode, resp.Body)
	}
}

// pathKey returns the decoded path parameter. chi routes on the escaped path when the
// request path contains escapes that differ from the default encoding (e.g. %2F),
// in which case the parameter still needs decoding. Empty when the route has no parameter.
func pathKey(r *http.Request, param string) string {
	key := chi.URLParam(r, param)
	if r.URL.RawPath == "" {
		return key
	}
	if decoded, err := url.PathUnescape(key); err == nil {
		return decoded
	}
	return key
}
