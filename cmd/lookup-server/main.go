package main

import "github.com/gateway-delegation/lookup-services/internal/cli"

//	@title			lookup-server
//	@version		1.0.0
//	@description	lookup-server runs the orders-api and pricing-api read-only lookup services.
//	@description
//	@description	## Trusted headers
//	@description	The services implement no authentication, authorization or rate limiting.
//	@description	They are deployed behind an API gateway which authenticates the caller and forwards
//	@description	the caller identity in the `x-caller-id` and `x-caller-email` headers.
//	@description	The headers are trusted as-is and only logged: they never change a response.
//	@description
//	@description	## Not found
//	@description	A key that is not in the catalog is answered with a not-found record echoing the key, status 404.
//	@description	It is not an error response.
//	@description
//	@description	## Common Error Responses
//	@description	- `404` unknown route
//	@description	- `405` method other than GET
//	@description	- `413` Request body exceeds size limit
//	@description	- `500` Internal server error
//	@license.name	MIT

//	@servers.url			http://localhost:8001
//	@servers.description	orders-api
//	@servers.url			http://localhost:8002
//	@servers.description	pricing-api

//	@produce	json

//	@tag.name			Lookup
//	@tag.description	Order and price lookups

//	@tag.name			Common
//	@tag.description	Liveness and health endpoints

func main() {
	cli.Execute()
}
