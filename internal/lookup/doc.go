// Package lookup is the shared core of the lookup services.
//
// **trusted headers**
// Every request reaching a lookup service has already been authenticated by the API gateway
// in front of it. The gateway asserts who the caller is with identity headers
// (x-caller-id, x-caller-email). This package reads them into an Identity and uses
// them for log correlation only: they are never validated and never change the response.
// Reachability of the service is the security boundary - the deployment must make sure
// the gateway cannot be bypassed.
//
// **lookups**
// A Service resolves a key against its static catalog. A missing key is a normal outcome:
// the caller gets a not-found record echoing the requested key with status 404.
// Only unexpected failures (see the respond package) produce error responses.
//
// **health**
// Health and Root report the service name, a literal "healthy" status and the catalog size.
// They read in-process state only and cannot fail.
package lookup
