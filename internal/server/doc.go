// Package server exposes the reconciliation and data-extension engine over
// HTTP.
//
// The /reconcile endpoint serves three modes dispatched by parameter: no
// parameter returns the service manifest for client registration, queries=
// runs batch reconciliation, and extend= runs data extension. Companion
// endpoints serve property autocompletion (/suggest/properties) and the
// extension column picker (/propose_properties). All endpoints honour a
// callback= parameter for JSONP delivery to older clients.
//
// Only malformed requests surface as HTTP errors; upstream catalog
// failures degrade to empty data inside the engine.
package server
