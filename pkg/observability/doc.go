/*
Package observability exports wizard activity as Prometheus metrics.

Metrics.Hooks plugs into the engine lifecycle hooks; Metrics.Handler serves
the private registry on /metrics.
*/
package observability
