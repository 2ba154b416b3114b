// Package health provides liveness and readiness HTTP handlers.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "mail_provider": providerCfg.Validate,
//	}))
//
// Probes get plain text ("OK" / "Service Unavailable"). Send
// Accept: application/json or ?format=json for a per-check report:
//
//	{"status":"unhealthy","checks":{"mail_provider":{"status":"unhealthy","error":"..."}}}
//
// Checks run concurrently under a shared timeout (5s by default).
// A check that outlives the timeout is reported with [ErrCheckTimeout].
package health
