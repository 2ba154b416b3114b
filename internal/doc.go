// Package internal implements the HTTP application shell behind the root
// site package: App construction from options, a chi-backed Router, the
// per-request Context, HTTPError, and the graceful-shutdown runtime.
//
// Handlers return errors instead of writing error responses themselves.
// The App passes every returned error, including ones from middleware,
// to a single ErrorHandler, which decides status and body.
package internal
