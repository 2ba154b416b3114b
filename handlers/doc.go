// Package handlers holds the site's HTTP handlers: the landing page, the
// contact endpoint and the JSON error handler shared by both.
package handlers
