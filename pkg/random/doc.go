// Package random is the Random Source collaborator: it hands back n
// uniformly random bytes on request, preferring a hosted quantum RNG and
// falling back to a cryptographically secure local source on any failure.
// The fallback is never observable as an error to the caller.
package random
