// Package archive is the Archive Codec collaborator: it bundles files and
// folders into a single opaque byte blob (a zip container), and recovers
// files/folders or a listing from such a blob again.
package archive
