// Package dunya is a client for the Dunya music archive REST API.
//
// The API exposes Carnatic music metadata as path-based lookups (recordings,
// artists, concerts, works, raagas, taalas, instruments) plus a document
// server for the underlying audio files. List endpoints are paginated; the
// client follows pages transparently and returns complete result sets.
//
// Access requires an API token. Queries for recordings, artists and
// concerts can be restricted to specific collections; the restriction is
// part of the client configuration rather than process-global state, so
// clients with different restrictions can coexist.
package dunya
