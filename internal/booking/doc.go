// Package booking holds the read-side rules of the directory: splitting shows
// into past and upcoming, grouping venues by location, formatting start times
// and assembling the flat view-models handed to the presentation layer.
//
// Nothing in this package touches the database. Callers load rows through the
// repositories and pass them in together with the reference instant.
package booking
