// Package model provides the shared geometry and color types used across
// the content stream interpreter.
//
// Coordinates follow the convention of the consuming drawing surface:
// y grows downward. Content stream coordinates (y-up) are converted at the
// point of ingestion, not here.
package model
