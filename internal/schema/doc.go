// Package schema defines the fixed 21-column output schema for race results
// and the normalization of arbitrary race tables into it.
//
// The ndr.nl results pages use different finishing-table layouts per race
// variant (trotting vs. flat, handicap vs. level start), so individual races
// carry different column sets. Normalization reconciles every race against
// the one master column list so the results CSV keeps a single shared header.
package schema
