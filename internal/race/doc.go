// Package race defines the domain types for NDR race days and their results.
//
// An Event is one race day as listed on the ndr.nl agenda, identified by the
// site's opaque "koersdag" token. A Block is one race inside an event's
// results page: its finishing Table plus the Meta fields (race number, start
// time, title, descriptions, date/track line) that live outside the table
// markup. Blocks are transient; they exist only while one event is being
// processed.
package race
