// Package discovery finds race-day ids on the ndr.nl agenda.
//
// The agenda is a month-at-a-time listing; the site renders it into
// #ndr-course-results as ndr-agenda-item entries carrying the koersdag id in
// a data attribute. The crawler requests the listing once per month of the
// requested range, in order, and returns the events exactly as listed. The
// results pipeline only depends on the ordered id sequence, not on how it
// was obtained.
package discovery
