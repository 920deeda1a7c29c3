// Package flow is the navigation decision core of the wayfarer client.
//
// It contains the progress resolver (which screen does this user need
// next), the day/block progression engine (the morning, afternoon,
// evening, next-day cycle of a live trip), and the session bootstrap
// coordinator that ties local cache, remote hydration, and resolution
// into a single action per protected-route entry.
package flow
