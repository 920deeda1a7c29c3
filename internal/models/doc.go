// Package models defines the data model for the wayfarer trip-planning client.
//
// Snapshot entities mirror the server's hydration payload and are cached
// locally between sessions; Reflection is a persistent model with full
// repository support.
package models
