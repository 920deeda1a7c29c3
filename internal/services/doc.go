// Package services defines interface TripService for interacting with the
// trip-planning web service over HTTP.
package services
