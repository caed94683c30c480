// Package ports defines the contracts between the application core and its
// adapters: persistence, message bus, push notifications, device directory and
// geocoding.
package ports
