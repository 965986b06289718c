/*
Package writeback implements the background writeback controller: a
single controller goroutine hosting an event loop that accepts
writeback requests (subject + rdf-types + tabular results), dispatches
them to matching writeback modules under cancellation, and enforces
idle-shutdown.

The controller's external message surface is exposed over D-Bus as
org.freedesktop.Tracker1.Writeback, matching the legacy transport; see
[transport_dbus.go].
*/
package writeback
