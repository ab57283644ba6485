// Package accesslog records one plaintext line per served request:
//
//	<method>\t<path>\t<status>\t<elapsed> ms
//
// Entries are carried in the request context while the request is in flight
// and appended to a Sink once the response status is known.
package accesslog
