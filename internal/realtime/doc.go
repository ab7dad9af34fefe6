package realtime

// Package realtime maintains the push channel for server notifications,
// independent of the request/response data flow. The client exchanges
// liveness pings with the backend, fans inbound messages out to registered
// handlers, and reconnects with a bounded retry count after abnormal closes.
