// Package requestid tags every HTTP request with a correlation identifier.
//
// The middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUIDv4, stores the id in the request context and echoes it back
// in the response. LoggerExtractor plugs the id into pkg/logger so every
// record written with a request context carries request_id.
package requestid
