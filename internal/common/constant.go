// Package common contains shared constants and sentinel errors used across
// minichat components.
package common

// MaxMessageLen is the longest message text, in bytes, accepted by Post.
const MaxMessageLen = 50

// DefaultStreamBuffer is the capacity of the queue between the log reader
// and the transport when streaming history.
const DefaultStreamBuffer = 100

// RequestIDHeaderName is the gRPC metadata key carrying the request id
// assigned by the server logging interceptor.
const RequestIDHeaderName = "x-request-id"
