// Package client is the gRPC client of the chat.Chat service. It hides the
// wire types behind plain Go values and maps status codes onto sentinel
// errors the CLI can match with errors.Is.
package client
