// Package cli implements the minichat command-line client.
//
// Usage:
//
//	minichat [-c file] [-s server] [-w timeout] <command> [flags]
//
// Commands:
//
//	join     -u user [-p password]   join the chat and print the token
//	send     -t token -m message     post a message
//	messages -t token [-a after]     print the log after a sequence number
//	chat     -u user [-p password]   join and start an interactive session
//
// A missing password is prompted for without echo.
package cli
