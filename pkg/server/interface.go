/*
Package server implements msgpack IPC for sentence search services.

The server provides a minimal interface for indexing and querying a
sentence collection using msgpack serialization over stdin/stdout.
Messages are processed synchronously with timing info included in
responses.

# IPC

Clients send structured messages via stdin and receive responses
through stdout. Each message carries an ID field, a command, and
command-specific fields.

Search requests mainly use this structure:

	{"id": "req_001", "cmd": "search", "q": "quick fox", "r": true}

The server responds with the ordered sentence texts:

	{"id": "req_001", "res": ["The quick brown fox"], "c": 1, "t": 145}

Suggest requests carry a prefix instead:

	{"id": "req_002", "cmd": "suggest", "p": "qu"}

Collection management replaces or extends the indexed sentences:

	{"id": "req_003", "cmd": "init", "s": ["first sentence", "second sentence"]}
	{"id": "req_004", "cmd": "add", "s": ["third sentence"], "d": true}

Response structures include status information and error details when
an op fails.

# Message Types

Request is the envelope for every client message; the Cmd field
selects the operation: "init", "search", "suggest", "add", "reset",
"stats" or "health". SearchResponse and SuggestResponse carry result
arrays with counts plus timing data; StatusResponse reports collection
and dictionary sizes for the management commands.
*/
package server

// Request is the envelope for every client message.
type Request struct {
	ID        string   `msgpack:"id"`
	Cmd       string   `msgpack:"cmd"`
	Query     string   `msgpack:"q,omitempty"`
	Prefix    string   `msgpack:"p,omitempty"`
	Sentences []string `msgpack:"s,omitempty"`
	Ranked    bool     `msgpack:"r,omitempty"`
	Partial   bool     `msgpack:"pt,omitempty"`
	MinMatch  int      `msgpack:"m,omitempty"`
	Dedupe    bool     `msgpack:"d,omitempty"`
}

// SearchResponse carries ordered sentence texts for search requests.
type SearchResponse struct {
	ID        string   `msgpack:"id"`
	Results   []string `msgpack:"res"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// SuggestResponse carries dictionary words for suggest requests.
type SuggestResponse struct {
	ID          string   `msgpack:"id"`
	Suggestions []string `msgpack:"s"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"t"`
}

// StatusResponse reports the outcome of init, add, reset, stats and
// health commands.
type StatusResponse struct {
	ID        string `msgpack:"id"`
	Status    string `msgpack:"status"`
	Sentences int    `msgpack:"n,omitempty"`
	Words     int    `msgpack:"w,omitempty"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
