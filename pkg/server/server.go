package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/sentserve/sentserve/internal/logger"
	"github.com/sentserve/sentserve/pkg/config"
	"github.com/sentserve/sentserve/pkg/index"
)

var plog = logger.New("ipc")

// Server handles the IPC for sentence search.
type Server struct {
	ix      *index.Index
	cfg     *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a search server using stdin/stdout for IPC.
func NewServer(ix *index.Index, cfg *config.Config) *Server {
	return NewServerIO(ix, cfg, os.Stdin, os.Stdout)
}

// NewServerIO wires the server to explicit streams; tests use this.
func NewServerIO(ix *index.Index, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		ix:      ix,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start begins the synchronous request loop. It returns nil once the
// client closes its end of the stream.
func (s *Server) Start() error {
	plog.Debug("Starting server.")

	// Signal that the server is ready.
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			plog.Errorf("Decoding request: %v", err)
			return err
		}
		s.handle(req)
	}
}

// handle dispatches a single decoded request.
func (s *Server) handle(req Request) {
	switch req.Cmd {
	case "init":
		s.handleInit(req)
	case "search":
		s.handleSearch(req)
	case "suggest":
		s.handleSuggest(req)
	case "add":
		s.handleAdd(req)
	case "reset":
		s.ix.Reset()
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	case "stats":
		s.send(StatusResponse{
			ID:        req.ID,
			Status:    "ok",
			Sentences: s.ix.Len(),
			Words:     len(s.ix.WordFrequency()),
		})
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown command: %s", req.Cmd), 400)
	}
}

// handleInit replaces the whole collection.
func (s *Server) handleInit(req Request) {
	if req.Sentences == nil {
		s.sendError(req.ID, "Missing 'sentences' parameter", 400)
		plog.Debug("Sentences missing in init request")
		return
	}
	if err := s.ix.Initialize(req.Sentences); err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}
	s.send(StatusResponse{ID: req.ID, Status: "ok", Sentences: s.ix.Len()})
}

// handleAdd merges the given sentences into the live collection. The
// sentences are indexed into a scratch index built with the live
// index's own options, then merged so dedupe and rebase follow the
// usual merge rules.
func (s *Server) handleAdd(req Request) {
	if req.Sentences == nil {
		s.sendError(req.ID, "Missing 'sentences' parameter", 400)
		return
	}
	src := index.New(s.ix.Config())
	if err := src.Initialize(req.Sentences); err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}
	if err := s.ix.Merge(src, index.MergeOptions{Deduplicate: req.Dedupe}); err != nil {
		s.sendError(req.ID, err.Error(), 500)
		return
	}
	s.send(StatusResponse{ID: req.ID, Status: "ok", Sentences: s.ix.Len()})
}

// handleSearch runs a query against the index.
func (s *Server) handleSearch(req Request) {
	if max := s.cfg.Server.MaxQueryLen; max > 0 && len(req.Query) > max {
		s.sendError(req.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", max), 400)
		plog.Debug("Query too long in request")
		return
	}

	start := time.Now()
	results := s.ix.SearchTexts(req.Query, index.SearchOptions{
		Ranked:   req.Ranked,
		Partial:  req.Partial,
		MinMatch: req.MinMatch,
	})
	elapsed := time.Since(start)

	if max := s.cfg.Server.MaxResults; max > 0 && len(results) > max {
		results = results[:max]
	}
	s.send(SearchResponse{
		ID:        req.ID,
		Results:   results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleSuggest returns dictionary words for a prefix.
func (s *Server) handleSuggest(req Request) {
	if max := s.cfg.Server.MaxPrefixLen; max > 0 && len(req.Prefix) > max {
		s.sendError(req.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", max), 400)
		plog.Debug("Prefix too long in request")
		return
	}

	start := time.Now()
	suggestions := s.ix.Suggest(req.Prefix)
	elapsed := time.Since(start)

	if max := s.cfg.Server.MaxResults; max > 0 && len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	s.send(SuggestResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// send encodes one response onto the output stream.
func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		plog.Errorf("Encoding response: %v", err)
	}
}

// sendError sends a structured error response.
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
