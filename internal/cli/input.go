// Package cli handles cmd line input for DBG and testing search and suggestion behavior
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sentserve/sentserve/pkg/index"
)

// InputHandler processes user input from stdin, running each line as a
// search query against the index. Lines starting with '/' are treated
// as suggestion prefixes instead. Flags control ranking, partial
// matching, the minimum match count and the result limit.
type InputHandler struct {
	ix           *index.Index
	ranked       bool
	partial      bool
	minMatch     int
	limit        int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(ix *index.Index, ranked, partial bool, minMatch, limit int) *InputHandler {
	return &InputHandler{
		ix:       ix,
		ranked:   ranked,
		partial:  partial,
		minMatch: minMatch,
		limit:    limit,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to the handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("SentServe CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a query and press Enter, or /prefix for suggestions (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput processes a single line. A leading '/' asks the index
// for dictionary words with that prefix; anything else runs a full
// search. Results are formatted and printed to the log.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	if prefix, ok := strings.CutPrefix(line, "/"); ok {
		h.handleSuggest(prefix)
		return
	}
	h.handleSearch(line)
}

func (h *InputHandler) handleSearch(query string) {
	start := time.Now()
	log.Debug("Processing search request", "query", query)

	matches := h.ix.Search(query, index.SearchOptions{
		Ranked:   h.ranked,
		Partial:  h.partial,
		MinMatch: h.minMatch,
	})

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(matches) == 0 {
		log.Warnf("No matches found for query: '%s'", query)
		return
	}

	log.Printf("Found %d matches for query '%s':", len(matches), query)
	for i, m := range matches {
		if h.limit > 0 && i >= h.limit {
			log.Printf("... and %d more", len(matches)-h.limit)
			break
		}
		clText := fmt.Sprintf("\033[38;5;75m%s\033[0m", m.Text)
		if h.ranked {
			log.Printf("%2d. %-60s (score: %4d)", i+1, clText, m.Score)
		} else {
			log.Printf("%2d. %s", i+1, clText)
		}
	}
}

func (h *InputHandler) handleSuggest(prefix string) {
	start := time.Now()
	log.Debug("Processing suggestion request", "prefix", prefix)

	words := h.ix.Suggest(prefix)

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(words) == 0 {
		log.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}

	log.Printf("Found %d suggestions for prefix '%s':", len(words), prefix)
	for i, w := range words {
		if h.limit > 0 && i >= h.limit {
			log.Printf("... and %d more", len(words)-h.limit)
			break
		}
		log.Printf("%2d. \033[38;5;75m%s\033[0m", i+1, w)
	}
}
