package index

// EventKind identifies one of the index lifecycle notifications.
type EventKind int

// The closed set of notification kinds.
const (
	EventInit EventKind = iota
	EventSearch
	EventSuggest
	EventMerge
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventInit:
		return "init"
	case EventSearch:
		return "search"
	case EventSuggest:
		return "suggest"
	case EventMerge:
		return "merge"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Event is the notification payload: the count documented for the
// operation (sentence count for init, result counts for search and
// suggest, source collection size for merge, zero for reset).
type Event struct {
	Kind  EventKind
	Count int
}

// Listener receives events synchronously, in registration order, after
// the corresponding operation completes.
type Listener func(Event)

// On appends a listener for the given event kind. The registry is
// append-only: there is no unsubscribe.
func (ix *Index) On(kind EventKind, fn Listener) {
	if fn == nil {
		return
	}
	ix.mu.Lock()
	ix.listeners[kind] = append(ix.listeners[kind], fn)
	ix.mu.Unlock()
}

// fire runs outside the index lock so listeners may call back into the
// index.
func (ix *Index) fire(kind EventKind, count int) {
	ix.mu.RLock()
	fns := ix.listeners[kind]
	ix.mu.RUnlock()
	for _, fn := range fns {
		fn(Event{Kind: kind, Count: count})
	}
}
