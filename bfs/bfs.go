package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// queueItem is one pending vertex together with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker holds the state of one traversal over a snapshot.
type walker struct {
	snap    *core.Snapshot
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.VertexID]bool
	res     *BFSResult
}

// BFS performs a breadth-first search from start.
//
// The traversal reads one consistent Snapshot of g. Neighbors are enqueued in
// incident-list (edge insertion) order, so the visit order is reproducible.
//
// Errors:
//   - ErrGraphNil            : g is nil.
//   - ErrOptionViolation     : an Option was invalid.
//   - ErrStartVertexNotFound : start is not in g.
//   - ctx.Err()              : the context was cancelled.
//   - wrapped OnVisit error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start core.VertexID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := g.Snapshot()
	if _, ok := s.Vertex(start); !ok {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(s, o)
	w.enqueue(start, 0, core.NoVertex)

	return w.res, w.loop()
}

// newWalker allocates a walker sized for the snapshot.
func newWalker(s *core.Snapshot, o BFSOptions) *walker {
	n := len(s.Vertices)

	return &walker{
		snap:    s,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.VertexID]bool, n),
		res: &BFSResult{
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}
}

// enqueue marks id as seen and schedules it for a visit.
func (w *walker) enqueue(id core.VertexID, d int, parent core.VertexID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != core.NoVertex {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop drains the queue, honoring context cancellation between vertices.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors schedules every unseen, allowed neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.snap.Neighbors(item.id) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}
}
