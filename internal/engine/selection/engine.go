package selection

import (
	"go.uber.org/zap"

	"github.com/Maurichilean3d/Gizmoplug/internal/engine/topology"
	"github.com/Maurichilean3d/Gizmoplug/pkg/mesh"
)

// Engine is the session-scoped selection engine. It is single-threaded
// and synchronous: every operation runs to completion inside the host
// event handler that invoked it, so no internal locking is needed.
type Engine struct {
	host  Host
	log   *zap.Logger
	store *Store
	topo  *topology.Cache
	snap  *Snapshot
	drag  *boxDrag

	active bool
}

// New creates an engine bound to a host. A nil logger disables logging.
func New(host Host, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		host:  host,
		log:   log,
		store: NewStore(ModeFace),
	}
}

// Store exposes the membership sets for read access (host UI, tests).
func (e *Engine) Store() *Store {
	return e.store
}

// Mode returns the active mode.
func (e *Engine) Mode() Mode {
	return e.store.Mode()
}

// SetMode switches the active mode and re-targets visualization. The
// other modes' sets are left untouched.
func (e *Engine) SetMode(mode Mode) {
	if mode == e.store.Mode() {
		return
	}
	e.store.SetMode(mode)
	e.log.Debug("selection mode changed", zap.Stringer("mode", mode))
	if m, _ := e.session(); m != nil {
		e.sync(m)
	}
}

// Active reports whether an activation session is open.
func (e *Engine) Active() bool {
	return e.active
}

// Activate opens a session: the highlight channel is snapshotted so
// Deactivate can hand the channel back to the host untouched.
func (e *Engine) Activate() {
	if e.active {
		return
	}
	e.active = true
	e.store = NewStore(e.store.Mode())
	if m := e.host.ActiveMesh(); m != nil {
		e.snap = Capture(m)
		e.log.Info("selection session activated",
			zap.Int("vertices", m.VertexCount()),
			zap.Int("faces", m.FaceCount()),
		)
	} else {
		e.log.Info("selection session activated without a mesh")
	}
}

// Deactivate closes the session, restoring the highlight channel from
// the activation snapshot unless Commit made the visualization permanent.
func (e *Engine) Deactivate() {
	if !e.active {
		return
	}
	if m := e.host.ActiveMesh(); m != nil && e.snap != nil {
		e.snap.Restore(m)
		e.host.NotifyChannelChanged(m)
		e.host.RequestRender()
	}
	e.snap = nil
	e.topo = nil
	e.drag = nil
	e.store = NewStore(e.store.Mode())
	e.active = false
	e.log.Info("selection session deactivated")
}

// Commit discards the activation snapshot so the current visualization
// survives deactivation.
func (e *Engine) Commit() {
	e.snap = nil
	e.log.Debug("highlight state committed")
}

// Snapshot returns the activation snapshot, or nil after Commit.
func (e *Engine) Snapshot() *Snapshot {
	return e.snap
}

// session returns the active mesh and an up-to-date topology cache, or
// nils when no session or mesh is available. A mesh identity change
// discards and rebuilds the cache wholesale and prunes stale selection.
func (e *Engine) session() (*mesh.Mesh, *topology.Cache) {
	if !e.active {
		return nil, nil
	}
	m := e.host.ActiveMesh()
	if m == nil {
		return nil, nil
	}
	if !e.topo.ValidFor(m) {
		e.topo = topology.Build(m)
		// The selection may predate the swap; ids the new mesh lacks
		// must not reach the operators or the highlight writeback.
		e.store.prune(m, e.topo)
		e.log.Debug("topology cache rebuilt",
			zap.Int("faces", m.FaceCount()),
			zap.Int("edges", e.topo.EdgeCount()),
		)
	}
	return m, e.topo
}

// sync pushes the active selection to the highlight channel and asks the
// host to refresh.
func (e *Engine) sync(m *mesh.Mesh) {
	writeHighlight(m, e.store)
	e.host.NotifyChannelChanged(m)
	e.host.RequestRender()
}
