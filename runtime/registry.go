package runtime

import (
	"calsync-lab/contract"
	"calsync-lab/domain"
	"sync"
)

type Set map[string]struct{}

// Registry owns the process-wide group membership table. It is the only
// holder of the maps: fan-out and membership changes go through its
// methods, never through shared state.
type Registry struct {
	mu sync.RWMutex
	// sessions: connection id -> its delivery sink
	sessions map[string]contract.EventSink
	// members: department id -> set of connection ids joined to it
	members map[domain.DepartmentID]Set
	// joined: connection id -> departments it has joined, so that a
	// disconnect can clear every membership without scanning members
	joined map[string]map[domain.DepartmentID]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]contract.EventSink),
		members:  make(map[domain.DepartmentID]Set),
		joined:   make(map[string]map[domain.DepartmentID]struct{}),
	}
}

// Register records a new connection with an empty membership set.
func (r *Registry) Register(connectionID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[connectionID] = sink
	r.joined[connectionID] = make(map[domain.DepartmentID]struct{})
}

// Unregister removes the connection and all its memberships. Idempotent:
// unregistering an unknown connection is a no-op.
func (r *Registry) Unregister(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, connectionID)

	for departmentID := range r.joined[connectionID] {
		r.removeMember(departmentID, connectionID)
	}
	delete(r.joined, connectionID)
}

// Join adds the connection to the department's group. Joining twice is
// a no-op; joining from an unregistered connection is ignored because
// there is no sink to deliver to.
func (r *Registry) Join(connectionID string, departmentID domain.DepartmentID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[connectionID]; !ok {
		return
	}
	if _, ok := r.members[departmentID]; !ok {
		r.members[departmentID] = make(Set)
	}
	r.members[departmentID][connectionID] = struct{}{}
	r.joined[connectionID][departmentID] = struct{}{}
}

// Leave removes the membership. Idempotent; no-ops if not a member.
func (r *Registry) Leave(connectionID string, departmentID domain.DepartmentID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeMember(departmentID, connectionID)
	if departments, ok := r.joined[connectionID]; ok {
		delete(departments, departmentID)
	}
}

// removeMember must be called with the write lock held. Empty sets are
// removed entirely to avoid leaking one entry per department ever seen.
func (r *Registry) removeMember(departmentID domain.DepartmentID, connectionID string) {
	members, ok := r.members[departmentID]
	if !ok {
		return
	}
	delete(members, connectionID)
	if len(members) == 0 {
		delete(r.members, departmentID)
	}
}

// SinksForDepartment resolves the department's member connections into
// their sinks. Returns nil when the group is empty or unknown.
func (r *Registry) SinksForDepartment(departmentID domain.DepartmentID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.members[departmentID]
	if !ok {
		return nil
	}
	var sinks []contract.EventSink
	for connectionID := range members {
		if sink, exists := r.sessions[connectionID]; exists {
			sinks = append(sinks, sink)
		}
	}
	return sinks
}

// AllSinks returns every live connection's sink, regardless of group
// membership. Department-scope changes are delivered through this.
func (r *Registry) AllSinks() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sinks := make([]contract.EventSink, 0, len(r.sessions))
	for _, sink := range r.sessions {
		sinks = append(sinks, sink)
	}
	return sinks
}
