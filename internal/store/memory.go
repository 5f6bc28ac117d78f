package store

import (
	"context"
	"sync"
)

// MemoryPort keeps the snapshot in process memory. The default backend; state
// lives only as long as the server does.
type MemoryPort struct {
	mu   sync.Mutex
	snap *Snapshot
}

func NewMemoryPort() *MemoryPort {
	return &MemoryPort{}
}

func (p *MemoryPort) Load(ctx context.Context) (*Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snap == nil {
		return nil, ErrNoSnapshot
	}
	snap := *p.snap
	return &snap, nil
}

func (p *MemoryPort) Save(ctx context.Context, snap *Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	saved := *snap
	p.snap = &saved
	return nil
}
