package packet

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is a thread-safe in-memory packet registry with TTL eviction.
// It backs the download and preview URLs for recently assembled packets.
type Store struct {
	mu      sync.Mutex
	packets map[string]*Packet
	ttl     time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		packets: make(map[string]*Packet),
		ttl:     ttl,
	}
}

// Put registers a packet, assigning it an ID, and returns that ID.
func (s *Store) Put(p *Packet) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.New().String()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.packets[p.ID] = p
	return p.ID
}

// Get returns the packet for id, or nil if unknown or expired.
func (s *Store) Get(id string) *Packet {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.packets[id]
	if !ok {
		return nil
	}
	if time.Since(p.CreatedAt) > s.ttl {
		delete(s.packets, id)
		return nil
	}
	return p
}

// Cleanup evicts packets older than the TTL.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.packets {
		if time.Since(p.CreatedAt) > s.ttl {
			delete(s.packets, id)
		}
	}
}

// Len reports the number of live packets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.packets)
}
