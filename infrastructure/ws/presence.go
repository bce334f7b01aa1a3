package ws

import (
	"sync"
	"time"
)

// PresenceEntry records one online user: identity, display name, the
// connection carrying them, and when they were last seen.
type PresenceEntry struct {
	UserId   string    `json:"userId"`
	UserName string    `json:"userName"`
	ConnId   string    `json:"-"`
	LastSeen time.Time `json:"lastSeen"`
}

// Presence is the process-scoped registry of who currently has a live
// connection. Nothing here is persisted; it is rebuilt from scratch on every
// process start, so reconnecting clients must re-announce themselves.
type Presence struct {
	mu      sync.RWMutex
	entries map[string]PresenceEntry
}

func NewPresence() *Presence {
	return &Presence{
		entries: make(map[string]PresenceEntry),
	}
}

// MarkOnline records or overwrites the entry for userId.
func (p *Presence) MarkOnline(userId, userName, connId string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[userId] = PresenceEntry{
		UserId:   userId,
		UserName: userName,
		ConnId:   connId,
		LastSeen: time.Now(),
	}
}

// MarkOffline removes the entry and returns it, stamped with the final
// last-seen time.
func (p *Presence) MarkOffline(userId string) (PresenceEntry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, ok := p.entries[userId]
	if !ok {
		return PresenceEntry{}, false
	}
	delete(p.entries, userId)
	entry.LastSeen = time.Now()
	return entry, true
}

func (p *Presence) Get(userId string) (PresenceEntry, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	entry, ok := p.entries[userId]
	return entry, ok
}

func (p *Presence) IsOnline(userId string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.entries[userId]
	return ok
}

func (p *Presence) ListOnline() []PresenceEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	online := make([]PresenceEntry, 0, len(p.entries))
	for _, entry := range p.entries {
		online = append(online, entry)
	}
	return online
}
