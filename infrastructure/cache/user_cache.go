package cache

import (
	"sync"
	"time"

	"vowline/internal/entity"
)

// UserCache memoizes user lookups for the realtime layer so resolving a
// sender's display name does not hit storage on every event. Entries expire
// after a TTL; a background goroutine sweeps expired entries when
// cleanupInterval is positive.
type UserCache struct {
	items sync.Map
	ttl   time.Duration
	stop  chan struct{}
	wg    sync.WaitGroup
}

type userItem struct {
	user       entity.User
	expiration int64
}

func NewUserCache(ttl, cleanupInterval time.Duration) *UserCache {
	c := &UserCache{
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	if cleanupInterval > 0 {
		c.wg.Add(1)
		go func() {
			ticker := time.NewTicker(cleanupInterval)
			defer ticker.Stop()
			defer c.wg.Done()
			for {
				select {
				case <-ticker.C:
					c.cleanup()
				case <-c.stop:
					return
				}
			}
		}()
	}
	return c
}

func (c *UserCache) Get(userId string) (entity.User, bool) {
	v, ok := c.items.Load(userId)
	if !ok {
		return entity.User{}, false
	}
	it := v.(userItem)
	if it.expiration != 0 && time.Now().UnixNano() > it.expiration {
		c.items.Delete(userId)
		return entity.User{}, false
	}
	return it.user, true
}

func (c *UserCache) Put(user entity.User) {
	var exp int64
	if c.ttl > 0 {
		exp = time.Now().Add(c.ttl).UnixNano()
	}
	c.items.Store(user.Id, userItem{user: user, expiration: exp})
}

// Invalidate drops a user after a profile update so the next lookup sees
// fresh data.
func (c *UserCache) Invalidate(userId string) {
	c.items.Delete(userId)
}

func (c *UserCache) Close() {
	if c.stop == nil {
		return
	}
	close(c.stop)
	c.wg.Wait()
}

func (c *UserCache) cleanup() {
	now := time.Now().UnixNano()
	c.items.Range(func(k, v any) bool {
		it := v.(userItem)
		if it.expiration != 0 && now > it.expiration {
			c.items.Delete(k)
		}
		return true
	})
}
