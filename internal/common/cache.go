package common

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	*cache.Cache
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{cache.New(expirationTime, cleanupTime)}
}

func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}
	c.Cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.Cache.Get(key)
}

func (c *Cache) Flush() {
	c.Cache.Flush()
}

func CacheKeyPost(id int) string {
	return "post:" + strconv.Itoa(id)
}

func CacheKeyDraftsByUserId(id int) string {
	return "drafts_by_user:" + strconv.Itoa(id)
}

// CacheKeyFeed keys a feed page by the full normalized query so that distinct
// search/pagination/sort combinations never collide.
func CacheKeyFeed(search string, skip int, take *int, sort string) string {
	t := "all"
	if take != nil {
		t = strconv.Itoa(*take)
	}
	return "feed:" + search + ":" + strconv.Itoa(skip) + ":" + t + ":" + sort
}

func CacheKeyUsers() string {
	return "users"
}
