package discovery

import "github.com/contentforge/content-service/internal/cache"

func generateKey(key cacheKey) string {
	return cache.GenerateKey("discovery", key)
}
