// Package httputil provides the response caches used by the GitHub client.
//
// [Cache] stores JSON-encoded values under ~/.cache/repocards/ (or a caller
// supplied directory). File names are SHA-256 hashes of the key, so any key
// string is safe. Entries expire by file modification time after the TTL; a
// TTL of 0 disables expiry.
//
//	cache, err := httputil.NewCache("", 10*time.Minute)
//	var repos []github.Repo
//	if ok, _ := cache.Get("github:repos:noxx-code", &repos); !ok {
//	    repos = fetch()
//	    _ = cache.Set("github:repos:noxx-code", repos)
//	}
//
// [RedisCache] implements the same [Store] contract on a Redis server so
// several `repocards serve` instances can share one listing. Only successful
// responses should be stored; callers decide that.
// The cache can be cleared via `repocards cache clear`.
package httputil
