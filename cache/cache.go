package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)
var ViewCache = cache.New(1*time.Minute, 2*time.Minute)
