package model

// --- SYSTEM CONFIG ---
// EnvConfig holds runtime settings loaded from the 'config' env JSON
// @Description Serving configuration (screener query constants are compile-time, not configurable)
type EnvConfig struct {
	Port         string   `json:"port"`
	Environment  string   `json:"environment"`
	FrontendUrls []string `json:"frontendUrls"`
	RateLimiter  bool     `json:"rateLimiter"`
}
