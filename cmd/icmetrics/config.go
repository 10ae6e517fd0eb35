package main

import "time"

// Config is the container for app configuration
type Config struct {
	// GithubToken - auth token for the github api. Required for collection.
	GithubToken string `envconfig:"GITHUB_TOKEN"`

	// GithubOrg - github organization whose repositories are scanned
	GithubOrg string `envconfig:"GITHUB_ORG" default:"WTTJ"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `envconfig:"GITHUB_API_ADDRESS" default:"https://api.github.com"`

	// DataDirectory - root directory for snapshots and derived artifacts
	DataDirectory string `envconfig:"DATA_DIRECTORY" default:"./data"`

	// DisableSleep - disables api rate limiting, for tests against a local server
	DisableSleep bool `envconfig:"DISABLE_SLEEP" default:"false"`

	// MaxParallelWorkers - number of repositories collected in parallel
	MaxParallelWorkers int `envconfig:"MAX_PARALLEL_WORKERS" default:"4"`

	// StandardRateLimit - max frequency for rest api calls, per second
	StandardRateLimit float64 `envconfig:"STANDARD_RATE_LIMIT" default:"10"`

	// SearchRateLimit - max frequency for search api calls, per second
	SearchRateLimit float64 `envconfig:"SEARCH_RATE_LIMIT" default:"1"`

	// HTTPTimeout - timeout for github api calls
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// HTTPCachePath - filepath for bolt response cache data. If empty, response caching is disabled
	HTTPCachePath string `envconfig:"HTTP_CACHE_PATH" default:""`

	// HTTPCacheTTL - maximum lifetime for cached responses
	HTTPCacheTTL time.Duration `envconfig:"HTTP_CACHE_TTL" default:"1h"`

	// RepositoryCacheSize - maximum number of repository details kept in memory
	RepositoryCacheSize int `envconfig:"REPOSITORY_CACHE_SIZE" default:"1000"`

	// RepositoryCacheTTL - maximum lifetime for cached repository details
	RepositoryCacheTTL time.Duration `envconfig:"REPOSITORY_CACHE_TTL" default:"10m"`

	// EnrichCommitStats - fetch per commit line stats, one extra request per commit
	EnrichCommitStats bool `envconfig:"ENRICH_COMMIT_STATS" default:"false"`

	// OpenAIAPIKey - api key for the analyze-csv command
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`

	// OpenAIModel - model for the analyze-csv command. If empty, a default is used
	OpenAIModel string `envconfig:"OPENAI_MODEL" default:""`
}
