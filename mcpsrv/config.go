package mcpsrv

import (
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qyinm/staffdir/config"
)

type Config struct {
	Port               string
	AllowedOrigins     []string
	Stateless          bool
	EnableAdmin        bool
	APIKey             string
	RPS                float64
	Burst              int
	SessionTimeout     time.Duration
	CacheClearInterval time.Duration
}

func LoadConfig() Config {
	cfg := Config{
		Port:               config.ParseString(os.Getenv("PORT"), "8080"),
		AllowedOrigins:     config.ParseCSV(os.Getenv("STAFFDIR_MCP_ALLOWED_ORIGINS")),
		Stateless:          config.ParseBool(os.Getenv("STAFFDIR_MCP_STATELESS"), false),
		EnableAdmin:        config.ParseBool(os.Getenv("STAFFDIR_MCP_ENABLE_ADMIN"), false),
		APIKey:             strings.TrimSpace(os.Getenv("STAFFDIR_MCP_API_KEY")),
		RPS:                config.ParseFloat(os.Getenv("STAFFDIR_MCP_RPS"), 2),
		Burst:              config.ParseInt(os.Getenv("STAFFDIR_MCP_BURST"), 5),
		SessionTimeout:     config.ParseDuration(os.Getenv("STAFFDIR_MCP_SESSION_TIMEOUT"), 15*time.Minute),
		CacheClearInterval: config.ParseDuration(os.Getenv("STAFFDIR_MCP_CACHE_CLEAR_INTERVAL"), 30*time.Minute),
	}

	if cfg.RPS <= 0 {
		cfg.RPS = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}

	return cfg
}

// AdminEnabled reports whether cache_clear may be exposed. It needs an
// API key so the tool is never reachable anonymously.
func (c Config) AdminEnabled() bool {
	return c.EnableAdmin && c.APIKey != ""
}

func StreamableOptions(cfg Config) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}
