package env

import (
	"errors"
	"net"
	"os"
	"strconv"
	"strings"

	"clicker_backend/internal/config"
)

const (
	httpHostEnvName    = "HTTP_HOST"
	httpPortEnvName    = "HTTP_PORT"
	corsOriginsEnvName = "CORS_ORIGINS"
	cookieSecureEnv    = "COOKIE_SECURE"

	defaultHTTPPort = "8080"
)

type httpConfig struct {
	host    string
	port    string
	origins []string
	secure  bool
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(httpHostEnvName)

	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		port = defaultHTTPPort
	}
	if p, err := strconv.Atoi(port); err != nil || p <= 0 || p > 65535 {
		return nil, errors.New("invalid http port: " + port)
	}

	origins := []string{"*"}
	if raw := os.Getenv(corsOriginsEnvName); len(raw) > 0 {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	secure := false
	if raw := os.Getenv(cookieSecureEnv); len(raw) > 0 {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("invalid " + cookieSecureEnv + ": " + raw)
		}
		secure = v
	}

	return &httpConfig{
		host:    host,
		port:    port,
		origins: origins,
		secure:  secure,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) AllowedOrigins() []string {
	return cfg.origins
}

func (cfg *httpConfig) CookieSecure() bool {
	return cfg.secure
}
