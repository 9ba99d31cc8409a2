package cookie

import (
	"net/http"
	"strings"
)

// Config is the environment form of the Manager settings. Secrets is a comma
// separated list, the first entry signs.
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS" envDefault:""`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// SecretList splits Secrets, dropping blanks.
func (c Config) SecretList() []string {
	var secrets []string
	for s := range strings.SplitSeq(c.Secrets, ",") {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

// NewFromConfig creates a Manager from cfg. Zero fields keep the Manager
// defaults; opts apply on top.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	fromConfig := func(o *Options) {
		if cfg.Path != "" {
			o.Path = cfg.Path
		}
		if cfg.Domain != "" {
			o.Domain = cfg.Domain
		}
		if cfg.MaxAge != 0 {
			o.MaxAge = cfg.MaxAge
		}
		if cfg.SameSite != 0 {
			o.SameSite = cfg.SameSite
		}
		o.Secure = o.Secure || cfg.Secure
		o.HttpOnly = o.HttpOnly || cfg.HttpOnly
	}
	return New(cfg.SecretList(), append([]Option{fromConfig}, opts...)...)
}
