package httpserver

import "time"

// Config is the environment form of the server options. The write timeout
// does not apply to event streams, which lift it per response.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"` // covers stream draining too
}

// NewFromConfig creates a Server from cfg. Zero fields keep the defaults;
// opts apply on top.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	fromConfig := func(c *config) {
		if cfg.Addr != "" {
			c.addr = cfg.Addr
		}
		for _, d := range []struct {
			dst *time.Duration
			v   time.Duration
		}{
			{&c.readTimeout, cfg.ReadTimeout},
			{&c.writeTimeout, cfg.WriteTimeout},
			{&c.idleTimeout, cfg.IdleTimeout},
			{&c.shutdownTimeout, cfg.ShutdownTimeout},
		} {
			if d.v > 0 {
				*d.dst = d.v
			}
		}
	}
	return New(append([]Option{fromConfig}, opts...)...)
}
