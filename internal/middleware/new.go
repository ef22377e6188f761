package middleware

import (
	"matching-srv/config"
	"matching-srv/pkg/encrypter"
	"matching-srv/pkg/log"
	"matching-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	serviceKeys  map[string]string
	corsOrigins  []string
	encrypter    encrypter.Encrypter
}

func New(l log.Logger, jwtManager scope.Manager, cfg *config.Config, enc encrypter.Encrypter) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cfg.Cookie,
		serviceKeys:  cfg.InternalConfig.ServiceKeys,
		corsOrigins:  cfg.CORS.AllowedOrigins,
		encrypter:    enc,
	}
}
