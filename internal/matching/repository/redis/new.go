package redis

import (
	"matching-srv/internal/matching/repository"
	"matching-srv/pkg/log"
	pkgRedis "matching-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
