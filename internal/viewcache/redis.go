package viewcache

import (
	"context"

	rdb "github.com/redis/go-redis/v9"
)

// Redis guarda las versiones en redis para que la invalidación alcance a
// todas las instancias del servicio.
type Redis struct {
	c      *rdb.Client
	prefix string
}

func NewRedis(addr string, db int, prefix string) *Redis {
	return &Redis{
		c:      rdb.NewClient(&rdb.Options{Addr: addr, DB: db}),
		prefix: prefix,
	}
}

func (r *Redis) Invalidate(ctx context.Context, view string) error {
	return r.c.Incr(ctx, r.prefix+versionKey(view)).Err()
}

func (r *Redis) Version(ctx context.Context, view string) (int64, error) {
	v, err := r.c.Get(ctx, r.prefix+versionKey(view)).Int64()
	if err == rdb.Nil {
		return 0, nil
	}
	return v, err
}

// Close cierra la conexión a redis.
func (r *Redis) Close() error { return r.c.Close() }

var _ Invalidator = (*Redis)(nil)
