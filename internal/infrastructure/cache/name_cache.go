// Package cache guarda en Redis los nombres para mostrar de los empleados.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inspecciones-api/internal/application/inspection"
)

var _ inspection.IdentityResolver = (*CachedIdentityResolver)(nil)

const defaultNameTTL = 10 * time.Minute

// CachedIdentityResolver consulta primero Redis (MGET) y resuelve los faltantes con el
// resolver de base de datos, guardándolos con TTL. Si Redis falla se usa la base directamente.
type CachedIdentityResolver struct {
	client *redis.Client
	next   inspection.IdentityResolver
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCachedIdentityResolver construye el resolver; ttl <= 0 usa 10 minutos.
func NewCachedIdentityResolver(client *redis.Client, next inspection.IdentityResolver, ttl time.Duration, log zerolog.Logger) *CachedIdentityResolver {
	if ttl <= 0 {
		ttl = defaultNameTTL
	}
	return &CachedIdentityResolver{client: client, next: next, ttl: ttl, log: log}
}

// NewRedisClient crea el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func nameKey(id int64) string {
	return "inspections:employee_name:" + strconv.FormatInt(id, 10)
}

// ResolveDisplayNames implementa inspection.IdentityResolver.
func (c *CachedIdentityResolver) ResolveDisplayNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = nameKey(id)
	}
	missing := ids
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.log.Warn().Err(err).Msg("caché de nombres no disponible, se consulta la base")
	} else {
		missing = missing[:0:0]
		for i, v := range values {
			if s, ok := v.(string); ok {
				names[ids[i]] = s
				continue
			}
			missing = append(missing, ids[i])
		}
	}
	if len(missing) == 0 {
		return names, nil
	}

	resolved, err := c.next.ResolveDisplayNames(ctx, missing)
	if err != nil {
		return nil, err
	}
	pipe := c.client.Pipeline()
	for id, name := range resolved {
		names[id] = name
		pipe.Set(ctx, nameKey(id), name, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Debug().Err(err).Int("names", len(resolved)).Msg("no se pudieron guardar nombres en caché")
	}
	return names, nil
}
