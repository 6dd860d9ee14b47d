package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript удаляет блокировку, только если она все еще принадлежит владельцу
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisInFlightGuard блокировка команд в Redis, общая для всех инстансов сервиса
// TTL ограничивает время жизни блокировки, если инстанс упал посреди команды
type RedisInFlightGuard struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

func NewRedisInFlightGuard(client *redis.Client, ttl time.Duration, log Logger) *RedisInFlightGuard {
	return &RedisInFlightGuard{client: client, ttl: ttl, log: log}
}

func (g *RedisInFlightGuard) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGuardUnavailable, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCommandInFlight, key)
	}

	release := func() {
		ctx := context.WithoutCancel(ctx)
		if err := releaseScript.Run(ctx, g.client, []string{key}, token).Err(); err != nil {
			g.log.Warn("Failed to release in-flight lock %s: %v", key, err)
		}
	}
	return release, nil
}

// MemoryInFlightGuard блокировка команд в памяти для одиночного инстанса и тестов
type MemoryInFlightGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemoryInFlightGuard() *MemoryInFlightGuard {
	return &MemoryInFlightGuard{held: make(map[string]struct{})}
}

func (g *MemoryInFlightGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.held[key]; ok {
		return nil, fmt.Errorf("%w: %s", ErrCommandInFlight, key)
	}
	g.held[key] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}
	return release, nil
}
