// Package redisstore implementa fiber.Storage sobre Redis para respaldar las
// sesiones de las páginas HTML: las cookies de sesión sobreviven reinicios
// del proceso y se comparten entre réplicas.
package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/lindakrystal/inventario/pkg/config"
)

// Storage almacén de sesiones sobre Redis. Satisface fiber.Storage.
type Storage struct {
	rdb    *redis.Client
	prefix string
}

// New crea el cliente Redis y verifica la conexión con un PING.
func New(cfg config.RedisConfig) (*Storage, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Storage{rdb: rdb, prefix: "session:"}, nil
}

// Get recupera el valor de una clave. Clave inexistente devuelve (nil, nil),
// como espera el middleware de sesión de Fiber.
func (s *Storage) Get(key string) ([]byte, error) {
	val, err := s.rdb.Get(context.Background(), s.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Set guarda un valor con expiración (0 = sin expiración).
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if err := s.rdb.Set(context.Background(), s.prefix+key, val, exp).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete elimina una clave. Clave inexistente no es error.
func (s *Storage) Delete(key string) error {
	if err := s.rdb.Del(context.Background(), s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Reset elimina todas las sesiones almacenadas.
func (s *Storage) Reset() error {
	ctx := context.Background()
	iter := s.rdb.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis reset: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	return nil
}

// Close cierra la conexión con Redis.
func (s *Storage) Close() error {
	return s.rdb.Close()
}
