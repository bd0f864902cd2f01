package kvstore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Redis — стор поверх redis. Потолок размера значения соблюдаем сами,
// чтобы оба бекенда вели себя одинаково.
type Redis struct {
	cli     *redis.Client
	maxSize int
}

func NewRedis(cli *redis.Client, maxSize int) *Redis {
	return &Redis{cli: cli, maxSize: maxSize}
}

func (s *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.cli.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "get %q", key)
	}
	return v, true, nil
}

func (s *Redis) Set(ctx context.Context, key string, value []byte) error {
	if len(value) > s.maxSize {
		return errors.Wrapf(ErrValueTooLarge, "%q: %d bytes", key, len(value))
	}
	return errors.Wrapf(s.cli.Set(ctx, key, value, 0).Err(), "set %q", key)
}

func (s *Redis) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(s.cli.Del(ctx, key).Err(), "delete %q", key)
}

func (s *Redis) MaxValueSize() int { return s.maxSize }
