// Package devices stores the push token of each driver's device in Redis.
package devices

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "roadside:device"

type store interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisDeviceRegistry implements ports.DeviceRegistry. A registration expires
// after ttl unless the driver app registers again; zero keeps it forever.
type RedisDeviceRegistry struct {
	client store
	ttl    time.Duration
}

func NewRedisDeviceRegistry(client redis.Cmdable, ttl time.Duration) *RedisDeviceRegistry {
	return &RedisDeviceRegistry{client: client, ttl: ttl}
}

func (r *RedisDeviceRegistry) Register(ctx context.Context, driverID kernel.UUID, deviceToken string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	deviceToken = strings.TrimSpace(deviceToken)
	if deviceToken == "" {
		return errs.NewValueIsRequiredError("deviceToken")
	}

	return r.client.Set(ctx, key(driverID), deviceToken, r.ttl).Err()
}

func (r *RedisDeviceRegistry) Lookup(ctx context.Context, driverID kernel.UUID) (string, error) {
	if err := driverID.Validate(); err != nil {
		return "", err
	}

	token, err := r.client.Get(ctx, key(driverID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", errs.NewObjectNotFoundError("driverId", driverID.String())
	}
	if err != nil {
		return "", err
	}

	return token, nil
}

func key(driverID kernel.UUID) string {
	return fmt.Sprintf("%s:%s", keyPrefix, driverID)
}
