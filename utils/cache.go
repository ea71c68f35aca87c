package utils

import (
	"context"
	"log"
	"time"

	"broheal/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for sessions and token hashes.
	AuthCacheClient *redis.Client
	// OTPCacheClient is the dedicated client for OTP codes and cooldowns.
	OTPCacheClient *redis.Client
	// HoldCacheClient is the dedicated client for short-TTL slot holds.
	HoldCacheClient *redis.Client
)

func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", label, err)
	}
	return client
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth")
	OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB, "OTP")
	HoldCacheClient = newRedisClient(config.AppConfig.RedisHoldDB, "Hold")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for sessions and token hashes.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth")
	}
	return AuthCacheClient
}

// GetOTPCacheClient returns the Redis client for OTP codes.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB, "OTP")
	}
	return OTPCacheClient
}

// GetHoldCacheClient returns the Redis client for slot holds.
func GetHoldCacheClient() *redis.Client {
	if HoldCacheClient == nil {
		HoldCacheClient = newRedisClient(config.AppConfig.RedisHoldDB, "Hold")
	}
	return HoldCacheClient
}
