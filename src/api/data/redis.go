package data

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

const streamActivities = "missionctl.activities"

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// PublishActivity pushes one activity record onto the live feed stream
// consumed by the dashboard.
func PublishActivity(ctx context.Context, rdb *redis.Client, payload map[string]interface{}) error {
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: streamActivities,
		Values: payload,
	}).Result()
	return err
}
