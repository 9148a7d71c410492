package atsinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/resumeforge/resumeforge/builder/ats"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// RedisReportCache implements ats.ReportCache using Redis
type RedisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache creates a new Redis-backed report cache
func NewRedisReportCache(client *redis.Client) ats.ReportCache {
	return &RedisReportCache{
		client: client,
	}
}

func cacheKey(id kernel.ReportID) string {
	return "ats:report:" + id.String()
}

// Get returns the cached report or nil on miss
func (c *RedisReportCache) Get(ctx context.Context, id kernel.ReportID) (*ats.ATSReport, error) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, fmt.Errorf("cache get report %s: %w", id, err)
	}

	var report ats.ATSReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("cache unmarshal report %s: %w", id, err)
	}

	return &report, nil
}

// Set stores a report with the given TTL
func (c *RedisReportCache) Set(ctx context.Context, report *ats.ATSReport, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("cache marshal report %s: %w", report.ID, err)
	}

	if err := c.client.Set(ctx, cacheKey(report.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set report %s: %w", report.ID, err)
	}

	return nil
}
