// Package cache holds the process-wide caches of the web server.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

const dateRangeKey = "date_range"

type DateRangeLoader func(ctx context.Context) (model.DateRange, error)

// DateRangeCache keeps the single (desde, actualizacion) value shown in the page header.
type DateRangeCache struct {
	lru *expirable.LRU[string, model.DateRange]
}

// NewDateRangeCache keeps the value for ttl; ttl <= 0 keeps it until Purge.
func NewDateRangeCache(ttl time.Duration) *DateRangeCache {
	return &DateRangeCache{
		lru: expirable.NewLRU[string, model.DateRange](1, nil, ttl),
	}
}

func (c *DateRangeCache) Get(ctx context.Context, load DateRangeLoader) (model.DateRange, error) {
	if r, ok := c.lru.Get(dateRangeKey); ok {
		return r, nil
	}

	r, err := load(ctx)
	if err != nil {
		return model.DateRange{}, err
	}

	c.lru.Add(dateRangeKey, r)
	return r, nil
}

func (c *DateRangeCache) Purge() {
	c.lru.Purge()
}
