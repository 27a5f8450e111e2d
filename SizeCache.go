// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package multifile

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Remembers probed sizes of remote sources, so readers created by the same
// resolver don't repeat the probe round trip. A nil *SizeCache caches nothing.
// Concurrency: thread safe
type SizeCache struct {
	Cache *lru.Cache[string, int64]
}

// Creates a cache holding at most maxEntries sizes, nil if maxEntries <= 0
func NewSizeCache(maxEntries int) (*SizeCache, error) {
	if maxEntries <= 0 {
		return nil, nil
	}
	cache, err := lru.New[string, int64](maxEntries)
	if err != nil {
		return nil, err
	}
	return &SizeCache{Cache: cache}, nil
}

func (this *SizeCache) Get(identifier string) (int64, bool) {
	if this == nil {
		return 0, false
	}
	return this.Cache.Get(identifier)
}

func (this *SizeCache) Add(identifier string, size int64) {
	if this != nil {
		this.Cache.Add(identifier, size)
	}
}

func (this *SizeCache) Len() int {
	if this == nil {
		return 0
	}
	return this.Cache.Len()
}

// Source decorator which consults SizeCache before probing
type cachingSource struct {
	Source
	SizeCache *SizeCache
}

var _ Source = (*cachingSource)(nil) // ensure cachingSource implements Source

func (this *cachingSource) Size() (int64, error) {
	if size, ok := this.SizeCache.Get(this.Identifier()); ok {
		return size, nil
	}
	size, err := this.Source.Size()
	if err != nil {
		return 0, err
	}
	this.SizeCache.Add(this.Identifier(), size)
	return size, nil
}
