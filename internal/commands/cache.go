// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package commands

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/datapack-land/mcsyntax/internal/stores/sqlite"
)

// cacheSize bounds the in-process layer: a handful of schemas covers
// every Minecraft version a workspace realistically mixes.
const cacheSize = 8

// Cache fronts schema generation with two layers: an in-process LRU for
// repeated loads within one process, and an optional on-disk store so a
// freshly started CLI can skip report parsing entirely. Both layers key
// by a content hash of the source report, so a changed report never
// serves a stale schema.
type Cache struct {
	lru   *lru.Cache[string, *Commands]
	store *sqlite.Store
}

// NewCache builds a cache. store may be nil for a memory-only cache.
func NewCache(store *sqlite.Store) (*Cache, error) {
	l, err := lru.New[string, *Commands](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("commands: cache: %w", err)
	}
	return &Cache{lru: l, store: store}, nil
}

// Hash returns the cache key for a report's content.
func Hash(report []byte) string {
	sum := sha256.Sum256(report)
	return hex.EncodeToString(sum[:])
}

// Load returns the schema for report, generating and caching it on a
// miss. name is recorded alongside the on-disk entry for reporting only.
func (c *Cache) Load(name string, report []byte) (*Commands, error) {
	hash := Hash(report)
	if cmds, ok := c.lru.Get(hash); ok {
		return cmds, nil
	}
	if c.store != nil {
		payload, err := c.store.GetSchema(hash)
		if err == nil {
			cmds, err := Decode(payload)
			if err == nil {
				c.lru.Add(hash, cmds)
				return cmds, nil
			}
			// a corrupt payload is not fatal; fall through and regenerate
			log.Printf("commands: cache: %s: %v\n", hash[:12], err)
		} else if !errors.Is(err, sqlite.ErrNotFound) {
			return nil, fmt.Errorf("commands: cache: %w", err)
		}
	}
	cmds, err := Load(report)
	if err != nil {
		return nil, err
	}
	c.lru.Add(hash, cmds)
	if c.store != nil {
		payload, err := cmds.Encode()
		if err != nil {
			return nil, fmt.Errorf("commands: cache: %w", err)
		}
		if err := c.store.PutSchema(hash, name, cmds.Len(), payload); err != nil {
			return nil, fmt.Errorf("commands: cache: %w", err)
		}
	}
	return cmds, nil
}
