// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server exposes a cached terrain over HTTP and websocket.
package server

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/syndtr/goleveldb/leveldb"

	"heightfield/terrain"
	"heightfield/terrain/compressed"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Hub owns the terrain cache and the optional on-disk region cache.
type Hub struct {
	terrain    *compressed.Terrain
	cache      *leveldb.DB // may be nil
	seed       int64
	started    time.Time
	statusJSON atomic.Value // []byte
}

type HubOptions struct {
	Source terrain.Source
	Seed   int64
	// CachePath is a leveldb directory for persisting encoded regions
	// across restarts. Empty disables the cache.
	CachePath string
}

func NewHub(options HubOptions) (*Hub, error) {
	hub := &Hub{
		terrain: compressed.New(options.Source),
		seed:    options.Seed,
		started: time.Now(),
	}

	if options.CachePath != "" {
		db, err := leveldb.OpenFile(options.CachePath, nil)
		if err != nil {
			return nil, fmt.Errorf("open region cache: %w", err)
		}
		hub.cache = db
	}

	hub.refreshStatus()
	return hub, nil
}

func (h *Hub) Close() error {
	if h.cache != nil {
		return h.cache.Close()
	}
	return nil
}

type status struct {
	Seed   int64   `json:"seed"`
	Chunks int     `json:"chunks"`
	Uptime float64 `json:"uptime"` // seconds
}

func (h *Hub) refreshStatus() {
	buf, err := json.Marshal(status{
		Seed:   h.seed,
		Chunks: h.terrain.Chunks(),
		Uptime: time.Since(h.started).Seconds(),
	})
	if err != nil {
		log.Println("marshal status:", err)
		return
	}
	h.statusJSON.Store(buf)
}

// region returns an encoded excerpt, consulting the disk cache first.
// The terrain is deterministic per seed, so cached regions never go stale.
func (h *Hub) region(x, y, width, height int) *terrain.Data {
	var key []byte
	if h.cache != nil {
		key = []byte(fmt.Sprintf("region/%d/%d/%d/%d", x, y, width, height))

		if buf, err := h.cache.Get(key, nil); err == nil {
			data := terrain.NewData()
			if err = json.Unmarshal(buf, data); err == nil {
				return data
			}
			data.Pool()
			log.Println("region cache decode:", err)
		} else if err != leveldb.ErrNotFound {
			log.Println("region cache read:", err)
		}
	}

	data := h.terrain.Region(x, y, width, height)

	if h.cache != nil {
		if buf, err := json.Marshal(data); err == nil {
			if err = h.cache.Put(key, buf, nil); err != nil {
				log.Println("region cache write:", err)
			}
		}
	}

	return data
}
