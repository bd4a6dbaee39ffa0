// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"image/png"
	"log"
	"net/http"
	"strconv"

	"heightfield/terrain"
)

// maxRegionEdge bounds the size of a single requested region.
const maxRegionEdge = 1024

func (h *Hub) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	buf, ok := h.statusJSON.Load().([]byte)
	if ok {
		_, _ = w.Write(buf)
	}
}

// ServeImage renders a region as PNG. Query parameters x, y, width and
// height select the region; the default is the top-left 512 square.
func (h *Hub) ServeImage(w http.ResponseWriter, r *http.Request) {
	x := queryInt(r, "x", 0)
	y := queryInt(r, "y", 0)
	width := clampEdge(queryInt(r, "width", 512))
	height := clampEdge(queryInt(r, "height", 512))

	img := terrain.Render(h.terrain, x, y, width, height)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Println("encode image:", err)
	}

	h.refreshStatus()
}

func (h *Hub) ServeSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error", err)
		return
	}

	go h.readPump(conn)
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func clampEdge(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxRegionEdge {
		return maxRegionEdge
	}
	return n
}
