// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"heightfield/server"
	"heightfield/terrain"
	"heightfield/terrain/noise"
)

func main() {
	var (
		port      int
		seed      int64
		generator string
		tileSize  int
		base      float64
		dbPath    string
	)

	flag.IntVar(&port, "port", 8192, "http service port")
	flag.Int64Var(&seed, "seed", terrain.Seed, "random seed")
	flag.StringVar(&generator, "gen", "fractal", "source: fractal, perlin or simplex")
	flag.IntVar(&tileSize, "tile-size", terrain.TileSize, "fractal tile edge length (power of two)")
	flag.Float64Var(&base, "variance", 64, "fractal level 0 displacement bound")
	flag.StringVar(&dbPath, "db", "", "leveldb directory for the region cache (empty disables)")
	flag.Parse()

	var source terrain.Source
	switch generator {
	case "fractal":
		f, err := noise.NewFractal(seed, tileSize, float32(base))
		if err != nil {
			log.Fatal(err)
		}
		source = f
	case "perlin":
		source = noise.NewPerlin(seed, 0, 0)
	case "simplex":
		source = noise.NewSimplex(seed)
	default:
		log.Fatal("unknown generator: ", generator)
	}

	hub, err := server.NewHub(server.HubOptions{
		Source:    source,
		Seed:      seed,
		CachePath: dbPath,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer hub.Close()

	http.HandleFunc("/", hub.ServeIndex)
	http.HandleFunc("/terrain.png", hub.ServeImage)
	http.HandleFunc("/ws", hub.ServeSocket)

	log.Println("terrain server started on port", port)
	log.Fatal("ListenAndServe: ", http.ListenAndServe(fmt.Sprint(":", port), nil))
}
