// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"

	"heightfield/terrain"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 5 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	HandshakeTimeout: time.Second,
	ReadBufferSize:   maxMessageSize,
	WriteBufferSize:  2048,
}

type (
	// messageJSON is the typed envelope both directions use.
	messageJSON struct {
		Type string              `json:"type"`
		Data jsoniter.RawMessage `json:"data"`
	}

	regionRequest struct {
		X      int `json:"x"`
		Y      int `json:"y"`
		Width  int `json:"width"`
		Height int `json:"height"`
	}

	regionMessage struct {
		Type string        `json:"type"`
		Data *terrain.Data `json:"data"`
	}
)

// readPump answers region requests until the peer goes away.
func (h *Hub) readPump(conn *websocket.Conn) {
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	for {
		_, buf, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("socket error:", err)
			}
			return
		}

		var message messageJSON
		if err = json.Unmarshal(buf, &message); err != nil {
			log.Println("invalid message:", err)
			return
		}

		switch message.Type {
		case "region":
			var request regionRequest
			if err = json.Unmarshal(message.Data, &request); err != nil {
				log.Println("invalid region request:", err)
				return
			}

			request.Width = clampEdge(request.Width)
			request.Height = clampEdge(request.Height)

			data := h.region(request.X, request.Y, request.Width, request.Height)
			out, err := json.Marshal(regionMessage{Type: "region", Data: data})
			data.Pool()
			if err != nil {
				log.Println("marshal region:", err)
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err = conn.WriteMessage(websocket.TextMessage, out); err != nil {
				return
			}

			h.refreshStatus()
		default:
			log.Println("unknown message type:", message.Type)
		}
	}
}
