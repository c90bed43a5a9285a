package handler

import (
	"context"
	"fmt"
	"park_manager/config"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{
		Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
	})

	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

// WaitTimeSocket streams live wait-time updates for one attraction.
// Each connection joins the attraction's room and relays Redis messages.
func WaitTimeSocket(c *websocket.Conn) {
	attractionIdStr := c.Params("id")
	id64, _ := strconv.ParseUint(attractionIdStr, 10, 64)
	attractionId := uint(id64)

	defer func() {
		mu.Lock()
		if clients[attractionId] != nil {
			delete(clients[attractionId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[attractionId] == nil {
		clients[attractionId] = make(map[*websocket.Conn]bool)
	}
	clients[attractionId][c] = true
	mu.Unlock()

	// Send the current value right away so the client does not wait
	// for the next update.
	if record, err := FetchAttractionWaitTime(attractionId); err == nil {
		c.WriteJSON(record)
	}

	pubsub := redisClient.Subscribe(
		context.Background(),
		fmt.Sprintf("attraction:%d", attractionId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[attractionId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[attractionId], conn)
			}
		}
		mu.Unlock()
	}
}
