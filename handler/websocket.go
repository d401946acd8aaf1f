package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"pouchesitaly/config"
	"pouchesitaly/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const orderFeedChannel = "orders:feed"

// feedConn is the subset of *websocket.Conn the fan-out needs.
type feedConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	feedClients = make(map[feedConn]bool)
	feedMu      sync.Mutex
	feedOnce    sync.Once
)

func getRedis() *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		})
	})
	return redisClient
}

// BroadcastOrder publishes an order event to the admin live feed.
// Best effort: a dead redis never blocks checkout.
func BroadcastOrder(orderID uint, status string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		payload, _ := json.Marshal(map[string]any{
			"order_id": orderID,
			"status":   status,
			"at":       time.Now().UTC().Format(time.RFC3339),
		})
		if err := getRedis().Publish(ctx, orderFeedChannel, payload).Err(); err != nil {
			logger.Warn("order feed publish failed", "order_id", orderID, "error", err)
		}
	}()
}

func addFeedClient(c feedConn) {
	feedMu.Lock()
	feedClients[c] = true
	feedMu.Unlock()
}

func removeFeedClient(c feedConn) {
	feedMu.Lock()
	delete(feedClients, c)
	feedMu.Unlock()
	c.Close()
}

// fanoutOrderEvents writes each event to every registered client
// exactly once, dropping clients whose write fails.
func fanoutOrderEvents(events <-chan string) {
	for payload := range events {
		data := []byte(payload)

		feedMu.Lock()
		for conn := range feedClients {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				conn.Close()
				delete(feedClients, conn)
			}
		}
		feedMu.Unlock()
	}
}

// startOrderFeed runs the single redis subscription shared by all
// dashboard sockets.
func startOrderFeed() {
	feedOnce.Do(func() {
		pubsub := getRedis().Subscribe(context.Background(), orderFeedChannel)
		events := make(chan string)
		go func() {
			defer close(events)
			for msg := range pubsub.Channel() {
				events <- msg.Payload
			}
		}()
		go fanoutOrderEvents(events)
	})
}

// OrderFeedSocket streams order events to an admin dashboard client.
// One subscriber goroutine feeds the whole client set; fan-out goes
// through redis so multiple instances share one feed.
func OrderFeedSocket(c *websocket.Conn) {
	addFeedClient(c)
	defer removeFeedClient(c)

	startOrderFeed()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
