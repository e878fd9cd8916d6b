package redisclient

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medixpro/medixpro/internal/jobs"
)

// ErrEmpty means no job was available within the dequeue wait window.
var ErrEmpty = errors.New("queue is empty")

type Client struct {
	redisdb *redis.Client
	key     string
}

type Config struct {
	Addr     string
	Password string
	DB       int
	QueueKey string
}

func New(cfg Config) *Client {
	redisdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  -1, // blocking reads manage their own deadline
		WriteTimeout: 2 * time.Second,
	})

	return &Client{redisdb: redisdb, key: cfg.QueueKey}
}

// this ping function checks redis connectivity

func (c *Client) Ping(ctx context.Context) error {
	return c.redisdb.Ping(ctx).Err()
}

// this closes the client

func (c *Client) Close() error {
	return c.redisdb.Close()
}

// Enqueue pushes a job onto the head of the list; workers pop from the
// tail, so the queue is FIFO.
func (c *Client) Enqueue(ctx context.Context, j jobs.Job) error {
	b, err := json.Marshal(j)

	if err != nil {
		return err
	}

	return c.redisdb.LPush(ctx, c.key, b).Err()
}

// Dequeue blocks up to wait for the next job. ErrEmpty signals an idle
// queue, not a failure.
func (c *Client) Dequeue(ctx context.Context, wait time.Duration) (jobs.Job, error) {
	res, err := c.redisdb.BRPop(ctx, wait, c.key).Result()

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return jobs.Job{}, ErrEmpty
		}

		return jobs.Job{}, err
	}

	// BRPop returns [key, value]
	if len(res) != 2 {
		return jobs.Job{}, ErrEmpty
	}

	var j jobs.Job

	if err := json.Unmarshal([]byte(res[1]), &j); err != nil {
		return jobs.Job{}, err
	}

	return j, nil
}

// this exposes the redis client for readiness probes

func (c *Client) Raw() *redis.Client {
	return c.redisdb
}
