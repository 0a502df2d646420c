package graph

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/cognitivecopilot/graphkit/internal/config"
)

// FalkorDriver talks to FalkorDB over the Redis protocol.
type FalkorDriver struct {
	opts   config.DatabaseConfig
	client *redis.Client
}

// NewFalkorDriver creates a driver from the given database settings.
// No connection is made until Connect is called.
func NewFalkorDriver(opts config.DatabaseConfig) *FalkorDriver {
	if opts.Host == "" {
		opts.Host = "localhost"
	}
	if opts.Port == 0 {
		opts.Port = config.DefaultPort
	}
	if opts.Graph == "" {
		opts.Graph = "default_db"
	}
	return &FalkorDriver{opts: opts}
}

// Connect dials FalkorDB and verifies the connection with a PING.
func (d *FalkorDriver) Connect(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(d.opts.Host, strconv.Itoa(d.opts.Port)),
		Username: d.opts.Username,
		Password: d.opts.Password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("connecting to falkordb at %s:%d: %w", d.opts.Host, d.opts.Port, err)
	}

	d.client = client
	return nil
}

// Query executes a Cypher query against the configured graph. Parameters
// are encoded as a CYPHER prefix, the convention FalkorDB clients use.
func (d *FalkorDriver) Query(ctx context.Context, query string, params map[string]any) (*Result, error) {
	if d.client == nil {
		return nil, ErrNotConnected
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	full := query
	if len(params) > 0 {
		prefix, err := encodeParams(params)
		if err != nil {
			return nil, err
		}
		full = prefix + " " + query
	}

	raw, err := d.client.Do(ctx, "GRAPH.QUERY", d.opts.Graph, full).Result()
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}

	return parseReply(raw)
}

// Close releases the underlying connection.
func (d *FalkorDriver) Close() error {
	if d.client == nil {
		return nil
	}
	err := d.client.Close()
	d.client = nil
	return err
}
