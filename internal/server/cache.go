package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/thenoetrevino/kanban/internal/backend"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Locator resolves the board an entity belongs to, so that mutations
// addressed by column or card ID can evict the right snapshot
type Locator interface {
	BoardIDForColumn(ctx context.Context, id types.ColumnID) (types.BoardID, error)
	BoardIDForCard(ctx context.Context, id types.CardID) (types.BoardID, error)
}

// Source is a store the cache can wrap
type Source interface {
	backend.Store
	Locator
}

// Cache wraps a Source with a Redis-backed board snapshot cache. Reads go
// through the cache, every mutation evicts the affected board. A nil redis
// client turns the cache into a pass-through.
type Cache struct {
	base    Source
	redis   *redis.Client
	ttl     time.Duration
	metrics *Metrics
	logger  *slog.Logger
}

// errStaleSnapshot aborts a cache write that lost a race with an eviction
var errStaleSnapshot = errors.New("snapshot is older than the last eviction")

// Compile-time verification that *Cache can stand in for its base
var _ Source = (*Cache)(nil)

// NewCache creates a caching wrapper using the provided Redis client and TTL.
// A zero TTL keeps entries until the next mutation evicts them.
func NewCache(base Source, client *redis.Client, ttl time.Duration, metrics *Metrics, logger *slog.Logger) *Cache {
	if base == nil {
		panic("server.NewCache: base store is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		base:    base,
		redis:   client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *Cache) GetBoard(ctx context.Context, boardID types.BoardID) (models.Snapshot, error) {
	if snap, ok := c.load(ctx, boardID); ok {
		c.metrics.IncCacheHits()
		return snap, nil
	}
	c.metrics.IncCacheMisses()

	// Read the generation first so an eviction during the base read
	// keeps this snapshot out of the cache
	gen, genOK := c.generation(ctx, boardID)
	snap, err := c.base.GetBoard(ctx, boardID)
	if err != nil {
		return models.Snapshot{}, err
	}
	if genOK {
		c.store(ctx, boardID, gen, snap)
	}
	return snap, nil
}

func (c *Cache) ListBoards(ctx context.Context) ([]models.Board, error) {
	return c.base.ListBoards(ctx)
}

func (c *Cache) CreateBoard(ctx context.Context, board models.Board) (models.Board, error) {
	return c.base.CreateBoard(ctx, board)
}

func (c *Cache) CreateColumn(ctx context.Context, column models.Column) (models.Column, error) {
	created, err := c.base.CreateColumn(ctx, column)
	if err != nil {
		return models.Column{}, err
	}
	c.evict(ctx, created.BoardID)
	return created, nil
}

func (c *Cache) UpdateColumn(ctx context.Context, column models.Column) error {
	boardID := c.columnBoard(ctx, column.ID)
	if err := c.base.UpdateColumn(ctx, column); err != nil {
		return err
	}
	c.evict(ctx, boardID)
	return nil
}

func (c *Cache) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	// Resolve before deleting, the row is gone afterwards
	boardID := c.columnBoard(ctx, id)
	if err := c.base.DeleteColumn(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, boardID)
	return nil
}

func (c *Cache) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	created, err := c.base.CreateCard(ctx, card)
	if err != nil {
		return models.Card{}, err
	}
	c.evict(ctx, c.columnBoard(ctx, created.ColumnID))
	return created, nil
}

func (c *Cache) UpdateCard(ctx context.Context, card models.Card) error {
	boardID := c.cardBoard(ctx, card.ID)
	if err := c.base.UpdateCard(ctx, card); err != nil {
		return err
	}
	c.evict(ctx, boardID)
	return nil
}

func (c *Cache) MoveCard(ctx context.Context, id types.CardID, columnID types.ColumnID, order int) error {
	boardID := c.cardBoard(ctx, id)
	if err := c.base.MoveCard(ctx, id, columnID, order); err != nil {
		return err
	}
	c.evict(ctx, boardID)
	return nil
}

func (c *Cache) DeleteCard(ctx context.Context, id types.CardID) error {
	boardID := c.cardBoard(ctx, id)
	if err := c.base.DeleteCard(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, boardID)
	return nil
}

func (c *Cache) BoardIDForColumn(ctx context.Context, id types.ColumnID) (types.BoardID, error) {
	return c.base.BoardIDForColumn(ctx, id)
}

func (c *Cache) BoardIDForCard(ctx context.Context, id types.CardID) (types.BoardID, error) {
	return c.base.BoardIDForCard(ctx, id)
}

// columnBoard returns the owning board or the zero ID when the column is
// unknown. The mutation that follows reports the not-found error itself.
func (c *Cache) columnBoard(ctx context.Context, id types.ColumnID) types.BoardID {
	boardID, err := c.base.BoardIDForColumn(ctx, id)
	if err != nil {
		return ""
	}
	return boardID
}

func (c *Cache) cardBoard(ctx context.Context, id types.CardID) types.BoardID {
	boardID, err := c.base.BoardIDForCard(ctx, id)
	if err != nil {
		return ""
	}
	return boardID
}

func (c *Cache) load(ctx context.Context, boardID types.BoardID) (models.Snapshot, bool) {
	if c.redis == nil {
		return models.Snapshot{}, false
	}
	key := boardCacheKey(boardID)
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// On redis errors fall back to the backing store without failing
			c.logger.Warn("cache read failed", "key", key, "error", err)
			_ = c.redis.Del(ctx, key).Err()
		}
		return models.Snapshot{}, false
	}
	var snap models.Snapshot
	if err := sonic.Unmarshal(data, &snap); err != nil {
		c.logger.Warn("dropping corrupt cache entry", "key", key, "error", err)
		_ = c.redis.Del(ctx, key).Err()
		return models.Snapshot{}, false
	}
	return snap, true
}

// generation returns the eviction counter of a board. ok is false when
// redis cannot be read, in which case nothing may be stored.
func (c *Cache) generation(ctx context.Context, boardID types.BoardID) (int64, bool) {
	if c.redis == nil {
		return 0, false
	}
	gen, err := c.redis.Get(ctx, boardGenKey(boardID)).Int64()
	switch {
	case err == nil:
		return gen, true
	case errors.Is(err, redis.Nil):
		return 0, true
	default:
		return 0, false
	}
}

// store writes snap only while the board generation still equals gen
func (c *Cache) store(ctx context.Context, boardID types.BoardID, gen int64, snap models.Snapshot) {
	data, err := sonic.Marshal(snap)
	if err != nil {
		return
	}
	genKey := boardGenKey(boardID)
	err = c.redis.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return errStaleSnapshot
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, boardCacheKey(boardID), data, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleSnapshot), errors.Is(err, redis.TxFailedErr):
		c.logger.Debug("skipping stale snapshot", "board_id", boardID)
	default:
		c.logger.Warn("cache write failed", "board_id", boardID, "error", err)
	}
}

// evict bumps the board generation and drops its snapshot
func (c *Cache) evict(ctx context.Context, boardID types.BoardID) {
	if c.redis == nil || boardID.IsZero() {
		return
	}
	_, err := c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, boardGenKey(boardID))
		pipe.Del(ctx, boardCacheKey(boardID))
		return nil
	})
	if err != nil {
		c.logger.Warn("cache evict failed", "board_id", boardID, "error", err)
	}
}

func boardCacheKey(boardID types.BoardID) string {
	return "board:" + boardID.String()
}

func boardGenKey(boardID types.BoardID) string {
	return boardCacheKey(boardID) + ":gen"
}
