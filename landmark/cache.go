package landmark

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes evaluators per goal over one table. Repeated queries toward
// the same goal reuse the evaluator instead of re-reading the goal column.
// It is safe for concurrent use.
type Cache struct {
	table *Table
	lru   *lru.Cache[int, *Evaluator]
}

// NewCache returns a cache holding at most size evaluators.
func NewCache(table *Table, size int) (*Cache, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCacheSize, size)
	}
	c, err := lru.New[int, *Evaluator](size)
	if err != nil {
		return nil, fmt.Errorf("landmark: cache: %w", err)
	}

	return &Cache{table: table, lru: c}, nil
}

// Get returns the evaluator for goal, building it on a miss.
func (c *Cache) Get(goal int) (*Evaluator, error) {
	if e, ok := c.lru.Get(goal); ok {
		return e, nil
	}
	e, err := c.table.Heuristic(goal)
	if err != nil {
		return nil, err
	}
	c.lru.Add(goal, e)

	return e, nil
}

// Len returns the number of cached evaluators.
func (c *Cache) Len() int { return c.lru.Len() }

// Table returns the underlying table.
func (c *Cache) Table() *Table { return c.table }
