package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

const defaultNode = 1

var (
	node    *snowflake.Node
	once    sync.Once
	initErr error
)

// Init initializes the Snowflake node with the given node ID.
// Only the first call has an effect.
func Init(nodeID int64) error {
	once.Do(func() {
		node, initErr = snowflake.NewNode(nodeID)
	})
	return initErr
}

// New generates a time-ordered int64 ID for a feedback request.
// Falls back to node 1 when Init was never called (tests, tools).
func New() int64 {
	if err := Init(defaultNode); err != nil || node == nil {
		return 0
	}
	return node.Generate().Int64()
}
