// Package idgen assigns snowflake IDs to records created through the
// dev backend, so IDs stay unique across drivers without relying on
// database autoincrement.
package idgen

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	log "github.com/sirupsen/logrus"
)

var (
	node *snowflake.Node
	once sync.Once
)

// NextID returns a new unique int64 ID
func NextID() int64 {
	once.Do(func() {
		var err error
		node, err = snowflake.NewNode(1)
		if err != nil {
			log.Fatalf("failed to init snowflake node: %v", err)
		}
	})
	return node.Generate().Int64()
}
