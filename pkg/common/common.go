package common

import (
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	snowflakeNode *snowflake.Node
	snowflakeOnce sync.Once
)

func node() *snowflake.Node {
	snowflakeOnce.Do(func() {
		rand.Seed(time.Now().UnixNano())
		n, err := snowflake.NewNode(rand.Int63n(1023))
		if err != nil {
			panic(err)
		}
		snowflakeNode = n
	})
	return snowflakeNode
}

// UUIDint64 returns a time-ordered unique int64 identifier.
func UUIDint64() int64 {
	return node().Generate().Int64()
}

// UUID returns the base36 string form of a snowflake identifier.
func UUID() string {
	return node().Generate().Base36()
}
