package leopard16

import "errors"

// Configuration errors: parameters out of range, zero counts.
var (
	ErrInvalidShardCount = errors.New("leopard16: dataShards and parityShards must each be >= 1")
	ErrTooManyShards     = errors.New("leopard16: dataShards+parityShards exceeds 65536")
	ErrInvalidShardSize  = errors.New("leopard16: shardSize must be >= 64 and a multiple of 64")
)

// Protocol errors: caller misused the shard-accumulation contract.
var (
	ErrShardAlreadySet  = errors.New("leopard16: shard already set at this index")
	ErrShardIndexRange  = errors.New("leopard16: shard index out of range")
	ErrShardWrongLength = errors.New("leopard16: shard length does not match configured shardSize")
	ErrTooFewShards     = errors.New("leopard16: fewer than dataShards shards supplied to encode")
	ErrNotEnoughShards  = errors.New("leopard16: fewer than dataShards shards (originals+recoveries) available to decode")
	ErrAllShardsSet     = errors.New("leopard16: all dataShards slots already filled")
)
