package leopard16

// Encoder accumulates K original shards and produces M recovery shards,
// choosing High-Rate or Low-Rate based on which of K, M is larger.
type Encoder struct {
	dataShards, parityShards, shardSize int
	engine                              Engine
	logger                              Logger
	shards                              [][]byte
	count                               int
}

// NewEncoder validates the shard shape (K, M, S) and returns a ready-to-fill
// Encoder. The concrete Engine is resolved once via options (DefaultEngine
// unless overridden with WithEngine).
func NewEncoder(dataShards, parityShards, shardSize int, opts ...Option) (*Encoder, error) {
	if err := validateShape(dataShards, parityShards, shardSize); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Encoder{
		dataShards:   dataShards,
		parityShards: parityShards,
		shardSize:    shardSize,
		engine:       o.engine,
		logger:       o.logger,
		shards:       make([][]byte, dataShards),
	}, nil
}

func validateShape(dataShards, parityShards, shardSize int) error {
	if dataShards < 1 || parityShards < 1 {
		return ErrInvalidShardCount
	}
	if dataShards+parityShards > fieldOrder {
		return ErrTooManyShards
	}
	if shardSize < 64 || shardSize%64 != 0 {
		return ErrInvalidShardSize
	}
	return nil
}

// AddOriginalShard appends the next original shard. Fails if K shards have
// already been supplied or b's length doesn't match the configured S.
func (e *Encoder) AddOriginalShard(b []byte) error {
	if e.count >= e.dataShards {
		return ErrAllShardsSet
	}
	if len(b) != e.shardSize {
		return ErrShardWrongLength
	}
	e.shards[e.count] = b
	e.count++
	return nil
}

// Encode runs the rate-specific pipeline and returns the M recovery shards.
// All K originals must have been added first.
func (e *Encoder) Encode() ([][]byte, error) {
	if e.count != e.dataShards {
		return nil, ErrTooFewShards
	}
	var recovery [][]byte
	if e.parityShards <= e.dataShards {
		recovery = HighRateEncode(e.engine, e.shards, e.parityShards, e.shardSize)
	} else {
		recovery = LowRateEncode(e.engine, e.shards, e.parityShards, e.shardSize)
	}
	e.logger.Debugf("leopard16: encoded %d originals into %d recovery shards", e.dataShards, e.parityShards)
	return recovery, nil
}

// Reset reconfigures the encoder for reuse. Reallocates the shard slice
// only when the data-shard count changes; the caller is expected to reuse
// the returned recovery buffers from prior calls as it sees fit.
func (e *Encoder) Reset(dataShards, parityShards, shardSize int) error {
	if err := validateShape(dataShards, parityShards, shardSize); err != nil {
		return err
	}
	if dataShards == e.dataShards {
		for i := range e.shards {
			e.shards[i] = nil
		}
	} else {
		e.shards = make([][]byte, dataShards)
	}
	e.dataShards, e.parityShards, e.shardSize = dataShards, parityShards, shardSize
	e.count = 0
	return nil
}
