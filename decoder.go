package leopard16

// Decoder records which of the K original and M recovery shards have
// arrived and reconstructs the missing originals once at least K have
// arrived (in any combination), driven by decodeCore or lowRateDecodeCore
// (rate.go, rate_low.go) depending on which scheme produced the recovery
// shards.
type Decoder struct {
	dataShards, parityShards, shardSize int
	engine                              Engine
	logger                              Logger
	shards                              [][]byte // [0,dataShards) originals, [dataShards,...) recoveries
	present                             int
}

// NewDecoder validates the shard shape (K, M, S) and returns a ready-to-fill
// Decoder.
func NewDecoder(dataShards, parityShards, shardSize int, opts ...Option) (*Decoder, error) {
	if err := validateShape(dataShards, parityShards, shardSize); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Decoder{
		dataShards:   dataShards,
		parityShards: parityShards,
		shardSize:    shardSize,
		engine:       o.engine,
		logger:       o.logger,
		shards:       make([][]byte, dataShards+parityShards),
	}, nil
}

// AddOriginalShard records an original shard at logical index i.
func (d *Decoder) AddOriginalShard(i int, b []byte) error {
	if i < 0 || i >= d.dataShards {
		return ErrShardIndexRange
	}
	if len(b) != d.shardSize {
		return ErrShardWrongLength
	}
	if d.shards[i] != nil {
		return ErrShardAlreadySet
	}
	d.shards[i] = b
	d.present++
	return nil
}

// AddRecoveryShard records a recovery shard at logical index i.
func (d *Decoder) AddRecoveryShard(i int, b []byte) error {
	if i < 0 || i >= d.parityShards {
		return ErrShardIndexRange
	}
	if len(b) != d.shardSize {
		return ErrShardWrongLength
	}
	idx := d.dataShards + i
	if d.shards[idx] != nil {
		return ErrShardAlreadySet
	}
	d.shards[idx] = b
	d.present++
	return nil
}

// Decode reconstructs and returns the K original shards. At least K of the
// K+M slots must have arrived, in any combination of originals/recoveries.
func (d *Decoder) Decode() ([][]byte, error) {
	if d.present < d.dataShards {
		return nil, ErrNotEnoughShards
	}

	missing := false
	for i := 0; i < d.dataShards; i++ {
		if d.shards[i] == nil {
			missing = true
			break
		}
	}
	if missing {
		if d.parityShards <= d.dataShards {
			decodeCore(d.engine, d.shards, d.dataShards, d.parityShards, d.shardSize, false)
		} else {
			lowRateDecodeCore(d.engine, d.shards, d.dataShards, d.parityShards, d.shardSize, false)
		}
		d.logger.Debugf("leopard16: reconstructed missing originals out of %d present shards", d.present)
	}

	out := allocShards(d.dataShards, d.shardSize)
	copyShards(out, d.shards[:d.dataShards])
	return out, nil
}

// Reset reconfigures the decoder for reuse.
func (d *Decoder) Reset(dataShards, parityShards, shardSize int) error {
	if err := validateShape(dataShards, parityShards, shardSize); err != nil {
		return err
	}
	total := dataShards + parityShards
	if total == d.dataShards+d.parityShards {
		for i := range d.shards {
			d.shards[i] = nil
		}
	} else {
		d.shards = make([][]byte, total)
	}
	d.dataShards, d.parityShards, d.shardSize = dataShards, parityShards, shardSize
	d.present = 0
	return nil
}
