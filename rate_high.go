package leopard16

// HighRateEncode 实现 High-Rate 编码方案(用于 M ≤ K):把校验分片数舍入到
// 下一个 2 的幂 M',工作缓冲区大小 N = 2·M',skewDelta = M'。原始分片按 M'
// 为一组分块,每块先做一次 truncated IFFT 写入暂存区,再异或进累加器;
// skewDelta 随分块序号递增 M',让同一套蝶形代码在每个分块上取用对应的系数
// 列。最后对累加器做一次 FFT(skewDelta=0)求出校验分片。
func HighRateEncode(e Engine, originals [][]byte, parityShards, shardSize int) [][]byte {
	dataShards := len(originals)
	m := ceilPow2(parityShards)

	work := allocShards(2*m, shardSize)
	accum := newShardView(work[:m])
	scratch := newShardView(work[m:])

	mtrunc := m
	if dataShards < mtrunc {
		mtrunc = dataShards
	}
	skewDelta := m
	ifftEncodeChunk(e, accum, originals[:mtrunc], mtrunc, m, skewDelta)

	rest := originals[mtrunc:]
	for len(rest) >= m {
		skewDelta += m
		ifftEncodeChunk(e, scratch, rest[:m], m, m, skewDelta)
		xorShards(e, work[:m], work[m:])
		rest = rest[m:]
	}
	if len(rest) != 0 {
		skewDelta += m
		ifftEncodeChunk(e, scratch, rest, len(rest), m, skewDelta)
		xorShards(e, work[:m], work[m:])
	}

	e.FFT(accum, 0, m, parityShards, 0)

	recovery := allocShards(parityShards, shardSize)
	copyShards(recovery, work[:parityShards])
	return recovery
}
