package leopard16

import "math/bits"

// ceilPow2 返回大于或等于 n 的最小 2 的幂,n>=1。两套速率方案都用它把 K、M
// 舍入到加法 FFT/IFFT 要求的二次幂变换尺寸。
func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	const w = bits.UintSize
	return 1 << (w - bits.LeadingZeros(uint(n-1)))
}

// allocShards 分配 count 个长度为 size 的零值分片,满足引擎要求的 64 字节
// 块对齐(调用方已经校验过 size%64==0)。
func allocShards(count, size int) [][]byte {
	buf := make([][]byte, count)
	for i := range buf {
		buf[i] = make([]byte, size)
	}
	return buf
}

// xorShards 计算 dst[i] ^= src[i],用于把两个不同工作缓冲区的内容合并——
// Engine.XORWithin 只处理同一个 shardView 内部的偏移,跨缓冲区合并由速率层
// 自己用 Engine.XOR 逐片完成。
func xorShards(e Engine, dst, src [][]byte) {
	for i := range dst {
		e.XOR(dst[i], src[i])
	}
}

// copyShards 把 src 逐片复制进 dst,二者长度必须相等。
func copyShards(dst, src [][]byte) {
	for i := range dst {
		copy(dst[i], src[i])
	}
}

func copyView(dst, src shardView) {
	for i := 0; i < dst.len(); i++ {
		copy(dst.shard(i), src.shard(i))
	}
}

func clearShard(s []byte) {
	for i := range s {
		s[i] = 0
	}
}

// ifftEncodeChunk 把 src(长度 truncated)复制进 dst 的前 truncated 个分片、
// 其余 size-truncated 个分片清零,然后对 dst 做 truncated_size=truncated 的
// 原地 IFFT。两套速率方案编码时都用它把一批原始分片变换成插值多项式系数。
func ifftEncodeChunk(e Engine, dst shardView, src [][]byte, truncated, size, skewDelta int) {
	for i := 0; i < truncated; i++ {
		copy(dst.shard(i), src[i])
	}
	for i := truncated; i < size; i++ {
		clearShard(dst.shard(i))
	}
	e.IFFT(dst, 0, size, truncated, skewDelta)
}

// decodeCore is the High-Rate-aware decode routine: it addresses columns
// the way HighRateEncode lays them out (parity at low columns [0,m),
// data at high columns [m,m+dataShards)), so it is only valid for shards
// produced by HighRateEncode. Low-Rate-encoded shards use the mirrored
// lowRateDecodeCore (rate_low.go) instead.
//
// shards 长度必须为 dataShards+parityShards,按"前 dataShards 个是原始分片、
// 其余 parityShards 个是校验分片"排列;nil 元素表示该位置缺失,非 nil 元素
// 原地保留。recoverAll 为 true 时同时重建缺失的校验分片,否则只重建缺失的
// 原始分片。
func decodeCore(e Engine, shards [][]byte, dataShards, parityShards int, shardSize int, recoverAll bool) {
	m := ceilPow2(parityShards)
	n := ceilPow2(m + dataShards)

	var errLocs [fieldOrder]ffe
	for i := 0; i < parityShards; i++ {
		if shards[dataShards+i] == nil {
			errLocs[i] = 1
		}
	}
	for i := parityShards; i < m; i++ {
		errLocs[i] = 1
	}
	for i := 0; i < dataShards; i++ {
		if shards[i] == nil {
			errLocs[i+m] = 1
		}
	}

	e.EvalPoly(&errLocs, m+dataShards)

	work := allocShards(n, shardSize)
	view := newShardView(work)

	for i := 0; i < parityShards; i++ {
		if shards[dataShards+i] != nil {
			copy(work[i], shards[dataShards+i])
			e.Mul(work[i], errLocs[i])
		}
	}
	for i := 0; i < dataShards; i++ {
		if shards[i] != nil {
			copy(work[m+i], shards[i])
			e.Mul(work[m+i], errLocs[m+i])
		}
	}

	e.IFFT(view, 0, n, m+dataShards, 0)
	e.FormalDerivative(view)

	outputCount := m + dataShards
	e.FFT(view, 0, n, outputCount, 0)

	// 揭示擦除: original = -errLocator * FFT(Derivative(IFFT(errLocator * received)))
	for i := 0; i < dataShards; i++ {
		if shards[i] != nil {
			continue
		}
		out := make([]byte, shardSize)
		copy(out, work[m+i])
		e.Mul(out, modulus-errLocs[m+i])
		shards[i] = out
	}
	if recoverAll {
		for i := 0; i < parityShards; i++ {
			if shards[dataShards+i] != nil {
				continue
			}
			out := make([]byte, shardSize)
			copy(out, work[i])
			e.Mul(out, modulus-errLocs[i])
			shards[dataShards+i] = out
		}
	}
}
