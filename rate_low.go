package leopard16

// LowRateEncode 实现 Low-Rate 编码方案(用于 K ≤ M 或扩张率很高的场景):把
// 原始分片数舍入到下一个 2 的幂 K',工作缓冲区只需 2·K' 而不是 2·M'(当
// M ≫ K 时这比 High-Rate 省内存)。K 个原始分片占据变换的低位列
// [0, K'),一次 truncated IFFT(skewDelta=0)把它们变换成 K' 个插值多项式
// 系数。随后按 K' 为一组对校验区分块求值,校验列从 K' 开始,每块重新复制
// 一份系数、做一次 truncated FFT(skewDelta 从 K' 开始按 K' 递增),因为
// FFT 是原地操作,必须在每块求值前恢复系数——这与 High-Rate 编码阶段的
// IFFT 分块需要累加(异或)不同,FFT 的每个分块对应彼此不相交的输出列,
// 互不影响,因此只需复制、求值、收集,不需要异或累加。
//
// 列的分配(数据占低位 [0,K'),校验占高位 [K', K'+M))与 High-Rate 正好
// 相反(校验占低位、数据占高位),因此解码侧不能复用 decodeCore,需要
// lowRateDecodeCore 镜像同一套列约定——见该函数与 DESIGN.md 的说明。
func LowRateEncode(e Engine, originals [][]byte, parityShards, shardSize int) [][]byte {
	dataShards := len(originals)
	kPrime := ceilPow2(dataShards)

	work := allocShards(2*kPrime, shardSize)
	coeffs := newShardView(work[:kPrime])
	scratch := newShardView(work[kPrime:])

	ifftEncodeChunk(e, coeffs, originals, dataShards, kPrime, 0)

	recovery := allocShards(parityShards, shardSize)
	skewDelta := kPrime
	produced := 0
	for produced < parityShards {
		count := kPrime
		if parityShards-produced < count {
			count = parityShards - produced
		}
		copyView(scratch, coeffs)
		e.FFT(scratch, 0, kPrime, count, skewDelta)
		copyShards(recovery[produced:produced+count], work[kPrime:kPrime+count])
		produced += count
		skewDelta += kPrime
	}
	return recovery
}

// lowRateDecodeCore is the Low-Rate-aware counterpart to decodeCore
// (rate.go), addressing columns the way LowRateEncode actually lays them
// out: data at [0, dataShards) followed by zero padding up to K' (known
// zeros, since LowRateEncode's IFFT treats them as zero inputs, so they are
// not marked as erasures), parity at [K', K'+parityShards), and the unused
// columns [K'+parityShards, n) marked as erasures because they hold nonzero
// evaluations that were never transmitted. This mirrors decodeCore's structure with the
// data/parity roles swapped, the same way the real construction keeps
// High-Rate and Low-Rate as separate decoders sharing only the underlying
// butterfly code.
//
// shards is laid out identically to decodeCore's: indices [0, dataShards)
// are originals, [dataShards, dataShards+parityShards) are recoveries; nil
// marks a missing shard. recoverAll also reconstructs missing recoveries.
func lowRateDecodeCore(e Engine, shards [][]byte, dataShards, parityShards int, shardSize int, recoverAll bool) {
	kPrime := ceilPow2(dataShards)
	n := ceilPow2(kPrime + parityShards)

	var errLocs [fieldOrder]ffe
	for i := 0; i < dataShards; i++ {
		if shards[i] == nil {
			errLocs[i] = 1
		}
	}
	for i := 0; i < parityShards; i++ {
		if shards[dataShards+i] == nil {
			errLocs[kPrime+i] = 1
		}
	}
	for i := kPrime + parityShards; i < n; i++ {
		errLocs[i] = 1
	}

	e.EvalPoly(&errLocs, n)

	work := allocShards(n, shardSize)
	view := newShardView(work)

	for i := 0; i < dataShards; i++ {
		if shards[i] != nil {
			copy(work[i], shards[i])
			e.Mul(work[i], errLocs[i])
		}
	}
	for i := 0; i < parityShards; i++ {
		if shards[dataShards+i] != nil {
			copy(work[kPrime+i], shards[dataShards+i])
			e.Mul(work[kPrime+i], errLocs[kPrime+i])
		}
	}

	e.IFFT(view, 0, n, kPrime+parityShards, 0)
	e.FormalDerivative(view)

	outputCount := kPrime + parityShards
	e.FFT(view, 0, n, outputCount, 0)

	// Reveal erasures: original = -errLocator * FFT(Derivative(IFFT(errLocator * received)))
	for i := 0; i < dataShards; i++ {
		if shards[i] != nil {
			continue
		}
		out := make([]byte, shardSize)
		copy(out, work[i])
		e.Mul(out, modulus-errLocs[i])
		shards[i] = out
	}
	if recoverAll {
		for i := 0; i < parityShards; i++ {
			if shards[dataShards+i] != nil {
				continue
			}
			out := make([]byte, shardSize)
			copy(out, work[kPrime+i])
			e.Mul(out, modulus-errLocs[kPrime+i])
			shards[dataShards+i] = out
		}
	}
}
