package leopard16

// Engine 是速率层(rate.go/rate_high.go/rate_low.go)据以驱动分片运算的统一
// 接口。所有变体(Scalar/SSSE3/AVX2/NEON/Default)在相同输入上必须产生逐字节
// 相同的输出,彼此只在性能上有差异——引擎正确性以 Scalar 为基准,交叉引擎的
// 一致性由 engine_test.go 的属性测试校验。
//
// 蝶形调度本身(加法 FFT/IFFT 的层级展开、FWHT 的时域抽取)对所有引擎都是
// 同一套代码,定义在本文件的 baseEngine 里;各引擎变体只提供按分片块做
// 异或/乘法的 butterflyKernel,差异被限制在最内层循环。
type Engine interface {
	// XOR 计算 x[i] ^= y[i],要求 len(x) == len(y) 且是 8 的倍数。
	XOR(x, y []byte)
	// Mul 原地计算 x <- x * antilog(logM)。
	Mul(x []byte, logM ffe)
	// FFT 对 data[pos:pos+size] 做原地时域抽取加法 FFT,只保证前
	// truncatedSize 个位置的输出正确;skewDelta 用于错位查表,使同一套蝶形
	// 代码可以在不同起始列上复用。
	FFT(data shardView, pos, size, truncatedSize, skewDelta int)
	// IFFT 是 FFT 的逆变换,蝶形方向相反。
	IFFT(data shardView, pos, size, truncatedSize, skewDelta int)
	// FWHT 对长度 fieldOrder 的数组做 Z/65535 环上的 FWHT,只假定前
	// mTruncated 个元素非零。
	FWHT(data *[fieldOrder]ffe, mTruncated int)
	// XORWithin 把 data[src:src+count] 异或进 data[dest:dest+count]。
	XORWithin(data shardView, dest, src, count int)
	// FormalDerivative 原地计算解码器用到的形式导数算子。
	FormalDerivative(data shardView)
	// EvalPoly 把擦除指示向量变换成错误定位多项式的对数表示:
	// FWHT -> 逐元素按 logWalsh 调整 -> 逆 FWHT。
	EvalPoly(erasures *[fieldOrder]ffe, truncatedSize int)
}

// butterflyKernel 是各引擎变体需要提供的最内层原语。dst/src 总是 64 字节的
// 整数倍,且按"先半块低位字节、再同样多高位字节"的顺序打包 16 位域元素。
type butterflyKernel interface {
	// xorBlock 计算 dst[i] ^= src[i]。
	xorBlock(dst, src []byte)
	// mulBlock 计算 dst <- src * antilog(logM)。
	mulBlock(dst, src []byte, logM ffe)
	// mulXorBlock 计算 dst ^= src * antilog(logM),用于蝶形运算的局部乘加。
	mulXorBlock(dst, src []byte, logM ffe)
}

// baseEngine 把加法 FFT/IFFT/FWHT 的调度逻辑实现一次,所有引擎变体通过
// 内嵌它并提供各自的 butterflyKernel 来获得完整的 Engine 实现。
type baseEngine struct {
	k butterflyKernel
}

func (e baseEngine) XOR(x, y []byte) { e.k.xorBlock(x, y) }

func (e baseEngine) Mul(x []byte, logM ffe) { e.k.mulBlock(x, x, logM) }

// butterfly2 是加法 FFT/IFFT 的基本两点蝶形:当 logM == modulus(表示零系数)
// 时退化为纯异或,否则按 isFFT 选择 FFT/IFFT 两种方向之一。
func (e baseEngine) butterfly2(x, y []byte, logM ffe, isFFT bool) {
	if logM == modulus {
		e.k.xorBlock(y, x)
		return
	}
	if isFFT {
		// FFT 形式: x <- x + m*y; y <- y + x
		e.k.mulXorBlock(x, y, logM)
		e.k.xorBlock(y, x)
	} else {
		// IFFT 形式: y <- y + x; x <- x + m*y
		e.k.xorBlock(y, x)
		e.k.mulXorBlock(x, y, logM)
	}
}

// butterfly4 一次处理跨度 dist 的四个分片 (s0,s1,s2,s3),把相邻两层蝶形一次
// 展开完成。isFFT 为 true 时走 FFT(自顶向下)顺序,否则走 IFFT(自底向上)
// 顺序。
func (e baseEngine) butterfly4(v shardView, pos, dist int, m01, m23, m02 ffe, isFFT bool) {
	s0, s1, s2, s3 := v.quad(pos, dist)
	if isFFT {
		e.butterfly2(s0, s2, m02, true)
		e.butterfly2(s1, s3, m02, true)
		e.butterfly2(s0, s1, m01, true)
		e.butterfly2(s2, s3, m23, true)
	} else {
		e.butterfly2(s0, s1, m01, false)
		e.butterfly2(s2, s3, m23, false)
		e.butterfly2(s0, s2, m02, false)
		e.butterfly2(s1, s3, m02, false)
	}
}

// FFT 是编码器/解码器共用的原地加法 FFT:按跨度 size/4, size/16, ... 依次展开
// 两层蝶形,若 size 是二的幂但不是四的幂,最后再补一层跨度为 2 的蝶形。
func (e baseEngine) FFT(data shardView, pos, size, truncatedSize, skewDelta int) {
	v := data.slice(pos, size)
	skew := fftSkew[skewDelta:]

	dist4 := size
	dist := size >> 2
	for dist != 0 {
		for r := 0; r < truncatedSize; r += dist4 {
			iEnd := r + dist
			m01 := skew[iEnd-1]
			m02 := skew[iEnd+dist-1]
			m23 := skew[iEnd+dist*2-1]
			for i := r; i < iEnd; i++ {
				e.butterfly4(v, i, dist, m01, m23, m02, true)
			}
		}
		dist4 = dist
		dist >>= 2
	}

	if dist4 == 2 {
		for r := 0; r < truncatedSize; r += 2 {
			m := skew[r]
			a, b := v.pair(r, 1)
			if m == modulus {
				e.k.xorBlock(b, a)
			} else {
				e.butterfly2(a, b, m, true)
			}
		}
	}
}

// IFFT 是 FFT 的逆变换,蝶形方向相反;调度顺序也与 FFT 相反:按跨度 1, 4, 16, ...
// 自小到大展开两层蝶形,若 size 是二的幂但不是四的幂,最后再补一层跨度为
// size/2 的蝶形。每个蝶形用 IFFT 形式的更新。
func (e baseEngine) IFFT(data shardView, pos, size, truncatedSize, skewDelta int) {
	v := data.slice(pos, size)
	skew := fftSkew[skewDelta:]

	dist := 1
	dist4 := 4
	for dist4 <= size {
		for r := 0; r < truncatedSize; r += dist4 {
			iEnd := r + dist
			m01 := skew[iEnd-1]
			m02 := skew[iEnd+dist-1]
			m23 := skew[iEnd+dist*2-1]
			for i := r; i < iEnd; i++ {
				e.butterfly4(v, i, dist, m01, m23, m02, false)
			}
		}
		dist = dist4
		dist4 <<= 2
	}

	if dist < size {
		if dist*2 != size {
			panic("leopard16: internal error, size is not a power of two")
		}
		m := skew[dist-1]
		if m == modulus {
			e.XORWithin(v, dist, 0, dist)
		} else {
			for i := 0; i < dist; i++ {
				a, b := v.pair(i, dist)
				e.butterfly2(a, b, m, false)
			}
		}
	}
}

// FWHT 对 data 做 Z/65535 环上的 FWHT,参见 fwht.go。所有引擎共用同一份
// 实现,因为 FWHT 只在解码器里对一个固定大小为 65536 的整型数组求值,不走
// 分片字节的乘加路径,没有可供 SIMD 专门化的空间。
func (e baseEngine) FWHT(data *[fieldOrder]ffe, mTruncated int) {
	fwhtInPlace(data, mTruncated)
}

// XORWithin 把 data[src:src+count] 异或进 data[dest:dest+count]。
func (e baseEngine) XORWithin(data shardView, dest, src, count int) {
	for i := 0; i < count; i++ {
		e.k.xorBlock(data.shard(dest+i), data.shard(src+i))
	}
}

// FormalDerivative 计算解码器用到的有限域形式导数:对每个下标 i,取
// width = ((i^(i-1))+1)>>1,把从 i 开始的 width 个分片异或进紧邻其前的
// [i-width, i) 这 width 个分片。
func (e baseEngine) FormalDerivative(data shardView) {
	n := data.len()
	for i := 1; i < n; i++ {
		width := ((i ^ (i - 1)) + 1) >> 1
		e.XORWithin(data, i-width, i, width)
	}
}

// EvalPoly 把擦除指示向量变换成错误定位多项式的对数表示:FWHT -> 逐元素乘以
// logWalsh[i](模 modulus 的整数乘法)-> 逆 FWHT。
func (e baseEngine) EvalPoly(erasures *[fieldOrder]ffe, truncatedSize int) {
	e.FWHT(erasures, truncatedSize)
	for i := 0; i < fieldOrder; i++ {
		erasures[i] = ffe((uint(erasures[i]) * uint(logWalsh[i])) % modulus)
	}
	e.FWHT(erasures, fieldOrder)
}
