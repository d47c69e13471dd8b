package leopard16

// scalarKernel 是 butterflyKernel 的纯标量实现:只用按 8 字节(64 位)一组的
// 异或和 field.go 里 mul16LUTs 的按字节查表(表由 4-bit 半字节部分积组合而
// 成),不依赖任何 SIMD 指令。它既是一
// 个可独立选用的引擎(在没有可用向量指令集的主机上),也是所有其它引擎做
// 交叉校验的正确性基准。
type scalarKernel struct{}

// NewScalarEngine 返回纯标量引擎。initTables 在此惰性触发,保证首次使用前
// 全部查找表已经构建完成。
func NewScalarEngine() Engine {
	initTables()
	return baseEngine{k: scalarKernel{}}
}

func (scalarKernel) xorBlock(dst, src []byte) {
	for len(dst) >= 8 {
		d := dst[:8:8]
		s := src[:8:8]
		d[0] ^= s[0]
		d[1] ^= s[1]
		d[2] ^= s[2]
		d[3] ^= s[3]
		d[4] ^= s[4]
		d[5] ^= s[5]
		d[6] ^= s[6]
		d[7] ^= s[7]
		dst = dst[8:]
		src = src[8:]
	}
}

func (scalarKernel) mulBlock(dst, src []byte, logM ffe) {
	refMul(dst, src, logM)
}

func (scalarKernel) mulXorBlock(dst, src []byte, logM ffe) {
	refMulAdd(dst, src, logM)
}

// refMul 计算 dst[] = src[] * antilog(logM),按 64 字节块处理,每块拆成
// "前 32 字节低位字节、后 32 字节高位字节"两段,查 mul16LUTs[logM] 的 Lo/Hi
// 表后异或出部分积的低/高字节。
func refMul(dst, src []byte, logM ffe) {
	lut := &mul16LUTs[logM]
	for off := 0; off < len(dst); off += 64 {
		lo := src[off : off+32]
		hi := src[off+32 : off+64]
		for i, b := range lo {
			prod := lut.Lo[b] ^ lut.Hi[hi[i]]
			dst[off+i] = byte(prod)
			dst[off+i+32] = byte(prod >> 8)
		}
	}
}

// refMulAdd 计算 dst[] ^= src[] * antilog(logM),块布局同 refMul。
func refMulAdd(dst, src []byte, logM ffe) {
	lut := &mul16LUTs[logM]
	for len(dst) >= 64 {
		lo := src[:32:32]
		hi := src[32:64:64]
		blk := dst[:64:64]
		for i, b := range lo {
			prod := lut.Lo[b] ^ lut.Hi[hi[i]]
			blk[i] ^= byte(prod)
			blk[i+32] ^= byte(prod >> 8)
		}
		dst = dst[64:]
		src = src[64:]
	}
}
