package leopard16

import "sync"

// nibbleLUT 复刻 SIMD 字节重排指令(PSHUFB/TBL)驱动乘法所需要的 128 字节表:
// 对乘数 m,按输入字节的四个半字节位置——"低字节的低半字节""低字节的高
// 半字节""高字节的低半字节""高字节的高半字节"——各保存一张 16 项表,分别
// 给出该半字节对乘积低字节、高字节的贡献。真正的向量内核会把这张表载入寄存
// 器,用一条 PSHUFB/TBL 指令对 16(SSSE3/NEON)或 32(AVX2,两条并行车道)个
// 半字节同时求值;这里没有汇编器可用,引擎用等价的半字节拆分加查表代替单
// 条打乱指令(见 engine_ssse3.go/engine_avx2.go/engine_neon.go),但保留相同
// 的表布局与分片尺寸,结果逐字节一致。
type nibbleLUT struct {
	Lo [4][16]byte
	Hi [4][16]byte
}

var (
	nibbleLUTs     *[fieldOrder]nibbleLUT
	nibbleLUTsOnce sync.Once
)

// initNibbleLUTs 构建 nibbleLUTs。与 field.go 的 initTables 一样采用一次性
// 构建、之后只读发布的约定;只有选中了至少一种 SIMD 引擎时才会被触发。
func initNibbleLUTs() {
	nibbleLUTsOnce.Do(func() {
		initTables()
		nibbleLUTs = &[fieldOrder]nibbleLUT{}
		for logM := 0; logM < fieldOrder; logM++ {
			lut := &nibbleLUTs[logM]
			shift := 0
			for n := 0; n < 4; n++ {
				for x := 0; x < 16; x++ {
					prod := mulLog(ffe(x<<shift), ffe(logM))
					lut.Lo[n][x] = byte(prod)
					lut.Hi[n][x] = byte(prod >> 8)
				}
				shift += 4
			}
		}
	})
}

// simdMulBlock 是 SSSE3/AVX2/NEON 三个引擎共用的半字节拆分乘法核:对
// dst/src 的每个 64 字节块,把低 32 字节(域元素低字节)和高 32 字节(域元素
// 高字节)分别拆成低/高半字节,查 nibbleLUTs[logM] 后异或出乘积的低/高字节。
// tileWidth 是一次处理的字节数(SSSE3/NEON=16,AVX2=32),只影响循环粒度,
// 不影响结果,因为数学上与标量路径完全等价,只是换了一种表的组织方式。
func simdMulBlock(dst, src []byte, logM ffe, tileWidth int, xorInto bool) {
	lut := &nibbleLUTs[logM]
	for off := 0; off < len(dst); off += 64 {
		lo := src[off : off+32]
		hi := src[off+32 : off+64]
		dLo := dst[off : off+32]
		dHi := dst[off+32 : off+64]
		for i := 0; i < 32; i += tileWidth {
			end := i + tileWidth
			for j := i; j < end; j++ {
				lb, hb := lo[j], hi[j]
				prodLo := lut.Lo[0][lb&0xF] ^ lut.Lo[1][lb>>4] ^ lut.Lo[2][hb&0xF] ^ lut.Lo[3][hb>>4]
				prodHi := lut.Hi[0][lb&0xF] ^ lut.Hi[1][lb>>4] ^ lut.Hi[2][hb&0xF] ^ lut.Hi[3][hb>>4]
				if xorInto {
					dLo[j] ^= prodLo
					dHi[j] ^= prodHi
				} else {
					dLo[j] = prodLo
					dHi[j] = prodHi
				}
			}
		}
	}
}
