package leopard16

// avx2Kernel 实现 AVX2 字节重排乘法的可移植版本:32 字节车道(两条并行的 16
// 字节 PSHUFB 车道),nibbleLUTs 提供的表布局与 SSSE3 相同,只是一次处理两倍
// 宽度。
type avx2Kernel struct{}

// NewAVX2Engine 返回 AVX2 风格引擎;调用方负责先用 cpuid 确认主机支持 AVX2。
func NewAVX2Engine() Engine {
	initTables()
	initNibbleLUTs()
	return baseEngine{k: avx2Kernel{}}
}

func (avx2Kernel) xorBlock(dst, src []byte) { scalarKernel{}.xorBlock(dst, src) }

func (avx2Kernel) mulBlock(dst, src []byte, logM ffe) {
	simdMulBlock(dst, src, logM, 32, false)
}

func (avx2Kernel) mulXorBlock(dst, src []byte, logM ffe) {
	simdMulBlock(dst, src, logM, 32, true)
}
