package leopard16

// neonKernel 实现 AArch64 NEON 字节重排乘法的可移植版本:16 字节车道(TBL
// 指令代替 PSHUFB),表布局与 SSSE3 完全相同。
type neonKernel struct{}

// NewNEONEngine 返回 NEON 风格引擎;调用方负责先用 cpuid 确认主机支持 ASIMD。
func NewNEONEngine() Engine {
	initTables()
	initNibbleLUTs()
	return baseEngine{k: neonKernel{}}
}

func (neonKernel) xorBlock(dst, src []byte) { scalarKernel{}.xorBlock(dst, src) }

func (neonKernel) mulBlock(dst, src []byte, logM ffe) {
	simdMulBlock(dst, src, logM, 16, false)
}

func (neonKernel) mulXorBlock(dst, src []byte, logM ffe) {
	simdMulBlock(dst, src, logM, 16, true)
}
