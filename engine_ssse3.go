package leopard16

// ssse3Kernel 实现 SSSE3 字节重排乘法的可移植版本:16 字节车道,nibbleLUTs
// 提供的 128 字节表代替一条 PSHUFB。其余(异或)与标量引擎共用同一套 64 位
// 字宽循环。
type ssse3Kernel struct{}

// NewSSSE3Engine 返回 SSSE3 风格引擎。调用方负责先用 cpuid 确认主机支持
// SSSE3(见 engine_default.go);本构造函数本身不做探测。
func NewSSSE3Engine() Engine {
	initTables()
	initNibbleLUTs()
	return baseEngine{k: ssse3Kernel{}}
}

func (ssse3Kernel) xorBlock(dst, src []byte) { scalarKernel{}.xorBlock(dst, src) }

func (ssse3Kernel) mulBlock(dst, src []byte, logM ffe) {
	simdMulBlock(dst, src, logM, 16, false)
}

func (ssse3Kernel) mulXorBlock(dst, src []byte, logM ffe) {
	simdMulBlock(dst, src, logM, 16, true)
}
