package leopard16

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// defaultEngineOnce 和 defaultEngine 实现"选择一次,发布一次"语义:第一次
// 调用 DefaultEngine 时探测 CPU 特性并固定下来,此后所有调用者(包括并发调
// 用者)都看到同一个不可变的 Engine 值,且不会重新选择。
var (
	defaultEngineOnce sync.Once
	defaultEngine     Engine
	defaultEngineName string
)

// DefaultEngine 返回当前进程选定的引擎:x86/x86-64 优先 AVX2,其次 SSSE3,
// 否则 Scalar;AArch64 优先 NEON,否则 Scalar。
func DefaultEngine() Engine {
	defaultEngineOnce.Do(selectDefaultEngine)
	return defaultEngine
}

// DefaultEngineName 返回被选中引擎的名字,仅用于日志/诊断(见 log.go)。
func DefaultEngineName() string {
	defaultEngineOnce.Do(selectDefaultEngine)
	return defaultEngineName
}

func selectDefaultEngine() {
	switch runtime.GOARCH {
	case "amd64", "386":
		switch {
		case cpuid.CPU.Has(cpuid.AVX2):
			defaultEngine = NewAVX2Engine()
			defaultEngineName = "avx2"
		case cpuid.CPU.Has(cpuid.SSSE3):
			defaultEngine = NewSSSE3Engine()
			defaultEngineName = "ssse3"
		default:
			defaultEngine = NewScalarEngine()
			defaultEngineName = "scalar"
		}
	case "arm64":
		if cpuid.CPU.Has(cpuid.ASIMD) {
			defaultEngine = NewNEONEngine()
			defaultEngineName = "neon"
		} else {
			defaultEngine = NewScalarEngine()
			defaultEngineName = "scalar"
		}
	default:
		defaultEngine = NewScalarEngine()
		defaultEngineName = "scalar"
	}
	logger.Debugf("leopard16: selected %s engine", defaultEngineName)
}
