package leopard16

import "sync"

// GF(2^16) 有限域算术。
//
// 域元素是一个 16 位无符号整数。加减法就是异或;乘法通过对数表完成:
// a*b = exp[(log[a]+log[b]) mod 65535],零单独处理。底层不可约多项式用于
// 生成一个朴素 LFSR 序列,随后被换算到 Cantor 基下——这是 O(n log n) 加法 FFT
// 得以成立的关键,详见 Lin-Al Naffouri-Han-Chung 论文。
//
// 所有表都是进程级只读单例,由 initTables 负责一次性构建并发布。

// ffe 表示 GF(2^16) 中的一个域元素。
type ffe = uint16

const (
	fieldBits = 16
	fieldOrder = 1 << fieldBits
	// modulus 既是域元素对数的上界,也是 GF_MODULUS 哨兵值:当一个蝶形运算的
	// 乘数对数等于 modulus 时,乘法退化为恒等运算,蝶形只做异或。
	modulus = fieldOrder - 1
	// fieldPolynomial 是构造 LFSR 对数序列所用的本原多项式(换算到 Cantor 基之前)。
	fieldPolynomial = 0x1002D
)

// cantorBasis 把朴素 LFSR 对数序列换算到 Cantor 基,使得同一套蝶形系数可以在
// 加法 FFT 的每一层复用。
var cantorBasis = [fieldBits]ffe{
	0x0001, 0xACCA, 0x3C0E, 0x163E,
	0xC582, 0xED2E, 0x914C, 0x4012,
	0x6C98, 0x10D8, 0x6A72, 0xB900,
	0xFDB8, 0xFB34, 0xFF38, 0x991E,
}

var (
	logLUT *[fieldOrder]ffe
	expLUT *[fieldOrder]ffe

	// fftSkew 是长度 modulus 的蝶形系数表,按级别索引,见 engine.go 的 FFT/IFFT。
	fftSkew *[modulus]ffe
	// logWalsh 预先算好 FWHT(对数表),仅供解码器的错误定位多项式求值使用。
	logWalsh *[fieldOrder]ffe

	// mul16LUTs 为每个对数值 m 保存一对 256 项查找表:Lo 以 x 的低字节为下标、
	// Hi 以 x 的高字节为下标,各给出一个 16 位部分积,二者异或即得 m·x。标量
	// 引擎用它替代逐位乘法。
	mul16LUTs *[fieldOrder]mul16LUT
)

// mul16LUT 保存以某个域元素 m 为乘数的全部部分积。
type mul16LUT struct {
	Lo [256]ffe
	Hi [256]ffe
}

var tablesOnce sync.Once

// initTables 构建本文件中的全部进程级表:对数/反对数表、skew 表、LogWalsh
// 表、标量乘法 LUT(SIMD 引擎用的 nibbleLUTs 由 initNibbleLUTs 另行构建)。
// 只会真正执行一次;并发的首次调用是安全的。
func initTables() {
	tablesOnce.Do(func() {
		initLogExpLUTs()
		initSkewAndLogWalsh()
		initMul16LUTs()
	})
}

// initLogExpLUTs 构建 logLUT 与 expLUT,并把朴素 LFSR 序列换算到 Cantor 基。
func initLogExpLUTs() {
	expLUT = &[fieldOrder]ffe{}
	logLUT = &[fieldOrder]ffe{}

	state := 1
	for i := ffe(0); i < modulus; i++ {
		expLUT[state] = i
		state <<= 1
		if state >= fieldOrder {
			state ^= fieldPolynomial
		}
	}
	expLUT[0] = modulus

	logLUT[0] = 0
	for i := 0; i < fieldBits; i++ {
		basis := cantorBasis[i]
		width := 1 << i
		for j := 0; j < width; j++ {
			logLUT[j+width] = logLUT[j] ^ basis
		}
	}

	for i := 0; i < fieldOrder; i++ {
		logLUT[i] = expLUT[logLUT[i]]
	}
	for i := 0; i < fieldOrder; i++ {
		expLUT[logLUT[i]] = ffe(i)
	}
	expLUT[modulus] = expLUT[0]
}

// addMod 计算 (a+b) mod modulus,用于 FWHT 所在的 Z/65535 环。这不是域加法
// (域加法是异或);这里是普通整数加法加一次进位折返修正。
func addMod(a, b ffe) ffe {
	sum := uint(a) + uint(b)
	return ffe(sum + sum>>fieldBits)
}

// subMod 计算 (a-b) mod modulus,规则同 addMod。
func subMod(a, b ffe) ffe {
	dif := uint(a) - uint(b)
	return ffe(dif + dif>>fieldBits)
}

// mulLog 返回 a * Log(b),即 b 已经是对数形式时的乘法。initSkewAndLogWalsh 与
// initMul16LUTs 用这个形式把 K 次表查找挪到初始化阶段,避免出现在热路径里。
func mulLog(a, logB ffe) ffe {
	if a == 0 {
		return 0
	}
	return expLUT[addMod(logLUT[a], logB)]
}

// initSkewAndLogWalsh 构建 fftSkew 与 logWalsh。
func initSkewAndLogWalsh() {
	var temp [fieldBits - 1]ffe
	for i := 1; i < fieldBits; i++ {
		temp[i-1] = ffe(1 << i)
	}

	fftSkew = &[modulus]ffe{}
	logWalsh = &[fieldOrder]ffe{}

	for m := 0; m < fieldBits-1; m++ {
		step := 1 << (m + 1)
		fftSkew[1<<m-1] = 0

		for i := m; i < fieldBits-1; i++ {
			s := 1 << (i + 1)
			for j := 1<<m - 1; j < s; j += step {
				fftSkew[j+s] = fftSkew[j] ^ temp[i]
			}
		}

		temp[m] = modulus - logLUT[mulLog(temp[m], logLUT[temp[m]^1])]
		for i := m + 1; i < fieldBits-1; i++ {
			sum := addMod(logLUT[temp[i]^1], temp[m])
			temp[i] = mulLog(temp[i], sum)
		}
	}

	for i := 0; i < modulus; i++ {
		fftSkew[i] = logLUT[fftSkew[i]]
	}

	for i := 0; i < fieldOrder; i++ {
		logWalsh[i] = logLUT[i]
	}
	logWalsh[0] = 0
	fwhtInPlace(logWalsh, fieldOrder)
}

// initMul16LUTs 构建标量引擎用的 256 项 Lo/Hi 乘法表:先按 4 位一组算出
// 16 项的部分积,再组合成按字节索引的 256 项表。
func initMul16LUTs() {
	mul16LUTs = &[fieldOrder]mul16LUT{}

	for logM := 0; logM < fieldOrder; logM++ {
		var tmp [64]ffe
		for nibble, shift := 0, 0; nibble < 4; {
			nibbleLUT := tmp[nibble*16:]
			for x := 0; x < 16; x++ {
				nibbleLUT[x] = mulLog(ffe(x<<shift), ffe(logM))
			}
			nibble++
			shift += 4
		}
		lut := &mul16LUTs[logM]
		for i := range lut.Lo {
			lut.Lo[i] = tmp[i&15] ^ tmp[(i>>4)+16]
			lut.Hi[i] = tmp[(i&15)+32] ^ tmp[(i>>4)+48]
		}
	}
}
