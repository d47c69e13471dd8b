package leopard16

// shardView 是对一组等长分片切片的轻量包装,把 spec 要求的"按固定跨度取
// 一对/四个互不重叠分片"这件事从调用方的手工切片里提炼出来,集中做边界检查。
// 它不拥有内存——底层 [][]byte 由速率层的工作缓冲区分配,shardView 只负责
// 安全地取子视图。
type shardView struct {
	shards [][]byte
}

// newShardView 包装 shards。每个分片的长度必须相等且是 64 的倍数;这里不
// 重复校验,调用方(速率层)在分配工作缓冲区时已经保证。
func newShardView(shards [][]byte) shardView {
	return shardView{shards: shards}
}

func (v shardView) len() int { return len(v.shards) }

func (v shardView) shard(i int) []byte { return v.shards[i] }

// pair 返回下标 p 与 p+d 处的两个分片。p+d 必须在范围内,否则说明调用方
// (速率层)算错了跨度,属于内部不变量被破坏,直接 panic。
func (v shardView) pair(p, d int) (a, b []byte) {
	if p < 0 || p+d >= len(v.shards) {
		panic("leopard16: shardView.pair index out of range")
	}
	return v.shards[p], v.shards[p+d]
}

// quad 返回下标 p, p+d, p+2d, p+3d 处的四个分片。
func (v shardView) quad(p, d int) (a, b, c, e []byte) {
	if p < 0 || p+3*d >= len(v.shards) {
		panic("leopard16: shardView.quad index out of range")
	}
	return v.shards[p], v.shards[p+d], v.shards[p+2*d], v.shards[p+3*d]
}

// splitAt 把视图切成 [0,k) 与 [k,len) 两个互不重叠的子视图。
func (v shardView) splitAt(k int) (head, tail shardView) {
	if k < 0 || k > len(v.shards) {
		panic("leopard16: shardView.splitAt index out of range")
	}
	return shardView{v.shards[:k]}, shardView{v.shards[k:]}
}

// slice 返回 [pos, pos+size) 区间的子视图,供 Engine 的 fft/ifft 方法定位
// 工作缓冲区中的一段。
func (v shardView) slice(pos, size int) shardView {
	if pos < 0 || pos+size > len(v.shards) {
		panic("leopard16: shardView.slice index out of range")
	}
	return shardView{v.shards[pos : pos+size]}
}
