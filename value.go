package delegate

import "sync"

// ============================================================================
// Value 实现（值变更委托）
// ============================================================================

// Value 值变更委托
//
// 包装一个 T 类型的值，并内嵌一个 void 委托。
// 每次 Set 先提交新值，再以新值触发委托，因此回调中
// 通过 Get 读取到的一定是新值。读取操作永不触发通知。
//
//	temp := delegate.NewValue(20)
//	temp.Add(func(v int) { fmt.Println("now", v) })
//	temp.Set(25) // 回调收到 25
//
// 相同值的重复赋值同样触发通知，不做相等性抑制。
type Value[T any] struct {
	Delegate[T]

	mu sync.RWMutex
	v  T
}

// NewValue 创建带初始值的值变更委托
//
// 初始化不触发通知。
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Set 存储新值并通知
//
// 每次成功赋值恰好触发一次委托调用，参数为新值。
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.v = val
	v.mu.Unlock()

	v.Invoke(val)
}

// Get 返回当前值
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.v
}
