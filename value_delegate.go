package delegate

// ============================================================================
// ValueDelegate 实现（带返回值策略）
// ============================================================================

// ValueDelegate 带返回值委托
//
// 与 Delegate 共享同一套注册表机制，区别仅在于
// Invoke 按注册顺序收集每个存活回调的返回值。
//
//	var del delegate.ValueDelegate[int, int]
//	del.Add(func(v int) int { return v + 1 })
//	del.Add(func(v int) int { return v * 2 })
//	del.Invoke(3) // [4, 6]
type ValueDelegate[T, R any] struct {
	reg registry[func(T) R]
}

// Add 注册回调
//
// 语义与 Delegate.Add 一致。
func (d *ValueDelegate[T, R]) Add(fn func(T) R, observers ...Observable) {
	d.reg.add(fn, observers)
}

// Remove 移除与 fn 同一标识的全部条目
//
// 与 Delegate.Remove 相同，按代码指针尽力而为匹配。
func (d *ValueDelegate[T, R]) Remove(fn func(T) R) {
	d.reg.remove(fn)
}

// Clear 清空全部条目
func (d *ValueDelegate[T, R]) Clear() {
	d.reg.clear()
}

// Len 返回当前条目数
func (d *ValueDelegate[T, R]) Len() int {
	return d.reg.size()
}

// Invoke 按注册顺序调用所有存活回调并收集返回值
//
// 返回值与调用顺序一致（即注册顺序，过期条目不贡献结果）。
// 没有存活条目时返回空切片而非 nil。
func (d *ValueDelegate[T, R]) Invoke(arg T) []R {
	results := []R{}
	d.reg.invoke(func(fn func(T) R) {
		results = append(results, fn(arg))
	})
	return results
}
