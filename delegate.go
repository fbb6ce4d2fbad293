package delegate

import (
	"reflect"
	"sync"
)

// ============================================================================
// 注册条目
// ============================================================================

// entry 注册条目
//
// 将一个回调与零个或多个存活令牌配对。
// 没有令牌的条目永不过期（静态回调）。
type entry[F any] struct {
	fn     F
	key    uintptr
	tokens []*token
}

// expired 报告条目是否过期
//
// 任意一个令牌失效即过期。本方法无副作用，
// 条目的移除由注册表在持锁时单独执行。
func (e *entry[F]) expired() bool {
	for _, t := range e.tokens {
		if !t.alive.Load() {
			return true
		}
	}
	return false
}

// funcKey 返回回调的标识键（代码指针）
//
// 同一创建点生成的不同闭包共享代码指针，无法按捕获状态
// 区分；反过来，编译器内联可能让同一字面量在不同调用点
// 获得各自独立的符号。标识匹配因此是严格尽力而为的。
func funcKey(fn interface{}) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// ============================================================================
// 注册表核心
// ============================================================================

// registry 注册表核心
//
// 有序条目序列加一把实例级互斥锁。
// void 与带返回值两种委托共享这里的
// 添加、移除、清除与调用遍历逻辑。
type registry[F any] struct {
	mu      sync.Mutex
	entries []entry[F]
}

// add 清除过期条目后追加新条目
func (r *registry[F]) add(fn F, observers []Observable) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked()

	var tokens []*token
	for _, o := range observers {
		tokens = append(tokens, o.livenessToken())
	}

	r.entries = append(r.entries, entry[F]{
		fn:     fn,
		key:    funcKey(fn),
		tokens: tokens,
	})
}

// remove 移除与 fn 同一标识的全部条目
func (r *registry[F]) remove(fn F) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := funcKey(fn)
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.key != key {
			kept = append(kept, e)
		}
	}
	r.truncateLocked(kept)
}

// clear 清空注册表
func (r *registry[F]) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
}

// size 返回当前条目数（含尚未清除的过期条目）
func (r *registry[F]) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// invoke 按注册顺序遍历调用存活条目
//
// 过期条目就地移除且不被调用。整个批次持锁执行：
// call 内不得再进入同一注册表的任何操作，否则死锁。
// 注册表为空时立即返回。
func (r *registry[F]) invoke(call func(F)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return
	}

	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.expired() {
			continue
		}
		kept = append(kept, e)
		call(e.fn)
	}
	r.truncateLocked(kept)
}

// pruneLocked 移除过期条目（调用方持锁）
func (r *registry[F]) pruneLocked() {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if !e.expired() {
			kept = append(kept, e)
		}
	}
	r.truncateLocked(kept)
}

// truncateLocked 收缩条目序列并清空尾部引用，便于回收
func (r *registry[F]) truncateLocked(kept []entry[F]) {
	var zero entry[F]
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = zero
	}
	r.entries = kept
}

// ============================================================================
// Delegate 实现（void 策略）
// ============================================================================

// Delegate 无返回值委托
//
// 持有一组签名为 func(T) 的回调，Invoke 时按注册顺序
// 在调用方 goroutine 上同步执行，丢弃返回值。
// 需要收集返回值时使用 ValueDelegate。
//
//	var del delegate.Delegate[string]
//	del.Add(func(s string) { fmt.Println(s) })
//	del.Invoke("hello")
//
// 零值即可用。所有操作由实例级互斥锁线性化；
// 回调内部不得再进入同一实例的 Add/Remove/Invoke。
type Delegate[T any] struct {
	reg registry[func(T)]
}

// Add 注册回调
//
// observers 给出回调的属主；任一属主 Close 后，
// 条目在下一次 Add/Invoke 时被惰性移除。
// 不关联属主的回调永不过期。
func (d *Delegate[T]) Add(fn func(T), observers ...Observable) {
	d.reg.add(fn, observers)
}

// Remove 移除与 fn 同一标识的全部条目
//
// 标识按回调的代码指针比较：同一创建点生成的不同闭包
// 无法区分，会被一并移除；编译器内联又可能让同一字面量
// 在不同调用点拥有独立标识。这是尽力而为的匹配。
func (d *Delegate[T]) Remove(fn func(T)) {
	d.reg.remove(fn)
}

// Clear 清空全部条目
func (d *Delegate[T]) Clear() {
	d.reg.clear()
}

// Len 返回当前条目数
//
// 过期但尚未被 Add/Invoke 清除的条目也计算在内。
func (d *Delegate[T]) Len() int {
	return d.reg.size()
}

// Invoke 按注册顺序调用所有存活回调
//
// 过期条目被移除且不被调用；注册表为空时立即返回。
// 整个批次在持锁状态下同步执行。
func (d *Delegate[T]) Invoke(arg T) {
	d.reg.invoke(func(fn func(T)) {
		fn(arg)
	})
}
