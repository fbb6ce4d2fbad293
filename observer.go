package delegate

import (
	"sync"
	"sync/atomic"
)

// ============================================================================
// 存活令牌
// ============================================================================

// token 存活令牌
//
// 一个共享的布尔标志，表示创建它的观察者是否仍然存活。
// 由 Observer 独占创建和初始化，被所有引用它的注册条目
// 共享（只读观察）。一旦失效，永不恢复有效。
type token struct {
	alive atomic.Bool
}

// newToken 创建有效的存活令牌
func newToken() *token {
	t := &token{}
	t.alive.Store(true)
	return t
}

// ============================================================================
// Observer 实现
// ============================================================================

// Observer 观察者能力
//
// 可以被回调属主类型嵌入，或作为普通字段使用。
// 零值即可用；首次使用时惰性创建存活令牌。
//
//	type listener struct {
//		delegate.Observer
//	}
//
//	l := &listener{}
//	del.Add(l.onEvent, l)
//
//	l.Close() // 之后 Invoke 不再调用 l.onEvent
//
// Close 之后，所有关联该观察者的注册条目过期，
// 会在对应委托下一次 Add/Invoke 时被惰性清除。
type Observer struct {
	mu        sync.Mutex
	tok       *token
	closeOnce sync.Once
}

// NewObserver 创建观察者
func NewObserver() *Observer {
	return &Observer{tok: newToken()}
}

// livenessToken 返回存活令牌（必要时惰性创建）
//
// 注册和过期检查都通过令牌进行，Observer 本身
// 不会被注册条目持有。
func (o *Observer) livenessToken() *token {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.tok == nil {
		o.tok = newToken()
	}
	return o.tok
}

// Close 使存活令牌失效
//
// Close 是并发安全的，可以多次调用。
// 令牌失效后不可恢复；与该观察者关联的注册条目
// 在下一次 Add/Invoke 时被移除。
func (o *Observer) Close() error {
	o.closeOnce.Do(func() {
		o.livenessToken().alive.Store(false)
	})
	return nil
}

// Closed 报告观察者是否已关闭
func (o *Observer) Closed() bool {
	return !o.livenessToken().alive.Load()
}

// ============================================================================
// Observable 接口
// ============================================================================

// Observable 可观察对象
//
// 由 Observer 以及所有嵌入 Observer 的类型实现（方法提升），
// 因此回调属主可以直接把自己传给 Add。
type Observable interface {
	livenessToken() *token
}
