// Package eventbus 实现基于委托的同步事件总线
package eventbus

import (
	"reflect"
	"sync"
	"sync/atomic"

	delegate "github.com/dep2p/go-delegate"
)

// ============================================================================
// Subscription 实现
// ============================================================================

// Subscription 订阅
type Subscription struct {
	bus       *Bus
	typ       reflect.Type
	obs       *delegate.Observer
	closeOnce sync.Once
	closed    atomic.Bool
}

// Close 取消订阅
//
// Close 是并发安全的，可以多次调用。
// 关闭后会：
//  1. 使订阅的存活令牌失效（处理函数立即停止被调用）
//  2. 从总线移除订阅并更新节点引用计数
//
// 注册条目本身在该事件类型下一次 Subscribe/Emit 时被惰性清除。
func (s *Subscription) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)

		// 令牌失效
		_ = s.obs.Close()

		// 从总线移除
		s.bus.removeSub(s)
	})

	return nil
}

// ============================================================================
// Emitter 实现
// ============================================================================

// Emitter 事件发射器
type Emitter struct {
	bus       *Bus
	node      *node
	typ       reflect.Type
	closed    atomic.Bool
	closeOnce sync.Once
}

// Emit 同步发射事件
//
// 在调用方的 goroutine 上依注册顺序调用全部存活处理函数，
// 全部返回后 Emit 才返回。
func (e *Emitter) Emit(event interface{}) error {
	if e.closed.Load() {
		return ErrEmitterClosed
	}
	if e.bus.closed.Load() {
		return ErrClosed
	}

	// 发射到节点
	e.node.emit(event)

	return nil
}

// Close 关闭发射器
//
// 关闭后：
//  1. 标记为已关闭
//  2. 减少引用计数
//  3. 如果计数为 0，尝试删除节点
func (e *Emitter) Close() error {
	e.closeOnce.Do(func() {
		e.closed.Store(true)

		// 减少引用计数
		if e.node.nEmitters.Add(-1) == 0 {
			e.bus.tryDropNode(e.typ)
		}
	})

	return nil
}
