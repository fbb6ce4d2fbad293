// Package interfaces 定义 go-delegate 公共接口
//
// 本文件定义 EventBus 接口，提供类型化的同步事件分发。
package interfaces

import (
	delegate "github.com/dep2p/go-delegate"
)

// Handler 事件处理函数
//
// 在发射者的 goroutine 上同步执行。
type Handler func(event interface{})

// EventBus 定义事件总线接口
//
// EventBus 按事件类型维护委托注册表，订阅者的回调在
// Emit 时同步执行。
type EventBus interface {
	// Subscribe 订阅指定类型的事件
	Subscribe(eventType interface{}, handler Handler, opts ...SubscriptionOpt) (Subscription, error)

	// Emitter 获取指定事件类型的发射器
	Emitter(eventType interface{}, opts ...EmitterOpt) (Emitter, error)

	// GetAllEventTypes 返回所有已注册的事件类型
	GetAllEventTypes() []interface{}

	// Close 关闭总线，注销全部订阅
	Close() error
}

// Subscription 定义事件订阅接口
type Subscription interface {
	// Close 取消订阅
	Close() error
}

// Emitter 定义事件发射器接口
type Emitter interface {
	// Emit 同步发射事件
	Emit(event interface{}) error

	// Close 关闭发射器
	Close() error
}

// SubscriptionOpt 订阅选项函数类型
type SubscriptionOpt func(*SubscriptionSettings)

// EmitterOpt 发射器选项函数类型
type EmitterOpt func(*EmitterSettings)

// SubscriptionSettings 订阅设置（导出以供实现使用）
type SubscriptionSettings struct {
	// Observers 额外关联的观察者；任一关闭即注销处理函数
	Observers []delegate.Observable
}

// EmitterSettings 发射器设置（导出以供实现使用）
type EmitterSettings struct {
	Stateful bool
}

// WithObserver 将处理函数的存活期绑定到额外的观察者
//
// 订阅本身持有一个内部观察者（Subscription.Close 使其失效）；
// 本选项在此之外再关联调用方自有的观察者。
func WithObserver(o delegate.Observable) SubscriptionOpt {
	return func(s *SubscriptionSettings) {
		s.Observers = append(s.Observers, o)
	}
}

// Stateful 设置发射器为有状态模式
//
// 有状态模式下，新订阅者在订阅时立即收到最后一次发射的事件。
func Stateful() EmitterOpt {
	return func(s *EmitterSettings) {
		s.Stateful = true
	}
}
