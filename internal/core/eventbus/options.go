// Package eventbus 实现基于委托的同步事件总线
package eventbus

import (
	delegate "github.com/dep2p/go-delegate"
	pkgif "github.com/dep2p/go-delegate/pkg/interfaces"
)

// ============================================================================
// 本地选项函数
// ============================================================================

// WithObserver 将处理函数绑定到额外的观察者
//
// 这是一个便利函数，与 pkg/interfaces.WithObserver 等效
func WithObserver(o delegate.Observable) pkgif.SubscriptionOpt {
	return pkgif.WithObserver(o)
}

// Stateful 设置发射器为有状态模式
//
// 这是一个便利函数，与 pkg/interfaces.Stateful 等效
func Stateful() pkgif.EmitterOpt {
	return pkgif.Stateful()
}
