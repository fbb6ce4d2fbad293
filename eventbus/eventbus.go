// Package eventbus 对外暴露进程内同步事件总线
//
// 实现位于 internal/core/eventbus，本包只做薄封装：
// 构造函数、选项与 Fx 装配入口。
package eventbus

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	delegate "github.com/dep2p/go-delegate"
	impl "github.com/dep2p/go-delegate/internal/core/eventbus"
	pkgif "github.com/dep2p/go-delegate/pkg/interfaces"
)

// ============================================================================
// 构造与选项
// ============================================================================

// New 创建事件总线
func New() pkgif.EventBus {
	return impl.NewBus()
}

// WithObserver 将处理函数绑定到额外的观察者
func WithObserver(o delegate.Observable) pkgif.SubscriptionOpt {
	return pkgif.WithObserver(o)
}

// Stateful 设置发射器为有状态模式
func Stateful() pkgif.EmitterOpt {
	return pkgif.Stateful()
}

// 错误导出，便于调用方判定
var (
	// ErrClosed 事件总线已关闭
	ErrClosed = impl.ErrClosed
	// ErrInvalidEventType 无效的事件类型
	ErrInvalidEventType = impl.ErrInvalidEventType
	// ErrNonPointerType 非指针类型
	ErrNonPointerType = impl.ErrNonPointerType
	// ErrNilHandler 处理函数为空
	ErrNilHandler = impl.ErrNilHandler
	// ErrEmitterClosed 发射器已关闭
	ErrEmitterClosed = impl.ErrEmitterClosed
)

// ============================================================================
// Fx 装配
// ============================================================================

// Module 返回事件总线 Fx 模块
func Module() fx.Option {
	return impl.Module()
}

// NewApp 构建包含事件总线模块的 Fx 应用
//
// fx 自身的事件日志通过 zap 输出；logger 为 nil 时使用
// zap.NewNop() 静默。
func NewApp(logger *zap.Logger, opts ...fx.Option) *fx.App {
	if logger == nil {
		logger = zap.NewNop()
	}

	base := []fx.Option{
		Module(),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	}

	return fx.New(append(base, opts...)...)
}
