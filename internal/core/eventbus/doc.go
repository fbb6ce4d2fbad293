// Package eventbus 实现进程内同步事件总线
//
// 基于 go-delegate 的委托注册表构建，提供类型安全的
// 事件发布/订阅机制，支持：
//   - 多订阅者（同步回调，注册顺序调用）
//   - 订阅生命周期绑定（存活令牌，惰性清除）
//   - 发射器引用计数
//   - 并发安全
//   - 有状态模式（Stateful）
//
// # 快速开始
//
//	// 创建总线
//	bus := eventbus.NewBus()
//
//	// 订阅事件
//	sub, _ := bus.Subscribe(new(MyEvent), func(evt interface{}) {
//	    e := evt.(MyEvent)
//	    // 处理事件
//	})
//	defer sub.Close()
//
//	// 发射事件
//	em, _ := bus.Emitter(new(MyEvent))
//	defer em.Close()
//	em.Emit(MyEvent{...})
//
// # 分发模型
//
// Emit 在发射者的 goroutine 上同步执行全部处理函数，
// 没有内部缓冲或调度；处理函数内不得再进入同一事件
// 类型的 Subscribe/Emit，否则会对节点锁造成死锁。
//
// # Fx 模块
//
//	import "go.uber.org/fx"
//
//	app := fx.New(
//	    eventbus.Module(),
//	    fx.Invoke(func(bus pkgif.EventBus) {
//	        sub, _ := bus.Subscribe(new(MyEvent), handler)
//	        // ...
//	    }),
//	)
//
// # 并发安全
//
// Bus 使用 sync.RWMutex 和 atomic 保证并发安全：
//   - 订阅/取消订阅：RWMutex 保护
//   - 订阅与发射器引用计数：atomic.Int32
//   - 总线关闭：atomic CompareAndSwap 防止重复；
//     订阅与发射器关闭：closeOnce 防止重复
//
// # 相关文档
//
//   - 委托核心：仓库根包 delegate
//   - 接口定义：pkg/interfaces/eventbus.go
package eventbus
