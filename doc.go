// Package delegate 提供线程安全、具备生命周期感知能力的回调分发原语
//
// 一个 Delegate 是一组可以被整体调用的回调（订阅者）的有序注册表。
// 每个回调可以关联零个或多个观察者（Observer）；观察者关闭后，
// 其关联的回调会被自动跳过并惰性清除，属主无需显式退订。
//
// # 快速开始
//
//	// void 委托：触发即忘
//	var onChange delegate.Delegate[string]
//	onChange.Add(func(s string) { fmt.Println("changed:", s) })
//	onChange.Invoke("hello")
//
//	// 带返回值委托：按注册顺序收集结果
//	var compute delegate.ValueDelegate[int, int]
//	compute.Add(func(v int) int { return v + 1 })
//	compute.Add(func(v int) int { return v * 2 })
//	results := compute.Invoke(3) // [4, 6]
//
// # 生命周期
//
// 回调属主嵌入 Observer 后把自己传给 Add，即可把回调的
// 存活期绑定到自身：
//
//	type listener struct {
//		delegate.Observer
//	}
//
//	l := &listener{}
//	onChange.Add(l.onEvent, l)
//	l.Close() // 之后 Invoke 不再调用 l.onEvent
//
// 实现基于共享的存活令牌：Observer 持有一个布尔标志，
// 注册条目弱引用该标志；Close 将标志置为失效，委托在
// 下一次 Add/Invoke 时发现并移除过期条目。
//
// # 并发安全
//
// 每个委托实例持有自己的互斥锁，所有结构性访问由锁线性化；
// 单次 Invoke 中的调用顺序即注册顺序（过期条目除外）。
// 整个调用批次持锁执行：回调内部再进入同一实例的
// Add/Remove/Invoke 会死锁，这是已知的结构性约束。
//
// # 子包
//
//   - eventbus：基于委托构建的进程内类型化事件总线
//   - pkg/interfaces：事件总线公共接口
//   - pkg/lib/log：组件日志门面
package delegate
