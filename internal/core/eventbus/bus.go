// Package eventbus 实现基于委托的同步事件总线
package eventbus

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	delegate "github.com/dep2p/go-delegate"
	pkgif "github.com/dep2p/go-delegate/pkg/interfaces"
	"github.com/dep2p/go-delegate/pkg/lib/log"
	"go.uber.org/multierr"
)

var logger = log.Logger("core/eventbus")

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrClosed 事件总线已关闭
	ErrClosed = errors.New("eventbus closed")
	// ErrInvalidEventType 无效的事件类型
	ErrInvalidEventType = errors.New("invalid event type")
	// ErrNonPointerType 非指针类型
	ErrNonPointerType = errors.New("subscribe called with non-pointer type")
	// ErrNilHandler 处理函数为空
	ErrNilHandler = errors.New("subscribe called with nil handler")
	// ErrEmitterClosed 发射器已关闭
	ErrEmitterClosed = errors.New("emitter is closed")
)

// ============================================================================
// Bus 实现
// ============================================================================

// Bus 事件总线
//
// 按事件类型维护委托注册表；Emit 在发射者的 goroutine 上
// 同步调用全部存活的处理函数。订阅的生命周期由存活令牌
// 管理：Subscription.Close 使令牌失效，对应条目在该类型
// 下一次 Subscribe/Emit 时被惰性移除。
type Bus struct {
	mu sync.RWMutex

	// nodes 事件类型节点映射
	nodes map[reflect.Type]*node

	// subs 存活订阅集合（Close 时统一注销）
	subs map[*Subscription]struct{}

	closed atomic.Bool
}

// node 事件类型节点
type node struct {
	lk        sync.Mutex
	typ       reflect.Type
	del       delegate.Delegate[interface{}] // 处理函数注册表
	nSinks    atomic.Int32                   // 订阅引用计数
	nEmitters atomic.Int32                   // 发射器引用计数
	keepLast  bool                           // 是否保持最后一个事件（Stateful）
	last      interface{}                    // 最后一个事件
}

// NewBus 创建新的事件总线
func NewBus() *Bus {
	return &Bus{
		nodes: make(map[reflect.Type]*node),
		subs:  make(map[*Subscription]struct{}),
	}
}

// ============================================================================
// EventBus 接口实现
// ============================================================================

// Subscribe 订阅事件
//
// eventType 必须是事件类型的指针（如 new(MyEvent)）。
// handler 与订阅自身的存活令牌绑定，并可通过 WithObserver
// 追加调用方自有的观察者。
func (b *Bus) Subscribe(eventType interface{}, handler pkgif.Handler, opts ...pkgif.SubscriptionOpt) (pkgif.Subscription, error) {
	if b.closed.Load() {
		return nil, ErrClosed
	}
	if eventType == nil {
		return nil, ErrInvalidEventType
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	// 创建设置结构
	settings := &subscriptionSettings{}

	// 应用选项
	for _, opt := range opts {
		opt(settings)
	}

	// 获取事件类型
	typ := reflect.TypeOf(eventType)
	if typ == nil {
		return nil, ErrInvalidEventType
	}

	// 必须是指针类型
	if typ.Kind() != reflect.Ptr {
		return nil, ErrNonPointerType
	}

	// 获取元素类型
	elemType := typ.Elem()

	// 创建订阅；内部观察者承载处理函数的存活期
	sub := &Subscription{
		bus: b,
		typ: elemType,
		obs: delegate.NewObserver(),
	}

	observers := make([]delegate.Observable, 0, 1+len(settings.Observers))
	observers = append(observers, sub.obs)
	observers = append(observers, settings.Observers...)

	// 添加到节点
	b.withNode(elemType, func(n *node) {
		n.del.Add(handler, observers...)
		n.nSinks.Add(1)

		// 如果是有状态节点，立即补发最后的事件
		if n.keepLast && n.last != nil {
			handler(n.last)
		}
	})

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	return sub, nil
}

// Emitter 获取发射器
func (b *Bus) Emitter(eventType interface{}, opts ...pkgif.EmitterOpt) (pkgif.Emitter, error) {
	if b.closed.Load() {
		return nil, ErrClosed
	}
	if eventType == nil {
		return nil, ErrInvalidEventType
	}

	// 创建设置结构
	settings := &emitterSettings{}

	// 应用选项
	for _, opt := range opts {
		opt(settings)
	}

	// 获取事件类型
	typ := reflect.TypeOf(eventType)
	if typ == nil {
		return nil, ErrInvalidEventType
	}

	// 必须是指针类型
	if typ.Kind() != reflect.Ptr {
		return nil, ErrNonPointerType
	}

	// 获取元素类型
	elemType := typ.Elem()

	var n *node
	b.withNode(elemType, func(node *node) {
		n = node
		n.nEmitters.Add(1)

		// 设置有状态模式
		if settings.Stateful {
			n.keepLast = true
		}
	})

	e := &Emitter{
		bus:  b,
		node: n,
		typ:  elemType,
	}

	return e, nil
}

// GetAllEventTypes 返回所有已注册的事件类型
func (b *Bus) GetAllEventTypes() []interface{} {
	b.mu.RLock()
	defer b.mu.RUnlock()

	types := make([]interface{}, 0, len(b.nodes))
	for typ := range b.nodes {
		// 返回零值实例
		types = append(types, reflect.Zero(typ).Interface())
	}

	return types
}

// Close 关闭事件总线
//
// 注销全部存活订阅并清空节点。Close 是幂等的；
// 订阅关闭产生的错误通过 multierr 聚合返回。
func (b *Bus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	subs := make([]*Subscription, 0, len(b.subs))
	for s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	var err error
	for _, s := range subs {
		err = multierr.Append(err, s.Close())
	}

	b.mu.Lock()
	b.nodes = make(map[reflect.Type]*node)
	b.mu.Unlock()

	logger.Debug("事件总线已关闭", "subscriptions", len(subs))
	return err
}

// ============================================================================
// 内部方法
// ============================================================================

// withNode 在节点上执行操作
func (b *Bus) withNode(typ reflect.Type, cb func(*node)) {
	b.mu.Lock()

	n, ok := b.nodes[typ]
	if !ok {
		n = &node{typ: typ}
		b.nodes[typ] = n
	}

	n.lk.Lock()
	b.mu.Unlock()

	cb(n)
	n.lk.Unlock()
}

// tryDropNode 尝试删除节点（如果没有订阅者和发射器）
func (b *Bus) tryDropNode(typ reflect.Type) {
	b.mu.Lock()
	n, ok := b.nodes[typ]
	if !ok {
		b.mu.Unlock()
		return
	}

	n.lk.Lock()
	// 检查是否还有活跃的订阅者或发射器
	if n.nSinks.Load() > 0 || n.nEmitters.Load() > 0 {
		n.lk.Unlock()
		b.mu.Unlock()
		return
	}
	n.lk.Unlock()

	// 删除节点
	delete(b.nodes, typ)
	b.mu.Unlock()
}

// removeSub 移除订阅
//
// 条目本身由存活令牌惰性清除，这里只维护引用计数
// 与订阅集合。
func (b *Bus) removeSub(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub)
	n, ok := b.nodes[sub.typ]
	b.mu.Unlock()

	if !ok {
		return
	}

	shouldDrop := n.nSinks.Add(-1) == 0 && n.nEmitters.Load() == 0
	if shouldDrop {
		b.tryDropNode(sub.typ)
	}
}

// emit 同步发射事件到所有存活订阅者
func (n *node) emit(event interface{}) {
	n.lk.Lock()
	defer n.lk.Unlock()

	// 保存最后的事件（如果是有状态模式）
	if n.keepLast {
		n.last = event
	}

	// 同步调用全部存活处理函数；过期条目在此惰性清除
	n.del.Invoke(event)
}
