package eventbus

import (
	"testing"

	delegate "github.com/dep2p/go-delegate"
	pkgif "github.com/dep2p/go-delegate/pkg/interfaces"
)

// ============================================================================
// 接口契约测试
// ============================================================================

// TestSubscription_ImplementsInterface 验证 Subscription 实现接口
func TestSubscription_ImplementsInterface(t *testing.T) {
	bus := NewBus()
	type TestEvent struct{}

	sub, err := bus.Subscribe(new(TestEvent), func(interface{}) {})
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}
	defer sub.Close()

	var _ pkgif.Subscription = sub
}

// ============================================================================
// Subscription 测试
// ============================================================================

// TestSubscription_Close 测试关闭订阅
//
// 关闭后处理函数不再被调用，对应条目被惰性清除。
func TestSubscription_Close(t *testing.T) {
	bus := NewBus()
	type TestEvent struct{}

	var calls int
	sub, _ := bus.Subscribe(new(TestEvent), func(interface{}) { calls++ })

	em, _ := bus.Emitter(new(TestEvent))
	defer em.Close()

	em.Emit(TestEvent{})
	if calls != 1 {
		t.Fatalf("handler called %d times, want 1", calls)
	}

	if err := sub.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	em.Emit(TestEvent{})
	if calls != 1 {
		t.Errorf("handler called %d times after Close, want 1", calls)
	}
}

// TestSubscription_CloseTwice 测试重复关闭
func TestSubscription_CloseTwice(t *testing.T) {
	bus := NewBus()
	type TestEvent struct{}

	sub, _ := bus.Subscribe(new(TestEvent), func(interface{}) {})

	if err := sub.Close(); err != nil {
		t.Errorf("First Close() failed: %v", err)
	}
	if err := sub.Close(); err != nil {
		t.Errorf("Second Close() failed: %v", err)
	}
}

// TestSubscription_NodeDropped 测试节点回收
//
// 最后一个订阅者和发射器关闭后，事件类型节点被删除。
func TestSubscription_NodeDropped(t *testing.T) {
	bus := NewBus()
	type TestEvent struct{}

	sub, _ := bus.Subscribe(new(TestEvent), func(interface{}) {})

	if n := len(bus.GetAllEventTypes()); n != 1 {
		t.Fatalf("GetAllEventTypes() = %d types, want 1", n)
	}

	sub.Close()

	if n := len(bus.GetAllEventTypes()); n != 0 {
		t.Errorf("GetAllEventTypes() = %d types after Close, want 0", n)
	}
}

// TestSubscription_WithObserver 测试额外观察者绑定
//
// 通过 WithObserver 绑定的观察者关闭后，处理函数停止
// 被调用，即使订阅本身未关闭。
func TestSubscription_WithObserver(t *testing.T) {
	bus := NewBus()
	type TestEvent struct{}

	owner := delegate.NewObserver()

	var calls int
	sub, err := bus.Subscribe(new(TestEvent), func(interface{}) { calls++ }, WithObserver(owner))
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}
	defer sub.Close()

	em, _ := bus.Emitter(new(TestEvent))
	defer em.Close()

	em.Emit(TestEvent{})
	if calls != 1 {
		t.Fatalf("handler called %d times, want 1", calls)
	}

	owner.Close()

	em.Emit(TestEvent{})
	if calls != 1 {
		t.Errorf("handler called %d times after owner closed, want 1", calls)
	}
}
