package delegate

import (
	"testing"
)

// ============================================================================
// 返回值收集测试
// ============================================================================

// TestValueDelegate_CollectsInOrder 测试按注册顺序收集返回值
func TestValueDelegate_CollectsInOrder(t *testing.T) {
	var del ValueDelegate[int, int]

	del.Add(func(v int) int { return v + 1 })
	del.Add(func(v int) int { return v * 2 })

	got := del.Invoke(3)

	if len(got) != 2 || got[0] != 4 || got[1] != 6 {
		t.Errorf("Invoke(3) = %v, want [4 6]", got)
	}
}

// TestValueDelegate_EmptyResultNotNil 测试空注册表返回空序列
//
// 没有存活条目时返回空切片，而不是 nil。
func TestValueDelegate_EmptyResultNotNil(t *testing.T) {
	var del ValueDelegate[int, string]

	got := del.Invoke(1)

	if got == nil {
		t.Fatal("Invoke() returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Invoke() = %v, want empty", got)
	}
}

// TestValueDelegate_DuplicatesAllowed 测试重复返回值保留
func TestValueDelegate_DuplicatesAllowed(t *testing.T) {
	var del ValueDelegate[int, int]

	del.Add(func(v int) int { return 7 })
	del.Add(func(v int) int { return 7 })

	got := del.Invoke(0)

	if len(got) != 2 || got[0] != 7 || got[1] != 7 {
		t.Errorf("Invoke() = %v, want [7 7]", got)
	}
}

// ============================================================================
// 生命周期测试
// ============================================================================

// TestValueDelegate_ExpiredContributeNothing 测试过期条目不贡献结果
func TestValueDelegate_ExpiredContributeNothing(t *testing.T) {
	var del ValueDelegate[int, int]

	obs := NewObserver()
	del.Add(func(v int) int { return 1 })
	del.Add(func(v int) int { return 2 }, obs)
	del.Add(func(v int) int { return 3 })

	obs.Close()
	got := del.Invoke(0)

	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Invoke() = %v, want [1 3]", got)
	}
	if del.Len() != 2 {
		t.Errorf("Len() after eviction = %d, want 2", del.Len())
	}
}

// TestValueDelegate_AllExpired 测试全部过期后返回空序列
func TestValueDelegate_AllExpired(t *testing.T) {
	var del ValueDelegate[int, int]

	obs := NewObserver()
	del.Add(func(v int) int { return 1 }, obs)
	obs.Close()

	got := del.Invoke(0)

	if got == nil || len(got) != 0 {
		t.Errorf("Invoke() = %v, want empty non-nil slice", got)
	}
	if del.Len() != 0 {
		t.Errorf("Len() = %d, want 0", del.Len())
	}
}

// ============================================================================
// 移除与清空测试
// ============================================================================

// TestValueDelegate_Remove 测试按标识移除
func TestValueDelegate_Remove(t *testing.T) {
	var del ValueDelegate[int, int]

	keep := func(v int) int { return v }
	drop := func(v int) int { return -v }

	del.Add(keep)
	del.Add(drop)
	del.Remove(drop)

	got := del.Invoke(5)

	if len(got) != 1 || got[0] != 5 {
		t.Errorf("Invoke(5) = %v, want [5]", got)
	}
}

// TestValueDelegate_Clear 测试清空
func TestValueDelegate_Clear(t *testing.T) {
	var del ValueDelegate[int, int]

	del.Add(func(v int) int { return v })
	del.Clear()

	got := del.Invoke(1)

	if len(got) != 0 {
		t.Errorf("Invoke() after Clear = %v, want empty", got)
	}
}
