package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/storefront/internal/domain/book"
)

// fakeStorage 内存实现的Storage,记录每次保存的快照
type fakeStorage struct {
	state     State
	hasState  bool
	saveCount int
	saveErr   error
	loadErr   error
}

func (f *fakeStorage) Save(ctx context.Context, state State) error {
	f.saveCount++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.state = state
	f.hasState = true
	return nil
}

func (f *fakeStorage) Load(ctx context.Context) (State, bool, error) {
	if f.loadErr != nil {
		return State{}, false, f.loadErr
	}
	return f.state, f.hasState, nil
}

func testBook(id, title string, price int64) book.Book {
	return book.Book{ID: id, Title: title, Price: price}
}

func TestStore_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("同一图书累加数量", func(t *testing.T) {
		store := NewStore(ctx, &fakeStorage{})
		gatsby := testBook("1", "The Great Gatsby", 1000)

		store.AddItem(ctx, gatsby, 1)
		store.AddItem(ctx, gatsby, 2)

		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
		assert.Equal(t, 3, store.TotalItems())
		assert.Equal(t, int64(3000), store.TotalPrice())
	})

	t.Run("不同图书追加新行并保持插入顺序", func(t *testing.T) {
		store := NewStore(ctx, &fakeStorage{})

		store.AddItem(ctx, testBook("1", "Gatsby", 1000), 1)
		store.AddItem(ctx, testBook("2", "Dune", 2000), 1)
		store.AddItem(ctx, testBook("1", "Gatsby", 1000), 1)

		items := store.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "1", items[0].Book.ID)
		assert.Equal(t, "2", items[1].Book.ID)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("数量小于1按1处理", func(t *testing.T) {
		store := NewStore(ctx, &fakeStorage{})

		store.AddItem(ctx, testBook("1", "Gatsby", 1000), 0)
		store.AddItem(ctx, testBook("2", "Dune", 2000), -5)

		assert.Equal(t, 2, store.TotalItems())
	})
}

func TestStore_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("数量是绝对值而非增量", func(t *testing.T) {
		store := NewStore(ctx, &fakeStorage{})
		store.AddItem(ctx, testBook("1", "Gatsby", 1000), 5)

		store.UpdateQuantity(ctx, "1", 2)

		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, int64(2000), store.TotalPrice())
	})

	t.Run("数量为0等同删除", func(t *testing.T) {
		store := NewStore(ctx, &fakeStorage{})
		store.AddItem(ctx, testBook("1", "Gatsby", 1000), 2)

		store.UpdateQuantity(ctx, "1", 0)

		assert.Empty(t, store.Items())
		assert.Equal(t, 0, store.TotalItems())
	})

	t.Run("负数数量等同删除", func(t *testing.T) {
		store := NewStore(ctx, &fakeStorage{})
		store.AddItem(ctx, testBook("1", "Gatsby", 1000), 2)

		store.UpdateQuantity(ctx, "1", -3)

		assert.Empty(t, store.Items())
	})

	t.Run("图书不在购物车中时为空操作", func(t *testing.T) {
		store := NewStore(ctx, &fakeStorage{})
		store.AddItem(ctx, testBook("1", "Gatsby", 1000), 1)

		store.UpdateQuantity(ctx, "999", 5)

		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})
}

func TestStore_RemoveItem(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeStorage{})
	store.AddItem(ctx, testBook("1", "Gatsby", 1000), 1)
	store.AddItem(ctx, testBook("2", "Dune", 2000), 3)

	store.RemoveItem(ctx, "1")

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].Book.ID)
	assert.Equal(t, int64(6000), store.TotalPrice())

	// 不存在的图书是空操作,不报错
	store.RemoveItem(ctx, "999")
	assert.Len(t, store.Items(), 1)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeStorage{})
	store.AddItem(ctx, testBook("1", "Gatsby", 1000), 2)
	store.AddItem(ctx, testBook("2", "Dune", 2000), 1)

	store.Clear(ctx)

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, int64(0), store.TotalPrice())
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()

	t.Run("每次变更同步落盘", func(t *testing.T) {
		storage := &fakeStorage{}
		store := NewStore(ctx, storage)

		store.AddItem(ctx, testBook("1", "Gatsby", 1000), 1)
		store.UpdateQuantity(ctx, "1", 3)
		store.RemoveItem(ctx, "1")

		assert.Equal(t, 3, storage.saveCount)
		assert.Empty(t, storage.state.Items)
	})

	t.Run("从历史快照恢复", func(t *testing.T) {
		storage := &fakeStorage{}
		first := NewStore(ctx, storage)
		first.AddItem(ctx, testBook("1", "Gatsby", 1000), 2)

		second := NewStore(ctx, storage)
		require.Len(t, second.Items(), 1)
		assert.Equal(t, 2, second.TotalItems())
		assert.Equal(t, int64(2000), second.TotalPrice())
	})

	t.Run("加载失败按空购物车处理", func(t *testing.T) {
		storage := &fakeStorage{loadErr: errors.New("redis down")}
		store := NewStore(ctx, storage)

		assert.Empty(t, store.Items())
	})

	t.Run("保存失败不影响内存状态", func(t *testing.T) {
		storage := &fakeStorage{saveErr: errors.New("redis down")}
		store := NewStore(ctx, storage)

		store.AddItem(ctx, testBook("1", "Gatsby", 1000), 1)

		assert.Equal(t, 1, store.TotalItems())
	})
}

func TestStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeStorage{})

	notified := 0
	unsubscribe := store.Subscribe(func() { notified++ })

	store.AddItem(ctx, testBook("1", "Gatsby", 1000), 1)
	assert.Equal(t, 1, notified)

	// 监听器内可以安全回读Store(通知在锁外)
	var seenTotal int
	unsub2 := store.Subscribe(func() { seenTotal = store.TotalItems() })
	store.AddItem(ctx, testBook("1", "Gatsby", 1000), 2)
	assert.Equal(t, 3, seenTotal)
	unsub2()

	unsubscribe()
	store.Clear(ctx)
	assert.Equal(t, 2, notified, "取消订阅后不应再收到通知")
}
