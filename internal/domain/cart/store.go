package cart

import (
	"context"
	"log"
	"sync"

	"github.com/xiebiao/storefront/internal/domain/book"
)

// Store 购物车服务
// 设计说明:
// 1. 进程启动时构造一次,作为唯一实例注入到各消费方(不使用包级全局变量)
// 2. 所有变更操作在互斥锁内执行到完成,读方看到的永远是完整提交后的状态
// 3. 每次变更先同步写入Storage再返回;保存失败只记录日志,不影响内存状态
// 4. 所有操作都是全函数:合法输入下不会失败
type Store struct {
	mu      sync.Mutex
	items   []LineItem
	storage Storage

	listenerMu sync.Mutex
	listeners  map[int]func()
	nextID     int
}

// NewStore 创建购物车服务并从Storage恢复状态
// 持久化记录缺失或无法解析时按空购物车处理(本地恢复,不向上报错)
func NewStore(ctx context.Context, storage Storage) *Store {
	s := &Store{
		storage:   storage,
		listeners: make(map[int]func()),
	}

	state, ok, err := storage.Load(ctx)
	if err != nil {
		log.Printf("加载购物车状态失败,按空购物车处理: %v", err)
		return s
	}
	if ok {
		s.items = state.Items
	}
	return s
}

// AddItem 添加图书到购物车
// 规则:
// 1. 已存在同ID行项目时,数量累加(不检查库存上限)
// 2. 否则追加新行项目到末尾(保持插入顺序)
// 3. quantity<1时按1处理
func (s *Store) AddItem(ctx context.Context, b book.Book, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].Book.ID == b.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, LineItem{Book: b, Quantity: quantity})
	}
	s.persist(ctx)
	s.mu.Unlock()

	s.notify()
}

// RemoveItem 移除指定图书的行项目,不存在时为空操作
func (s *Store) RemoveItem(ctx context.Context, bookID string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Book.ID != bookID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist(ctx)
	s.mu.Unlock()

	s.notify()
}

// UpdateQuantity 将行项目数量设置为quantity(绝对值,非增量)
// quantity<=0时等价于RemoveItem;图书不在购物车中时为空操作
func (s *Store) UpdateQuantity(ctx context.Context, bookID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, bookID)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].Book.ID == bookID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist(ctx)
	s.mu.Unlock()

	s.notify()
}

// Clear 清空购物车
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.persist(ctx)
	s.mu.Unlock()

	s.notify()
}

// Items 返回行项目快照(副本,调用方可安全持有)
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalPrice 购物车总金额(分),空购物车为0
func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// TotalItems 购物车内图书总数量,空购物车为0
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Subscribe 订阅状态变更,返回取消订阅函数
// 监听器在变更提交并持久化之后同步调用
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.listenerMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenerMu.Unlock()

	return func() {
		s.listenerMu.Lock()
		delete(s.listeners, id)
		s.listenerMu.Unlock()
	}
}

// persist 写入持久化存储,必须在持有s.mu时调用
// 购物车变更操作不允许失败,保存失败只记录日志
func (s *Store) persist(ctx context.Context) {
	state := State{Items: make([]LineItem, len(s.items))}
	copy(state.Items, s.items)

	if err := s.storage.Save(ctx, state); err != nil {
		log.Printf("保存购物车状态失败: %v", err)
	}
}

// notify 通知所有监听器,在锁外调用(允许监听器回读Store)
func (s *Store) notify() {
	s.listenerMu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenerMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
