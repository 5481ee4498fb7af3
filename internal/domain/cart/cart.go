package cart

import (
	"context"

	"github.com/xiebiao/storefront/internal/domain/book"
)

// LineItem 购物车行项目:一本图书与其数量
// 不变式:同一购物车内每个图书ID最多出现一次
type LineItem struct {
	Book     book.Book `json:"book"`
	Quantity int       `json:"quantity"` // 正整数
}

// Subtotal 行小计(分)
func (li LineItem) Subtotal() int64 {
	return li.Book.Price * int64(li.Quantity)
}

// State 购物车状态快照
// 说明:行项目保持插入顺序(用于展示),是购物车唯一的持久化内容
type State struct {
	Items []LineItem `json:"items"`
}

// Storage 购物车状态的持久化边界
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(依赖倒置原则)
// 2. Save在每次变更后同步调用,Load在构造时调用一次(重启恢复)
// 3. Load遇到无法解析的记录时应返回ok=false而非错误(按空购物车恢复)
type Storage interface {
	// Save 保存购物车状态
	Save(ctx context.Context, state State) error

	// Load 加载购物车状态
	// ok=false表示没有可用的持久化记录
	Load(ctx context.Context) (State, bool, error)
}
