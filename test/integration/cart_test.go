package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 购物车模块集成测试
//
// 购物车是匿名可用的,不需要登录;每个用例开始前清空购物车

func getCart(t *testing.T) CartData {
	t.Helper()
	resp := GetJSON(t, BaseURL+"/cart")
	require.Equal(t, 0, resp.Code, "查询购物车失败: %s", resp.Message)

	var data CartData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

// TestCartAddItem 测试加购
func TestCartAddItem(t *testing.T) {
	ClearCart(t)

	t.Run("加购后返回完整购物车", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{
			"book_id":  "1",
			"quantity": 1,
		})
		require.Equal(t, 0, resp.Code, "加购失败: %s", resp.Message)

		var data CartData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Len(t, data.Items, 1)
		assert.Equal(t, 1, data.TotalItems)
	})

	t.Run("重复加购同一图书累加数量", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{
			"book_id":  "1",
			"quantity": 2,
		})
		require.Equal(t, 0, resp.Code)

		var data CartData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Len(t, data.Items, 1, "同一图书不应产生新行")
		assert.Equal(t, 3, data.Items[0].Quantity)
		assert.Equal(t, data.Items[0].Price*3, data.Items[0].Subtotal)
	})

	t.Run("不存在的图书返回40402", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{
			"book_id": "not-a-book",
		})
		assert.Equal(t, 40402, resp.Code)
	})

	ClearCart(t)
}

// TestCartUpdateQuantity 测试修改数量
func TestCartUpdateQuantity(t *testing.T) {
	ClearCart(t)
	PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{"book_id": "1", "quantity": 5})

	t.Run("数量是绝对值", func(t *testing.T) {
		resp := PutJSON(t, BaseURL+"/cart/items/1", map[string]interface{}{"quantity": 2})
		require.Equal(t, 0, resp.Code)

		var data CartData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Len(t, data.Items, 1)
		assert.Equal(t, 2, data.Items[0].Quantity, "数量应被设置为2而非累加")
	})

	t.Run("数量为0等同删除", func(t *testing.T) {
		resp := PutJSON(t, BaseURL+"/cart/items/1", map[string]interface{}{"quantity": 0})
		require.Equal(t, 0, resp.Code)

		var data CartData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Empty(t, data.Items)
	})

	t.Run("不在购物车中的图书是空操作", func(t *testing.T) {
		resp := PutJSON(t, BaseURL+"/cart/items/999", map[string]interface{}{"quantity": 3})
		assert.Equal(t, 0, resp.Code, "空操作也应返回成功")
	})

	ClearCart(t)
}

// TestCartTotals 测试总价与总数
func TestCartTotals(t *testing.T) {
	ClearCart(t)

	PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{"book_id": "1", "quantity": 2})
	PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{"book_id": "2", "quantity": 1})

	cart := getCart(t)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.TotalItems)

	var expected int64
	for _, item := range cart.Items {
		expected += item.Subtotal
	}
	assert.Equal(t, expected, cart.TotalPrice, "总价应等于行小计之和")

	t.Run("移除一行后重新计算", func(t *testing.T) {
		resp := DeleteJSON(t, BaseURL+"/cart/items/1")
		require.Equal(t, 0, resp.Code)

		var data CartData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Len(t, data.Items, 1)
		assert.Equal(t, data.Items[0].Subtotal, data.TotalPrice)
	})

	t.Run("清空后归零", func(t *testing.T) {
		resp := DeleteJSON(t, BaseURL+"/cart")
		require.Equal(t, 0, resp.Code)

		var data CartData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Empty(t, data.Items)
		assert.Equal(t, 0, data.TotalItems)
		assert.Equal(t, int64(0), data.TotalPrice)
	})
}
