// Package cart 实现客户端購物車的值对象：按商品维度的行列表，
// 支持增减、删除、清空与合计，并通过 Store 钩子在每次变更后持久化。
// 购物车归浏览器会话独占，不经过服务端，下单成功后由调用方清空。
package cart

import (
	"github.com/fresh-dairy/backend/internal/models"

	"github.com/shopspring/decimal"
)

// ProductSnapshot 加入购物车时的商品快照
type ProductSnapshot struct {
	ID       uint         `json:"id"`
	Category string       `json:"category"`
	Name     string       `json:"name"`
	Size     string       `json:"size,omitempty"`
	Price    models.Money `json:"price"`
	ImageURL string       `json:"image_url,omitempty"`
}

// Line 购物车行（商品快照 + 数量）
type Line struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart 购物车值对象
type Cart struct {
	Lines []Line `json:"lines"`
}

// New 创建空购物车
func New() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(productID uint) int {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add 加入商品：已存在则数量加一，否则以数量 1 新增一行
func (c *Cart) Add(product ProductSnapshot) {
	if i := c.indexOf(product.ID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, Line{Product: product, Quantity: 1})
}

// Increment 数量加一；商品不在购物车中时不做任何事
func (c *Cart) Increment(productID uint) {
	if i := c.indexOf(productID); i >= 0 {
		c.Lines[i].Quantity++
	}
}

// Decrement 数量减一；减到零时整行移除
func (c *Cart) Decrement(productID uint) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if c.Lines[i].Quantity <= 1 {
		c.removeAt(i)
		return
	}
	c.Lines[i].Quantity--
}

// Remove 移除整行
func (c *Cart) Remove(productID uint) {
	if i := c.indexOf(productID); i >= 0 {
		c.removeAt(i)
	}
}

func (c *Cart) removeAt(i int) {
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
}

// Clear 清空购物车（下单成功后调用）
func (c *Cart) Clear() {
	c.Lines = nil
}

// Count 商品总件数
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Total 合计金额（单价 × 数量求和，保留 2 位小数）
func (c *Cart) Total() models.Money {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Product.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}
