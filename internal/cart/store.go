package cart

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// StorageKey 持久化键名
const StorageKey = "dairy-cart"

// Store 购物车持久化钩子：启动时加载，每次变更后保存
type Store interface {
	Load() (*Cart, error)
	Save(cart *Cart) error
}

// FileStore 基于 JSON 文件的持久化实现
type FileStore struct {
	path string
}

// NewFileStore 创建文件持久化；dir 为空时使用当前目录
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "."
	}
	return &FileStore{path: filepath.Join(dir, StorageKey+".json")}
}

// Load 读取购物车；文件不存在时返回空购物车
func (s *FileStore) Load() (*Cart, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}
	var cart Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		// 损坏的本地数据按空购物车处理
		return New(), nil
	}
	return &cart, nil
}

// Save 保存购物车
func (s *FileStore) Save(cart *Cart) error {
	if cart == nil {
		cart = New()
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Session 带持久化钩子的购物车会话：所有变更后立即保存
type Session struct {
	cart  *Cart
	store Store
}

// NewSession 创建会话并从持久化加载购物车
func NewSession(store Store) (*Session, error) {
	cart, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{cart: cart, store: store}, nil
}

// Cart 当前购物车
func (s *Session) Cart() *Cart {
	return s.cart
}

// Add 加入商品并保存
func (s *Session) Add(product ProductSnapshot) error {
	s.cart.Add(product)
	return s.store.Save(s.cart)
}

// Increment 数量加一并保存
func (s *Session) Increment(productID uint) error {
	s.cart.Increment(productID)
	return s.store.Save(s.cart)
}

// Decrement 数量减一并保存
func (s *Session) Decrement(productID uint) error {
	s.cart.Decrement(productID)
	return s.store.Save(s.cart)
}

// Remove 移除整行并保存
func (s *Session) Remove(productID uint) error {
	s.cart.Remove(productID)
	return s.store.Save(s.cart)
}

// Clear 清空并保存
func (s *Session) Clear() error {
	s.cart.Clear()
	return s.store.Save(s.cart)
}
