package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection là tên của một record collection (mỗi collection một file JSON)
type Collection string

const (
	CollectionMenu      Collection = "menu"
	CollectionInventory Collection = "inventory"
	CollectionOrders    Collection = "orders"
	CollectionCoupons   Collection = "coupons"
	CollectionUsers     Collection = "users"
)

// SyncedCollections là các collection được sync với Google Sheets
// (users chỉ tồn tại local, không push lên spreadsheet)
var SyncedCollections = []Collection{
	CollectionMenu,
	CollectionInventory,
	CollectionOrders,
	CollectionCoupons,
}

// ErrPersistence báo hiệu local file I/O failure
// Không auto-retry - propagate thẳng lên caller
var ErrPersistence = errors.New("local store I/O failed")

// Store là local JSON store: một file pretty-printed JSON cho mỗi collection.
//
// Load-modify-save không atomic, nên mỗi collection có một mutex riêng;
// mọi mutation phải đi qua Update() để tránh lost update giữa hai caller
// cùng load snapshot "hiện tại".
type Store struct {
	dir string
	mu  map[Collection]*sync.Mutex
}

// New tạo store, đảm bảo data directory tồn tại
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrPersistence, err)
	}

	mu := make(map[Collection]*sync.Mutex)
	for _, c := range []Collection{
		CollectionMenu, CollectionInventory, CollectionOrders, CollectionCoupons, CollectionUsers,
	} {
		mu[c] = &sync.Mutex{}
	}

	return &Store{dir: dir, mu: mu}, nil
}

// Read decode collection file vào out (con trỏ tới slice).
//
// File không tồn tại → out giữ nguyên empty; riêng menu/orders/coupons
// auto-create file rỗng ngay lần miss đầu tiên, inventory thì không
// (inventory chỉ xuất hiện khi được setup chủ động).
func (s *Store) Read(c Collection, out any) error {
	data, err := os.ReadFile(s.path(c))
	if err != nil {
		if os.IsNotExist(err) {
			if c != CollectionInventory {
				if werr := s.writeRaw(c, []byte("[]")); werr != nil {
					return werr
				}
			}
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", ErrPersistence, c, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrPersistence, c, err)
	}
	return nil
}

// Write ghi đè toàn bộ collection file (full overwrite, không partial update)
func (s *Store) Write(c Collection, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, c, err)
	}
	return s.writeRaw(c, data)
}

// Update chạy fn như một critical section trên collection.
// fn tự Read/Write bên trong; mutex đảm bảo load→mutate→save không bị interleave.
func (s *Store) Update(c Collection, fn func() error) error {
	mu, ok := s.mu[c]
	if !ok {
		return fmt.Errorf("%w: unknown collection %q", ErrPersistence, c)
	}
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

func (s *Store) writeRaw(c Collection, data []byte) error {
	if err := os.WriteFile(s.path(c), data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, c, err)
	}
	return nil
}

func (s *Store) path(c Collection) string {
	return filepath.Join(s.dir, string(c)+".json")
}
