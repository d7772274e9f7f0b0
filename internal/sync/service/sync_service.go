package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	couponmodel "cafepos-backend/internal/domains/coupon/model"
	"cafepos-backend/internal/infrastructure/sheets"
	"cafepos-backend/internal/infrastructure/store"
	"cafepos-backend/internal/sync/mapper"
	"cafepos-backend/pkg/logger"
)

// ErrSyncInProgress - một lượt sync đang chạy, lượt mới bị từ chối
var ErrSyncInProgress = errors.New("sync already in progress")

// ErrAuthExpired re-export để caller không phải import sheets package
var ErrAuthExpired = sheets.ErrAuthExpired

// SheetsAPI là phần Google Sheets mà orchestrator cần, tách interface
// để test với fake
type SheetsAPI interface {
	ListSheetTitles(ctx context.Context) ([]string, error)
	AddSheet(ctx context.Context, title string) error
	GetValues(ctx context.Context, sheetTitle string) ([][]string, error)
	UpdateValues(ctx context.Context, rangeA1 string, rows [][]string) error
	ClearValues(ctx context.Context, rangeA1 string) error
	AppendValues(ctx context.Context, sheetTitle string, rows [][]string) error
}

// SyncService đồng bộ hai chiều giữa local store và Google Sheets
type SyncService struct {
	store *store.Store
	api   SheetsAPI

	mu      sync.Mutex
	running bool
}

// NewSyncService tạo orchestrator
func NewSyncService(s *store.Store, api SheetsAPI) *SyncService {
	return &SyncService{store: s, api: api}
}

// tryBegin đánh dấu một lượt sync bắt đầu, false nếu đang có lượt khác
func (s *SyncService) tryBegin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}
	s.running = true
	return true
}

func (s *SyncService) finish() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// Running cho biết có lượt sync đang chạy không
func (s *SyncService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// SyncAll chạy một lượt sync trên toàn bộ synced collections.
//
// Mỗi collection sync độc lập: collection lỗi không chặn collection sau,
// kết quả từng collection trả về trong map. Riêng credential hết hạn thì
// dừng cả lượt vì mọi call tiếp theo chắc chắn fail giống nhau.
func (s *SyncService) SyncAll(ctx context.Context) (map[string]bool, error) {
	if !s.tryBegin() {
		return nil, ErrSyncInProgress
	}
	defer s.finish()

	titles, err := s.api.ListSheetTitles(ctx)
	if err != nil {
		if errors.Is(err, sheets.ErrAuthExpired) {
			return nil, err
		}
		return nil, fmt.Errorf("list sheets: %w", err)
	}

	existing := make(map[string]bool, len(titles))
	for _, t := range titles {
		existing[t] = true
	}

	results := make(map[string]bool, len(store.SyncedCollections))
	var failed []string

	for _, collection := range store.SyncedCollections {
		err := s.syncCollection(ctx, collection, existing)
		if err != nil {
			if errors.Is(err, sheets.ErrAuthExpired) {
				results[string(collection)] = false
				return results, err
			}

			logger.Error("collection sync failed", err, map[string]interface{}{
				"collection": string(collection),
			})
			results[string(collection)] = false
			failed = append(failed, string(collection))
			continue
		}
		results[string(collection)] = true
	}

	if len(failed) > 0 {
		return results, fmt.Errorf("sync failed for collections %v", failed)
	}

	logger.Info("sync completed", map[string]interface{}{
		"collections": len(results),
	})
	return results, nil
}

// syncCollection quyết định chiều sync cho một collection
//
// Local trống mà sheet đã có data → pull (máy mới setup lấy data về).
// Local trống và sheet cũng trống/chưa tồn tại → không làm gì, không
// động vào spreadsheet. Local có data → push, local là source of truth.
func (s *SyncService) syncCollection(ctx context.Context, collection store.Collection, existing map[string]bool) error {
	var records []map[string]interface{}
	if err := s.store.Read(collection, &records); err != nil {
		return err
	}
	records = normalize(collection, records)

	title := string(collection)

	if len(records) == 0 {
		if !existing[title] {
			return nil
		}
		rows, err := s.api.GetValues(ctx, title)
		if err != nil {
			return err
		}
		if len(rows) >= 2 {
			return s.pull(collection, rows)
		}
		return nil
	}

	return s.push(ctx, collection, records, existing[title])
}

// pull ghi data từ sheet đè lên local store
func (s *SyncService) pull(collection store.Collection, rows [][]string) error {
	records := mapper.FromSheetRows(collection, rows)
	records = normalize(collection, records)

	if err := s.store.Write(collection, records); err != nil {
		return err
	}

	logger.Info("pulled collection from sheet", map[string]interface{}{
		"collection": string(collection),
		"records":    len(records),
	})
	return nil
}

// push đẩy local records lên sheet
//
// Sheet chưa có → tạo rồi ghi header + data.
// Sheet trống → seed header + data.
// Sheet đã có data → giữ header hiện tại, clear data rows rồi append
// theo đúng thứ tự cột của header đó.
func (s *SyncService) push(ctx context.Context, collection store.Collection, records []map[string]interface{}, sheetExists bool) error {
	title := string(collection)

	if !sheetExists {
		if err := s.api.AddSheet(ctx, title); err != nil {
			return err
		}
		return s.api.UpdateValues(ctx, title, mapper.ToSheetRows(collection, records))
	}

	rows, err := s.api.GetValues(ctx, title)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return s.api.UpdateValues(ctx, title, mapper.ToSheetRows(collection, records))
	}

	header := rows[0]
	if err := s.api.ClearValues(ctx, title+"!A2:Z"); err != nil {
		return err
	}

	if len(records) == 0 {
		return nil
	}
	return s.api.AppendValues(ctx, title, mapper.RowsForHeader(collection, records, header))
}

// normalize áp các default rule trước khi record rời khỏi/đi vào store.
// Hiện chỉ coupon có rule (balance vắng mặt = amount).
func normalize(collection store.Collection, records []map[string]interface{}) []map[string]interface{} {
	if collection == store.CollectionCoupons {
		return couponmodel.NormalizeRecords(records)
	}
	return records
}
