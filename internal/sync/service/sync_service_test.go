package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafepos-backend/internal/infrastructure/sheets"
	"cafepos-backend/internal/infrastructure/store"
	"cafepos-backend/internal/sync/mapper"
)

// fakeSheets giả lập spreadsheet trong memory
type fakeSheets struct {
	titles   []string
	values   map[string][][]string
	appended map[string][][]string
	cleared  []string

	listErr error
	getErr  map[string]error

	onList func() // hook để test guard
}

func newFakeSheets() *fakeSheets {
	return &fakeSheets{
		values:   map[string][][]string{},
		appended: map[string][][]string{},
		getErr:   map[string]error{},
	}
}

func (f *fakeSheets) ListSheetTitles(ctx context.Context) ([]string, error) {
	if f.onList != nil {
		f.onList()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.titles, nil
}

func (f *fakeSheets) AddSheet(ctx context.Context, title string) error {
	f.titles = append(f.titles, title)
	return nil
}

func (f *fakeSheets) GetValues(ctx context.Context, sheetTitle string) ([][]string, error) {
	if err := f.getErr[sheetTitle]; err != nil {
		return nil, err
	}
	return f.values[sheetTitle], nil
}

func (f *fakeSheets) UpdateValues(ctx context.Context, rangeA1 string, rows [][]string) error {
	f.values[rangeA1] = rows
	return nil
}

func (f *fakeSheets) ClearValues(ctx context.Context, rangeA1 string) error {
	f.cleared = append(f.cleared, rangeA1)
	return nil
}

func (f *fakeSheets) AppendValues(ctx context.Context, sheetTitle string, rows [][]string) error {
	f.appended[sheetTitle] = append(f.appended[sheetTitle], rows...)
	return nil
}

func newTestSync(t *testing.T) (*SyncService, *store.Store, *fakeSheets) {
	t.Helper()

	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	api := newFakeSheets()
	return NewSyncService(s, api), s, api
}

func TestSyncAll_PushCreatesMissingSheets(t *testing.T) {
	svc, s, api := newTestSync(t)

	require.NoError(t, s.Write(store.CollectionCoupons, []map[string]interface{}{
		{"id": "c-1", "code": "VIP", "amount": 1000, "balance": 1000, "isUsed": false},
	}))

	results, err := svc.SyncAll(context.Background())
	require.NoError(t, err)

	for _, c := range store.SyncedCollections {
		assert.True(t, results[string(c)], "collection %s", c)
	}

	// chỉ collection có data mới được tạo sheet
	assert.Equal(t, []string{"coupons"}, api.titles)

	rows := api.values["coupons"]
	require.Len(t, rows, 2)
	assert.Equal(t, mapper.Header(store.CollectionCoupons), rows[0])
	assert.Equal(t, "c-1", rows[1][0])
}

func TestSyncAll_EmptyBothSidesTouchesNothing(t *testing.T) {
	svc, _, api := newTestSync(t)

	// store trống, spreadsheet chưa có sheet nào → tick không được ghi gì
	results, err := svc.SyncAll(context.Background())
	require.NoError(t, err)

	for _, c := range store.SyncedCollections {
		assert.True(t, results[string(c)], "collection %s", c)
	}
	assert.Empty(t, api.titles)
	assert.Empty(t, api.values)
	assert.Empty(t, api.appended)
	assert.Empty(t, api.cleared)
}

func TestSyncAll_EmptyLocalHeaderOnlySheetLeftAlone(t *testing.T) {
	svc, _, api := newTestSync(t)

	api.titles = []string{"coupons"}
	api.values["coupons"] = [][]string{mapper.Header(store.CollectionCoupons)}

	results, err := svc.SyncAll(context.Background())
	require.NoError(t, err)
	assert.True(t, results["coupons"])

	// không pull (không có data rows), cũng không clear/append gì
	assert.Empty(t, api.appended)
	assert.Empty(t, api.cleared)
	require.Len(t, api.values["coupons"], 1)
}

func TestSyncAll_PullsWhenLocalEmptyAndRemoteHasRows(t *testing.T) {
	svc, s, api := newTestSync(t)

	api.titles = []string{"menu", "inventory", "orders", "coupons"}
	api.values["coupons"] = [][]string{
		{"ID", "쿠폰번호", "초기금액", "잔액"},
		{"c-1", "VIP", "100000", ""},
	}

	results, err := svc.SyncAll(context.Background())
	require.NoError(t, err)
	assert.True(t, results["coupons"])

	var records []map[string]interface{}
	require.NoError(t, s.Read(store.CollectionCoupons, &records))
	require.Len(t, records, 1)

	// balance trống trên sheet → default về amount khi pull
	assert.Equal(t, records[0]["amount"], records[0]["balance"])
	assert.Equal(t, false, records[0]["isUsed"])
}

func TestSyncAll_PushPreservesExistingHeader(t *testing.T) {
	svc, s, api := newTestSync(t)

	require.NoError(t, s.Write(store.CollectionCoupons, []map[string]interface{}{
		{"id": "c-1", "code": "VIP", "amount": 1000, "balance": 400, "isUsed": false},
	}))

	// header trên sheet đang đảo thứ tự so với mặc định
	api.titles = []string{"menu", "inventory", "orders", "coupons"}
	api.values["coupons"] = [][]string{
		{"잔액", "ID"},
		{"stale", "stale"},
	}

	_, err := svc.SyncAll(context.Background())
	require.NoError(t, err)

	assert.Contains(t, api.cleared, "coupons!A2:Z")
	require.Len(t, api.appended["coupons"], 1)
	assert.Equal(t, []string{"400", "c-1"}, api.appended["coupons"][0])
}

func TestSyncAll_CollectionFailureDoesNotBlockOthers(t *testing.T) {
	svc, _, api := newTestSync(t)

	api.titles = []string{"menu"}
	api.getErr["menu"] = fmt.Errorf("quota exceeded")

	results, err := svc.SyncAll(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, sheets.ErrAuthExpired)

	assert.False(t, results["menu"])
	assert.True(t, results["inventory"])
	assert.True(t, results["orders"])
	assert.True(t, results["coupons"])
}

func TestSyncAll_AuthExpiredAbortsRun(t *testing.T) {
	svc, _, api := newTestSync(t)
	api.listErr = fmt.Errorf("%w: status 401", sheets.ErrAuthExpired)

	_, err := svc.SyncAll(context.Background())
	assert.ErrorIs(t, err, sheets.ErrAuthExpired)
}

func TestSyncAll_RejectsConcurrentRun(t *testing.T) {
	svc, _, api := newTestSync(t)

	var nested error
	api.onList = func() {
		// lượt thứ hai khởi động trong khi lượt đầu đang chạy
		_, nested = svc.SyncAll(context.Background())
	}

	_, err := svc.SyncAll(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, nested, ErrSyncInProgress)
	assert.False(t, svc.Running())
}
