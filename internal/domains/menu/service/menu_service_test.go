package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cafepos-backend/internal/domains/menu/model"
	"cafepos-backend/internal/domains/menu/repository"
	"cafepos-backend/internal/infrastructure/store"
)

func newTestService(t *testing.T) ServiceInterface {
	t.Helper()

	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewMenuService(repository.NewStoreRepository(s))
}

func TestMenuCRUD(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, model.CreateMenuItemRequest{
		Name:     "Americano",
		Price:    decimal.NewFromInt(4000),
		Category: "coffee",
	})
	require.NoError(t, err)
	assert.False(t, item.SoldOut)

	t.Run("sold out toggle", func(t *testing.T) {
		got, err := svc.SetSoldOut(ctx, item.ID, true)
		require.NoError(t, err)
		assert.True(t, got.SoldOut)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		newPrice := decimal.NewFromInt(4500)
		got, err := svc.UpdateMenuItem(ctx, item.ID, model.UpdateMenuItemRequest{Price: &newPrice})
		require.NoError(t, err)

		assert.True(t, got.Price.Equal(newPrice))
		assert.Equal(t, "Americano", got.Name)
		assert.Equal(t, "coffee", got.Category)
	})

	t.Run("category filter is case-insensitive", func(t *testing.T) {
		_, err := svc.CreateMenuItem(ctx, model.CreateMenuItemRequest{
			Name:     "Matcha Latte",
			Price:    decimal.NewFromInt(5500),
			Category: "tea",
		})
		require.NoError(t, err)

		items, err := svc.ListMenuItems(ctx, "TEA")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Matcha Latte", items[0].Name)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := svc.CreateMenuItem(ctx, model.CreateMenuItemRequest{
			Name:  "Bad",
			Price: decimal.NewFromInt(-1),
		})
		assert.Error(t, err)
	})

	t.Run("delete then get returns not found", func(t *testing.T) {
		require.NoError(t, svc.DeleteMenuItem(ctx, item.ID))

		_, err := svc.GetMenuItem(ctx, item.ID)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, model.ErrCodeMenuItemNotFound, appErr.Code)
	})
}

func buildImportFile(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportFromExcel(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	buf := buildImportFile(t, [][]interface{}{
		{"Name", "Price", "Category", "Sold Out"},
		{"Americano", 4000, "coffee", "false"},
		{"Latte", 5000, "coffee", "TRUE"},
		{"", 1000, "coffee", ""},         // thiếu tên
		{"Broken", "abc", "coffee", ""},  // giá hỏng
	})

	result, err := svc.ImportFromExcel(ctx, buf)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalRows)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 4, result.Errors[0].Row)
	assert.Equal(t, 5, result.Errors[1].Row)

	items, err := svc.ListMenuItems(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 2)

	for _, item := range items {
		if item.Name == "Latte" {
			assert.True(t, item.SoldOut)
		}
	}
}

func TestExportToExcel(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateMenuItem(ctx, model.CreateMenuItemRequest{
		Name:     "Americano",
		Price:    decimal.NewFromInt(4000),
		Category: "coffee",
	})
	require.NoError(t, err)

	f, err := svc.ExportToExcel(ctx)
	require.NoError(t, err)

	rows, err := f.GetRows("Menu")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Name", "Price", "Category", "Sold Out"}, rows[0])
	assert.Equal(t, "Americano", rows[1][0])
}

func TestPriceOf(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, model.CreateMenuItemRequest{
		Name:  "Latte",
		Price: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	price, name, err := svc.PriceOf(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "Latte", name)

	_, _, err = svc.PriceOf(ctx, "missing")
	assert.Error(t, err)

	// thời gian tạo không ở tương lai (sanity cho order snapshot)
	assert.False(t, item.CreatedAt.After(time.Now().Add(time.Second)))
}
