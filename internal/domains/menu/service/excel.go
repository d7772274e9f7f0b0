package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"cafepos-backend/internal/domains/menu/model"
	"cafepos-backend/pkg/logger"
)

// maxImportRows chặn file import quá lớn
const maxImportRows = 1000

// menuExcelHeaders cột của file import/export, theo đúng thứ tự
var menuExcelHeaders = []string{"Name", "Price", "Category", "Sold Out"}

// ImportFromExcel đọc file xlsx và thêm món hàng loạt
//
// PHASE 1: parse + validate toàn bộ rows, lỗi row nào ghi nhận row đó.
// PHASE 2: chỉ append các row hợp lệ trong một Update duy nhất.
// Row lỗi không chặn row khác (partial import, kết quả báo rõ từng row).
func (s *menuService) ImportFromExcel(ctx context.Context, file io.Reader) (*model.ImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, &model.AppError{
			Code:       model.ErrCodeMenuImportFailed,
			Message:    "File không đọc được, cần đúng định dạng xlsx",
			HTTPStatus: 400,
		}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &model.AppError{
			Code:       model.ErrCodeMenuImportFailed,
			Message:    "Không đọc được sheet đầu tiên",
			HTTPStatus: 400,
		}
	}

	if len(rows) < 2 {
		return &model.ImportResult{TotalRows: 0}, nil
	}
	if len(rows)-1 > maxImportRows {
		return nil, &model.AppError{
			Code:       model.ErrCodeMenuImportFailed,
			Message:    fmt.Sprintf("File vượt giới hạn %d rows", maxImportRows),
			HTTPStatus: 400,
		}
	}

	// PHASE 1: validate từng row
	result := &model.ImportResult{TotalRows: len(rows) - 1}
	now := time.Now()
	var valid []model.MenuItem

	for i, row := range rows[1:] {
		rowNum := i + 2 // row 1 là header

		item, err := parseMenuRow(row, now)
		if err != nil {
			result.Errors = append(result.Errors, model.ImportError{Row: rowNum, Error: err.Error()})
			continue
		}
		valid = append(valid, item)
	}

	// PHASE 2: append các row hợp lệ
	if len(valid) > 0 {
		err := s.repo.Update(ctx, func(items []model.MenuItem) ([]model.MenuItem, error) {
			return append(items, valid...), nil
		})
		if err != nil {
			return nil, err
		}
	}
	result.Imported = len(valid)

	logger.Info("menu import completed", map[string]interface{}{
		"total":    result.TotalRows,
		"imported": result.Imported,
		"rejected": len(result.Errors),
	})

	return result, nil
}

// parseMenuRow convert một excel row thành MenuItem
func parseMenuRow(row []string, now time.Time) (model.MenuItem, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	name := cell(0)
	if name == "" {
		return model.MenuItem{}, fmt.Errorf("thiếu tên món")
	}

	price, err := decimal.NewFromString(cell(1))
	if err != nil || price.IsNegative() {
		return model.MenuItem{}, fmt.Errorf("giá %q không hợp lệ", cell(1))
	}

	soldOut := strings.EqualFold(cell(3), "true")

	return model.MenuItem{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     price,
		Category:  cell(2),
		SoldOut:   soldOut,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ExportToExcel build file xlsx chứa toàn bộ menu
func (s *menuService) ExportToExcel(ctx context.Context) (*excelize.File, error) {
	items, err := s.ListMenuItems(ctx, "")
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Menu"
	f.SetSheetName("Sheet1", sheetName)

	// Row 1: header
	for colIdx, header := range menuExcelHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "D1", headerStyle)
	}

	// Data rows, bắt đầu từ row 2
	for i, item := range items {
		rowNum := i + 2
		cellAt := func(col int) string {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			return cell
		}

		f.SetCellValue(sheetName, cellAt(1), item.Name)
		f.SetCellValue(sheetName, cellAt(2), item.Price.InexactFloat64())
		f.SetCellValue(sheetName, cellAt(3), item.Category)
		f.SetCellValue(sheetName, cellAt(4), item.SoldOut)
	}

	return f, nil
}
