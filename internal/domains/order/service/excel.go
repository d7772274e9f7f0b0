package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"cafepos-backend/internal/domains/order/model"
)

// orderExcelHeaders cột file export doanh thu ngày
var orderExcelHeaders = []string{
	"Order Number", "Time", "Items", "Total", "Payment", "Status", "Served By",
}

// ExportToExcel build file xlsx các order trong ngày (day rỗng = tất cả)
func (s *orderService) ExportToExcel(ctx context.Context, day string) (*excelize.File, error) {
	orders, err := s.ListOrders(ctx, day)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Orders"
	f.SetSheetName("Sheet1", sheetName)

	for colIdx, header := range orderExcelHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "G1", headerStyle)
	}

	for i, o := range orders {
		rowNum := i + 2
		cellAt := func(col int) string {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			return cell
		}

		f.SetCellValue(sheetName, cellAt(1), o.OrderNumber)
		f.SetCellValue(sheetName, cellAt(2), o.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetName, cellAt(3), summarizeLines(o.Items))
		f.SetCellValue(sheetName, cellAt(4), o.TotalAmount.InexactFloat64())
		f.SetCellValue(sheetName, cellAt(5), string(o.PaymentMethod))
		f.SetCellValue(sheetName, cellAt(6), string(o.Status))
		f.SetCellValue(sheetName, cellAt(7), o.ServedBy.UserName)
	}

	return f, nil
}

// summarizeLines gộp order lines thành một cell "Americano x2, Latte x1"
func summarizeLines(lines []model.OrderLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%s x%d", l.Name, l.Quantity))
	}
	return strings.Join(parts, ", ")
}
