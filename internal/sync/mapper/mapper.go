package mapper

import (
	"encoding/json"
	"strconv"
	"strings"

	"cafepos-backend/internal/infrastructure/store"
)

// -------------------------------------------------------------------
// HEADER TABLES
// -------------------------------------------------------------------

// fieldOrders cố định thứ tự cột khi tạo sheet mới cho mỗi collection.
// Sheet đã tồn tại thì giữ nguyên header cũ (xem RowsForHeader).
var fieldOrders = map[store.Collection][]string{
	store.CollectionMenu: {
		"id", "name", "price", "category", "soldOut", "createdAt", "updatedAt",
	},
	store.CollectionInventory: {
		"id", "name", "quantity", "unit", "lowStockThreshold", "relatedMenuIds",
	},
	store.CollectionOrders: {
		"id", "orderNumber", "items", "totalAmount", "paymentMethod",
		"couponIds", "status", "createdAt", "servedBy",
	},
	store.CollectionCoupons: {
		"id", "code", "amount", "balance", "isUsed",
		"createdAt", "usedAt", "usedBy", "createdBy",
	},
}

// headerLabels dịch field name sang nhãn tiếng Hàn hiển thị trên sheet.
// Nhãn phải giữ nguyên để round-trip pull/push không đổi header.
var headerLabels = map[store.Collection]map[string]string{
	store.CollectionMenu: {
		"id":        "ID",
		"name":      "메뉴명",
		"price":     "가격",
		"category":  "카테고리",
		"soldOut":   "품절여부",
		"createdAt": "등록일",
		"updatedAt": "수정일",
	},
	store.CollectionInventory: {
		"id":                "ID",
		"name":              "품목명",
		"quantity":          "수량",
		"unit":              "단위",
		"lowStockThreshold": "최소수량",
		"relatedMenuIds":    "연관메뉴",
	},
	store.CollectionOrders: {
		"id":            "ID",
		"orderNumber":   "주문번호",
		"items":         "주문내역",
		"totalAmount":   "합계",
		"paymentMethod": "결제수단",
		"couponIds":     "사용쿠폰",
		"status":        "상태",
		"createdAt":     "주문일시",
		"servedBy":      "담당자",
	},
	store.CollectionCoupons: {
		"id":        "ID",
		"code":      "쿠폰번호",
		"amount":    "초기금액",
		"balance":   "잔액",
		"isUsed":    "사용여부",
		"createdAt": "생성일",
		"usedAt":    "사용일",
		"usedBy":    "사용자",
		"createdBy": "생성자",
	},
}

// labelFields là bảng ngược label → field, build một lần lúc init
var labelFields = func() map[store.Collection]map[string]string {
	out := make(map[store.Collection]map[string]string, len(headerLabels))
	for collection, labels := range headerLabels {
		inv := make(map[string]string, len(labels))
		for field, label := range labels {
			inv[label] = field
		}
		out[collection] = inv
	}
	return out
}()

// Header trả về header row cho một sheet mới của collection
func Header(collection store.Collection) []string {
	fields := fieldOrders[collection]
	labels := headerLabels[collection]

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = labels[f]
	}
	return header
}

// -------------------------------------------------------------------
// RECORDS → ROWS
// -------------------------------------------------------------------

// ToSheetRows convert records sang rows để push lên sheet mới.
// Luôn có header row, kể cả khi records rỗng.
func ToSheetRows(collection store.Collection, records []map[string]interface{}) [][]string {
	rows := [][]string{Header(collection)}

	fields := fieldOrders[collection]
	for _, record := range records {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = cellValue(record[f])
		}
		rows = append(rows, row)
	}

	return rows
}

// RowsForHeader convert records theo thứ tự cột của header đang có trên sheet.
// Label không nhận diện được thì dùng nguyên label làm key - đối xứng với
// FromSheetRows, để giá trị cột user tự thêm đã pull về không bị blank khi
// push lại.
func RowsForHeader(collection store.Collection, records []map[string]interface{}, header []string) [][]string {
	inverse := labelFields[collection]

	fields := make([]string, len(header))
	for i, label := range header {
		label = strings.TrimSpace(label)
		if f, ok := inverse[label]; ok {
			fields[i] = f
		} else {
			fields[i] = label
		}
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, len(fields))
		for i, f := range fields {
			if f == "" {
				continue
			}
			row[i] = cellValue(record[f])
		}
		rows = append(rows, row)
	}

	return rows
}

// cellValue serialize một field value thành cell string
//
// nil → "", bool → "true"/"false", number → dạng thập phân,
// array/object → JSON, string → bỏ newline (sheet một cell một dòng)
func cellValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(val)
	case string:
		val = strings.ReplaceAll(val, "\r\n", " ")
		val = strings.ReplaceAll(val, "\n", " ")
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	default:
		// array, object, các struct lồng nhau
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// -------------------------------------------------------------------
// ROWS → RECORDS
// -------------------------------------------------------------------

// FromSheetRows parse rows kéo về từ sheet thành records.
// Dưới 2 rows (chỉ có header hoặc trống) → không có data.
func FromSheetRows(collection store.Collection, rows [][]string) []map[string]interface{} {
	if len(rows) < 2 {
		return []map[string]interface{}{}
	}

	inverse := labelFields[collection]
	header := rows[0]

	fields := make([]string, len(header))
	for i, label := range header {
		if f, ok := inverse[strings.TrimSpace(label)]; ok {
			fields[i] = f
		} else {
			// label lạ (cột user tự thêm trên sheet) giữ nguyên làm key
			fields[i] = strings.TrimSpace(label)
		}
	}

	records := make([]map[string]interface{}, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]interface{}, len(fields))
		for i, f := range fields {
			if f == "" || i >= len(row) {
				continue
			}
			if v := parseCell(row[i]); v != nil {
				record[f] = v
			}
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	}

	return records
}

// parseCell khôi phục type từ cell string
//
// "" → nil (field bị bỏ khỏi record), "true"/"false" → bool,
// chuỗi số KHÔNG bắt đầu bằng "0" → number (số điện thoại và mã
// zero-padded phải giữ nguyên string), "["/"{" → thử parse JSON,
// còn lại → string nguyên bản.
func parseCell(s string) interface{} {
	if s == "" {
		return nil
	}

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}

	if !strings.HasPrefix(s, "0") {
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return json.Number(s)
		}
	}

	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var v interface{}
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
		// JSON hỏng thì trả raw string thay vì drop data
		return s
	}

	return s
}
