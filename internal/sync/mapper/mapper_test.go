package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafepos-backend/internal/infrastructure/store"
)

func TestToSheetRows(t *testing.T) {
	t.Run("empty records still produce header", func(t *testing.T) {
		rows := ToSheetRows(store.CollectionCoupons, nil)

		require.Len(t, rows, 1)
		assert.Equal(t, []string{
			"ID", "쿠폰번호", "초기금액", "잔액", "사용여부",
			"생성일", "사용일", "사용자", "생성자",
		}, rows[0])
	})

	t.Run("value sanitization", func(t *testing.T) {
		rows := ToSheetRows(store.CollectionCoupons, []map[string]interface{}{
			{
				"id":      "c-1",
				"code":    "two\nlines",
				"amount":  float64(100000),
				"balance": json.Number("99500.5"),
				"isUsed":  false,
				"usedAt":  nil,
				"createdBy": map[string]interface{}{
					"userId": "u1", "userName": "Minh",
				},
			},
		})

		require.Len(t, rows, 2)
		row := rows[1]
		assert.Equal(t, "c-1", row[0])
		assert.Equal(t, "two lines", row[1])
		assert.Equal(t, "100000", row[2])
		assert.Equal(t, "99500.5", row[3])
		assert.Equal(t, "false", row[4])
		assert.Equal(t, "", row[6]) // usedAt null
		assert.JSONEq(t, `{"userId":"u1","userName":"Minh"}`, row[8])
	})
}

func TestFromSheetRows(t *testing.T) {
	t.Run("header only means no data", func(t *testing.T) {
		records := FromSheetRows(store.CollectionCoupons, [][]string{Header(store.CollectionCoupons)})
		assert.Empty(t, records)

		records = FromSheetRows(store.CollectionCoupons, nil)
		assert.Empty(t, records)
	})

	t.Run("typed cell parsing", func(t *testing.T) {
		records := FromSheetRows(store.CollectionCoupons, [][]string{
			{"ID", "쿠폰번호", "초기금액", "잔액", "사용여부", "생성자"},
			{"c-1", "010-1234", "100000", "", "FALSE", `{"userId":"u1","userName":"Minh"}`},
		})

		require.Len(t, records, 1)
		r := records[0]

		assert.Equal(t, "c-1", r["id"])
		// mã bắt đầu bằng 0 phải giữ nguyên string
		assert.Equal(t, "010-1234", r["code"])
		assert.Equal(t, json.Number("100000"), r["amount"])
		// cell rỗng → field vắng mặt, không phải zero
		_, hasBalance := r["balance"]
		assert.False(t, hasBalance)
		assert.Equal(t, false, r["isUsed"])
		assert.Equal(t, map[string]interface{}{"userId": "u1", "userName": "Minh"}, r["createdBy"])
	})

	t.Run("broken JSON cell falls back to raw string", func(t *testing.T) {
		records := FromSheetRows(store.CollectionCoupons, [][]string{
			{"ID", "생성자"},
			{"c-1", "{not json"},
		})

		require.Len(t, records, 1)
		assert.Equal(t, "{not json", records[0]["createdBy"])
	})

	t.Run("unknown header label kept as raw key", func(t *testing.T) {
		records := FromSheetRows(store.CollectionCoupons, [][]string{
			{"ID", "메모"},
			{"c-1", "hand-written note"},
		})

		require.Len(t, records, 1)
		assert.Equal(t, "hand-written note", records[0]["메모"])
	})
}

func TestRoundTrip(t *testing.T) {
	original := []map[string]interface{}{
		{
			"id":      "c-1",
			"code":    "VIP",
			"amount":  json.Number("100000"),
			"balance": json.Number("30000"),
			"isUsed":  false,
			"createdBy": map[string]interface{}{
				"userId": "u1", "userName": "Minh",
			},
		},
		{
			"id":      "c-2",
			"code":    "TET",
			"amount":  json.Number("50000"),
			"balance": json.Number("12500"),
			"isUsed":  false,
			"usedBy": map[string]interface{}{
				"userId": "u2", "userName": "Lan",
			},
		},
	}

	rows := ToSheetRows(store.CollectionCoupons, original)
	back := FromSheetRows(store.CollectionCoupons, rows)

	require.Len(t, back, len(original))
	for i, want := range original {
		got := back[i]
		for k, v := range want {
			assert.Equal(t, v, got[k], "record %d field %s", i, k)
		}
	}
}

func TestZeroBalanceCellStaysString(t *testing.T) {
	// "0" rơi vào leading-zero guard nên quay về dạng string;
	// normalization phía coupon coerce string về decimal nên không mất nghĩa
	records := FromSheetRows(store.CollectionCoupons, [][]string{
		{"ID", "잔액"},
		{"c-1", "0"},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "0", records[0]["balance"])
}

func TestRowsForHeader(t *testing.T) {
	records := []map[string]interface{}{
		{"id": "c-1", "code": "VIP", "balance": json.Number("500")},
	}

	// sheet đang có header rút gọn và thứ tự khác fieldOrders
	header := []string{"잔액", "ID", "직접추가한컬럼"}
	rows := RowsForHeader(store.CollectionCoupons, records, header)

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"500", "c-1", ""}, rows[0])
}

func TestRowsForHeader_UnknownColumnRoundTrips(t *testing.T) {
	// cột user tự thêm: pull giữ label làm raw key, push phải trả đúng
	// giá trị đó về cột cũ thay vì blank
	pulled := FromSheetRows(store.CollectionCoupons, [][]string{
		{"ID", "메모"},
		{"c-1", "hand-written note"},
	})
	require.Len(t, pulled, 1)

	rows := RowsForHeader(store.CollectionCoupons, pulled, []string{"ID", "메모"})
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"c-1", "hand-written note"}, rows[0])
}
