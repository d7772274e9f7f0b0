package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cafepos-backend/internal/config"
)

// ErrAuthExpired đánh dấu credential Google hết hạn, caller phải phân biệt
// với lỗi sync thường để đẩy user đi re-login
var ErrAuthExpired = errors.New("google credential expired")

// TokenProvider cấp access token cho mỗi API call
type TokenProvider interface {
	AccessToken() (string, error)
}

// Client gọi Google Sheets API v4 qua REST
type Client struct {
	baseURL       string
	spreadsheetID string
	tokens        TokenProvider
	httpClient    *http.Client
}

// NewClient tạo sheets client
func NewClient(cfg config.SheetsConfig, tokens TokenProvider) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.APIBaseURL, "/"),
		spreadsheetID: cfg.SpreadsheetID,
		tokens:        tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// -------------------------------------------------------------------
// SHEET METADATA
// -------------------------------------------------------------------

// ListSheetTitles lấy tên toàn bộ sheet tab trong spreadsheet
func (c *Client) ListSheetTitles(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%s/%s?fields=sheets.properties", c.baseURL, c.spreadsheetID)

	var result struct {
		Sheets []struct {
			Properties struct {
				Title string `json:"title"`
			} `json:"properties"`
		} `json:"sheets"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(result.Sheets))
	for _, s := range result.Sheets {
		titles = append(titles, s.Properties.Title)
	}
	return titles, nil
}

// AddSheet tạo sheet tab mới theo tên collection
func (c *Client) AddSheet(ctx context.Context, title string) error {
	endpoint := fmt.Sprintf("%s/%s:batchUpdate", c.baseURL, c.spreadsheetID)

	body := map[string]interface{}{
		"requests": []map[string]interface{}{
			{
				"addSheet": map[string]interface{}{
					"properties": map[string]interface{}{"title": title},
				},
			},
		},
	}

	return c.do(ctx, http.MethodPost, endpoint, body, nil)
}

// -------------------------------------------------------------------
// VALUES
// -------------------------------------------------------------------

// GetValues đọc toàn bộ cell của một sheet tab
func (c *Client) GetValues(ctx context.Context, sheetTitle string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s", c.baseURL, c.spreadsheetID, url.PathEscape(sheetTitle))

	var result struct {
		Values [][]interface{} `json:"values"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}

	rows := make([][]string, len(result.Values))
	for i, raw := range result.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = fmt.Sprintf("%v", cell)
		}
		rows[i] = row
	}
	return rows, nil
}

// UpdateValues ghi đè values từ ô đầu của range
func (c *Client) UpdateValues(ctx context.Context, rangeA1 string, rows [][]string) error {
	endpoint := fmt.Sprintf("%s/%s/values/%s?valueInputOption=USER_ENTERED",
		c.baseURL, c.spreadsheetID, url.PathEscape(rangeA1))

	body := map[string]interface{}{
		"range":          rangeA1,
		"majorDimension": "ROWS",
		"values":         rows,
	}

	return c.do(ctx, http.MethodPut, endpoint, body, nil)
}

// ClearValues xóa values trong range (giữ nguyên sheet và format)
func (c *Client) ClearValues(ctx context.Context, rangeA1 string) error {
	endpoint := fmt.Sprintf("%s/%s/values/%s:clear", c.baseURL, c.spreadsheetID, url.PathEscape(rangeA1))
	return c.do(ctx, http.MethodPost, endpoint, map[string]interface{}{}, nil)
}

// AppendValues append rows vào sau row cuối đang có data
func (c *Client) AppendValues(ctx context.Context, sheetTitle string, rows [][]string) error {
	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.baseURL, c.spreadsheetID, url.PathEscape(sheetTitle))

	body := map[string]interface{}{
		"majorDimension": "ROWS",
		"values":         rows,
	}

	return c.do(ctx, http.MethodPost, endpoint, body, nil)
}

// -------------------------------------------------------------------
// HTTP
// -------------------------------------------------------------------

// do thực hiện request có bearer token và decode JSON response
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	token, err := c.tokens.AccessToken()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthExpired, err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call sheets api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read sheets response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: sheets api status %d: %s", ErrAuthExpired, resp.StatusCode, respBody)
	}
	if isAuthErrorBody(respBody) {
		return fmt.Errorf("%w: %s", ErrAuthExpired, respBody)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sheets api status %d: %s", resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode sheets response: %w", err)
		}
	}

	return nil
}

// isAuthErrorBody bắt các marker auth lỗi mà Google đôi khi trả kèm status 400
func isAuthErrorBody(body []byte) bool {
	s := string(body)
	return strings.Contains(s, "UNAUTHENTICATED") ||
		strings.Contains(s, "PERMISSION_DENIED") ||
		strings.Contains(s, "invalid_grant")
}
