package windowpolicy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fitsync-notify/internal/errs"
)

//go:generate mockgen -source=./checker.go -destination=./mocks/checker.mock.go -package=policymocks Checker

// Checker 判定接收方当前是否处于平台的会话窗口内。
// 窗口状态每次调用都重新查询，不在本地缓存。
type Checker interface {
	IsWindowOpen(ctx context.Context, recipient string) (bool, error)
}

type checkReq struct {
	PhoneNumber string `json:"phoneNumber"`
}

type checkResp struct {
	InWindow bool `json:"inWindow"`
}

type httpChecker struct {
	endpoint string
	client   *http.Client
}

func NewChecker(endpoint string, client *http.Client) Checker {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpChecker{endpoint: endpoint, client: client}
}

func (c *httpChecker) IsWindowOpen(ctx context.Context, recipient string) (bool, error) {
	payload, err := json.Marshal(checkReq{PhoneNumber: recipient})
	if err != nil {
		return false, fmt.Errorf("%w: %w", errs.ErrPolicyCheck, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("%w: %w", errs.ErrPolicyCheck, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errs.ErrPolicyCheck, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("%w: 窗口端点返回 %d", errs.ErrPolicyCheck, resp.StatusCode)
	}

	var body checkResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("%w: 响应解析失败: %w", errs.ErrPolicyCheck, err)
	}
	return body.InWindow, nil
}
