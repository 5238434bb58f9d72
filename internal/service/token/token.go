package token

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/singleflight"

	"fitsync-notify/internal/errs"
)

//go:generate mockgen -source=./token.go -destination=./mocks/token.mock.go -package=tokenmocks Manager

// Manager 管理消息平台的访问凭证
type Manager interface {
	// GetToken 返回一个剩余有效期不小于安全边际的凭证，必要时先刷新
	GetToken(ctx context.Context) (string, error)
}

const (
	// defaultSafetyMargin 凭证剩余有效期低于该值时视为过期
	defaultSafetyMargin = 60 * time.Second
	refreshKey          = "refresh"
)

type refreshResp struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// cachedManager 进程内共享的凭证缓存。
// 刷新走 singleflight：并发调用方共享同一次在途刷新，不会重复请求凭证端点。
type cachedManager struct {
	endpoint string
	client   *http.Client
	margin   time.Duration

	group  singleflight.Group
	logger *elog.Component

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewManager(endpoint string, client *http.Client) Manager {
	if client == nil {
		client = http.DefaultClient
	}
	return &cachedManager{
		endpoint: endpoint,
		client:   client,
		margin:   defaultSafetyMargin,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("token.Manager")),
	}
}

func (m *cachedManager) GetToken(ctx context.Context) (string, error) {
	if tk, ok := m.cached(); ok {
		return tk, nil
	}

	v, err, _ := m.group.Do(refreshKey, func() (any, error) {
		// 可能有并发调用方刚刷新完
		if tk, ok := m.cached(); ok {
			return tk, nil
		}
		return m.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// cached 返回缓存凭证；剩余有效期不足安全边际时视为未命中
func (m *cachedManager) cached() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token != "" && time.Until(m.expiresAt) > m.margin {
		return m.token, true
	}
	return "", false
}

func (m *cachedManager) refresh(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrCredential, err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrCredential, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: 凭证端点返回 %d", errs.ErrCredential, resp.StatusCode)
	}

	var body refreshResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: 响应解析失败: %w", errs.ErrCredential, err)
	}
	if body.AccessToken == "" || body.ExpiresIn <= 0 {
		return "", fmt.Errorf("%w: 响应缺少 access_token 或 expires_in", errs.ErrCredential)
	}

	m.mu.Lock()
	m.token = body.AccessToken
	m.expiresAt = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	m.mu.Unlock()

	m.logger.Info("凭证已刷新", elog.Int64("expiresIn", body.ExpiresIn))
	return body.AccessToken, nil
}
