package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"fitsync-notify/internal/errs"
)

//go:generate mockgen -source=./client.go -destination=./mocks/client.mock.go -package=clientmocks Client

// SendReq 短信网关请求
type SendReq struct {
	To   string
	From string
	Body string
}

// SendResp 归一化后的网关响应
type SendResp struct {
	Success      bool
	SID          string
	ErrorMessage string
	Raw          string
}

// Client 短信网关客户端
type Client interface {
	Send(ctx context.Context, req SendReq) (SendResp, error)
}

type successBody struct {
	SID string `json:"sid"`
}

type errorBody struct {
	Message string `json:"message"`
}

// httpClient 表单编码 + Basic 认证的短信网关实现，
// 认证凭据由账号标识与密钥构成
type httpClient struct {
	endpoint   string
	accountSID string
	authToken  string
	client     *http.Client
}

func NewClient(endpoint, accountSID, authToken string, client *http.Client) Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{
		endpoint:   endpoint,
		accountSID: accountSID,
		authToken:  authToken,
		client:     client,
	}
}

func (c *httpClient) Send(ctx context.Context, req SendReq) (SendResp, error) {
	form := url.Values{}
	form.Set("To", req.To)
	form.Set("From", req.From)
	form.Set("Body", req.Body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", errs.ErrNetwork, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(c.accountSID, c.authToken)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", errs.ErrNetwork, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", errs.ErrNetwork, err)
	}

	if httpResp.StatusCode >= 200 && httpResp.StatusCode <= 299 {
		var ok successBody
		if err := json.Unmarshal(raw, &ok); err != nil {
			return SendResp{}, fmt.Errorf("%w: 响应解析失败: %w", errs.ErrNetwork, err)
		}
		return SendResp{Success: true, SID: ok.SID, Raw: string(raw)}, nil
	}

	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	msg := eb.Message
	if msg == "" {
		msg = fmt.Sprintf("短信网关返回 %d", httpResp.StatusCode)
	}
	return SendResp{Success: false, ErrorMessage: msg, Raw: string(raw)}, nil
}
