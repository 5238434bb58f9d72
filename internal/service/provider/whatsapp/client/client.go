package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"fitsync-notify/internal/errs"
	"fitsync-notify/internal/service/token"
)

//go:generate mockgen -source=./client.go -destination=./mocks/client.mock.go -package=clientmocks Client

// SendTextReq 会话窗口内的自由文本消息
type SendTextReq struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendTemplateReq 模版消息，窗口外唯一允许的触达方式
type SendTemplateReq struct {
	To           string   `json:"to"`
	TemplateName string   `json:"templateName"`
	Language     string   `json:"language"`
	Components   []string `json:"components,omitempty"`
}

// SendResp 归一化后的平台响应。
// Success=false 时 ErrorCode/ErrorMessage 携带平台的结构化失败。
type SendResp struct {
	Success      bool
	MessageID    string
	ErrorCode    int
	ErrorMessage string
	Raw          string
}

// Client 会话平台客户端，每个方法恰好对应一次远程调用
type Client interface {
	SendText(ctx context.Context, req SendTextReq) (SendResp, error)
	SendTemplate(ctx context.Context, req SendTemplateReq) (SendResp, error)
}

type successBody struct {
	MessageID string `json:"messageId"`
}

type errorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type httpClient struct {
	messageURL  string
	templateURL string
	tokens      token.Manager
	client      *http.Client
}

func NewClient(messageURL, templateURL string, tokens token.Manager, client *http.Client) Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{
		messageURL:  messageURL,
		templateURL: templateURL,
		tokens:      tokens,
		client:      client,
	}
}

func (c *httpClient) SendText(ctx context.Context, req SendTextReq) (SendResp, error) {
	return c.post(ctx, c.messageURL, req)
}

func (c *httpClient) SendTemplate(ctx context.Context, req SendTemplateReq) (SendResp, error) {
	return c.post(ctx, c.templateURL, req)
}

func (c *httpClient) post(ctx context.Context, url string, payload any) (SendResp, error) {
	tk, err := c.tokens.GetToken(ctx)
	if err != nil {
		return SendResp{}, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", errs.ErrNetwork, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+tk)

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
		return SendResp{Success: true, MessageID: ok.MessageID, Raw: string(raw)}, nil
	}

	// 非 2xx：平台的结构化失败，归一化为结果而不是错误
	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	msg := eb.Error.Message
	if msg == "" {
		msg = fmt.Sprintf("平台返回 %d", httpResp.StatusCode)
	}
	return SendResp{
		Success:      false,
		ErrorCode:    eb.Error.Code,
		ErrorMessage: msg,
		Raw:          string(raw),
	}, nil
}
