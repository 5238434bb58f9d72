package errs

import "errors"

var (
	// ErrInvalidParameter 参数非法
	ErrInvalidParameter = errors.New("参数非法")
	// ErrCredential 平台凭证刷新失败，本次发送终止，不自动重试
	ErrCredential = errors.New("凭证刷新失败")
	// ErrPolicyCheck 会话窗口检查失败，按发送失败处理（fail-closed）
	ErrPolicyCheck = errors.New("会话窗口检查失败")
	// ErrProviderRejected 平台返回结构化失败
	ErrProviderRejected = errors.New("供应商拒绝发送")
	// ErrNetwork 远程调用未能完成（含超时）
	ErrNetwork = errors.New("网络调用失败")
	// ErrNoAvailableChannel 找不到可用渠道
	ErrNoAvailableChannel = errors.New("无可用渠道")
	// ErrSendFailed 发送通知失败
	ErrSendFailed = errors.New("发送通知失败")
)
