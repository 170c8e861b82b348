package constants

import "time"

const (
	// AuthTokenDuration 签出的访问令牌的有效期，固定值，不支持按请求调整
	AuthTokenDuration = 24 * time.Hour
)
