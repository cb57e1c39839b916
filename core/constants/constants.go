package constants

import "time"

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
)

// Token settings
const (
	TokenExpiry = 7 * 24 * time.Hour
)

// Asynq task types
const (
	TaskNotificationDeliver = "notification:deliver"
)

// Event title constraints
const (
	EventTitleMinLength = 3
	EventTitleMaxLength = 100
)
