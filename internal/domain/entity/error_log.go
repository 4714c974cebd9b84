package entity

import "time"

// Severidad usada por los servicios al registrar fallos inesperados.
const ErrorSeverityService = 50

// ErrorLogEntry fallo inesperado persistido para soporte (tabla error_log).
type ErrorLogEntry struct {
	ID           int64
	Severity     int
	Source       string
	Message      string
	InnerMessage string
	CreatedAt    time.Time
}
