package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUpstream           = errors.New("el backend de ventas respondió con error")
	ErrSourceUnavailable  = errors.New("fuente de datos no disponible")
	ErrUnsupportedFormat  = errors.New("formato de exportación no soportado")
)
