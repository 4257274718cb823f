package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrUnauthenticated: la operación requiere sesión activa y no hay ninguna.
	ErrUnauthenticated = errors.New("no hay sesión activa")
	// ErrInvalidCredentials: el servicio de identidad rechaza las credenciales.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	// ErrEmailAlreadyExists: ya existe una cuenta con ese email.
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	// ErrNotFound: el documento solicitado no existe.
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrStore: una operación sobre el almacén de documentos falló.
	ErrStore = errors.New("operación de almacenamiento fallida")
	// ErrRequiresRecentLogin: operación destructiva de cuenta fuera de la
	// ventana de re-autenticación; el caller debe pedir credenciales de nuevo.
	ErrRequiresRecentLogin = errors.New("se requiere inicio de sesión reciente")
	// ErrIndexUnavailable: el almacén no tiene el índice compuesto para la
	// consulta filtrada; dispara el fallback interno, nunca llega al caller.
	ErrIndexUnavailable = errors.New("índice compuesto no disponible")
	// ErrInvalidInput: entrada inválida (contenido vacío, campos faltantes).
	ErrInvalidInput = errors.New("entrada inválida")
)
