package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidAmount      = errors.New("cantidad inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrSpotNotFound       = errors.New("posición de stock no encontrada")
	ErrStorage            = errors.New("error de almacenamiento")
)

// StorageError envuelve una falla de la capa de persistencia (I/O, constraint,
// transacción abortada). errors.Is(err, ErrStorage) la clasifica.
type StorageError struct {
	Op  string // operación que falló, ej. "upsert stock_entry"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("almacenamiento: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is clasifica cualquier StorageError bajo el centinela ErrStorage.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// NewStorageError construye el error envuelto para un fallo del gateway.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
