package domain

import "errors"

// Kind clasifica un error de dominio. Los handlers HTTP mapean el Kind a un
// status code en un único punto; nunca se inspecciona el texto del mensaje.
type Kind int

const (
	KindInterno Kind = iota
	KindValidacion
	KindDuplicado
	KindConflicto
	KindNoEncontrado
	KindAutenticacion
	KindAutorizacion
)

// Error error de dominio con discriminante y mensaje legible.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is permite comparar con otro *Error por Kind (errors.Is).
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Constructores por categoría.
func ErrValidacion(msg string) *Error    { return &Error{Kind: KindValidacion, Message: msg} }
func ErrDuplicado(msg string) *Error     { return &Error{Kind: KindDuplicado, Message: msg} }
func ErrConflicto(msg string) *Error     { return &Error{Kind: KindConflicto, Message: msg} }
func ErrNoEncontrado(msg string) *Error  { return &Error{Kind: KindNoEncontrado, Message: msg} }
func ErrAutenticacion(msg string) *Error { return &Error{Kind: KindAutenticacion, Message: msg} }
func ErrAutorizacion(msg string) *Error  { return &Error{Kind: KindAutorizacion, Message: msg} }

// KindOf devuelve el Kind del error, o KindInterno si no es un error de dominio.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInterno
}
