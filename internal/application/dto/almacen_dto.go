package dto

import "time"

// CrearMovimientoRequest entrada para registrar un movimiento de almacén.
type CrearMovimientoRequest struct {
	ProductoID string `json:"producto_id"`
	Tipo       string `json:"tipo"` // ingreso | egreso
	Cantidad   int    `json:"cantidad"`
}

// MovimientoResponse salida de un movimiento con datos del producto.
type MovimientoResponse struct {
	ID                  string    `json:"id"`
	ProductoID          string    `json:"producto_id"`
	ProductoCodigo      string    `json:"producto_codigo"`
	ProductoDescripcion string    `json:"producto_descripcion"`
	Tipo                string    `json:"tipo"`
	Cantidad            int       `json:"cantidad"`
	Fecha               time.Time `json:"fecha"`
}
