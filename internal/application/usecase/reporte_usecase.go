package usecase

import (
	"context"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ReporteUseCase reportes agregados de solo lectura. Las ventas anuladas
// quedan fuera de todos los agregados.
type ReporteUseCase struct {
	repo repository.ReporteRepository
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(repo repository.ReporteRepository) *ReporteUseCase {
	return &ReporteUseCase{repo: repo}
}

// ProductosMasVendidos ranking de productos por unidades vendidas.
func (uc *ReporteUseCase) ProductosMasVendidos(ctx context.Context) ([]dto.ProductoVendidoDTO, error) {
	rows, err := uc.repo.ProductosMasVendidos(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoVendidoDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ProductoVendidoDTO{
			ProductoID:  r.ProductoID,
			Codigo:      r.Codigo,
			Descripcion: r.Descripcion,
			Unidades:    r.Unidades,
			Ingresos:    r.Ingresos,
		})
	}
	return items, nil
}

// VentasPorVendedor totales acumulados por vendedor.
func (uc *ReporteUseCase) VentasPorVendedor(ctx context.Context) ([]dto.VentasVendedorDTO, error) {
	rows, err := uc.repo.VentasPorVendedor(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentasVendedorDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.VentasVendedorDTO{
			UsuarioID: r.UsuarioID,
			Nombre:    r.Nombre,
			Ventas:    r.Ventas,
			Total:     r.Total,
		})
	}
	return items, nil
}

// ClientesMasCompras ranking de clientes por monto comprado.
func (uc *ReporteUseCase) ClientesMasCompras(ctx context.Context) ([]dto.ClienteComprasDTO, error) {
	rows, err := uc.repo.ClientesMasCompras(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteComprasDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ClienteComprasDTO{
			ClienteID: r.ClienteID,
			Nombre:    r.Nombre,
			Compras:   r.Compras,
			Total:     r.Total,
		})
	}
	return items, nil
}

// GananciasDiarias totales por día.
func (uc *ReporteUseCase) GananciasDiarias(ctx context.Context) ([]dto.GananciaPeriodoDTO, error) {
	rows, err := uc.repo.GananciasDiarias(ctx)
	if err != nil {
		return nil, err
	}
	return toGananciaDTOs(rows), nil
}

// GananciasMensuales totales por mes.
func (uc *ReporteUseCase) GananciasMensuales(ctx context.Context) ([]dto.GananciaPeriodoDTO, error) {
	rows, err := uc.repo.GananciasMensuales(ctx)
	if err != nil {
		return nil, err
	}
	return toGananciaDTOs(rows), nil
}

func toGananciaDTOs(rows []repository.GananciaPeriodoRow) []dto.GananciaPeriodoDTO {
	items := make([]dto.GananciaPeriodoDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.GananciaPeriodoDTO{
			Periodo: r.Periodo,
			Ventas:  r.Ventas,
			Total:   r.Total,
		})
	}
	return items
}
