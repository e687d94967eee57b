package cotizacion_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-api/internal/application/cotizacion"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

type cotizacionRepoFake struct {
	porID       map[string]*entity.Cotizacion
	detallesPor map[string][]*entity.DetalleCotizacion
	failDetalle bool
}

func newCotizacionRepoFake() *cotizacionRepoFake {
	return &cotizacionRepoFake{
		porID:       map[string]*entity.Cotizacion{},
		detallesPor: map[string][]*entity.DetalleCotizacion{},
	}
}

func (f *cotizacionRepoFake) Create(c *entity.Cotizacion) error {
	cp := *c
	f.porID[c.ID] = &cp
	return nil
}

func (f *cotizacionRepoFake) GetByID(id string) (*entity.Cotizacion, error) {
	c, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *cotizacionRepoFake) Update(c *entity.Cotizacion) error {
	cp := *c
	f.porID[c.ID] = &cp
	return nil
}

func (f *cotizacionRepoFake) List() ([]*entity.Cotizacion, error) {
	var out []*entity.Cotizacion
	for _, c := range f.porID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *cotizacionRepoFake) Delete(id string) error {
	if _, ok := f.porID[id]; !ok {
		return domain.ErrNoEncontrado("cotización no encontrada")
	}
	delete(f.porID, id)
	delete(f.detallesPor, id)
	return nil
}

func (f *cotizacionRepoFake) CreateDetalle(d *entity.DetalleCotizacion) error {
	if f.failDetalle {
		return errors.New("detalle no insertado")
	}
	cp := *d
	f.detallesPor[d.CotizacionID] = append(f.detallesPor[d.CotizacionID], &cp)
	return nil
}

func (f *cotizacionRepoFake) GetDetalles(cotizacionID string) ([]*entity.DetalleCotizacion, error) {
	src := f.detallesPor[cotizacionID]
	out := make([]*entity.DetalleCotizacion, 0, len(src))
	for _, d := range src {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (f *cotizacionRepoFake) Resumen() (*repository.ResumenCotizaciones, error) {
	res := &repository.ResumenCotizaciones{}
	for _, c := range f.porID {
		res.Total++
		switch c.Estado {
		case entity.CotizacionPendiente:
			res.Pendientes++
		case entity.CotizacionAprobada:
			res.Aprobadas++
		case entity.CotizacionConvertida:
			res.Convertidas++
		}
	}
	return res, nil
}

func monto(t *testing.T, s string) dto.MontoOpcional {
	t.Helper()
	var m dto.MontoOpcional
	require.NoError(t, m.UnmarshalJSON([]byte(s)))
	return m
}

func crearCotizacionBase(t *testing.T, uc *cotizacion.UseCase) *dto.CotizacionResponse {
	t.Helper()
	out, err := uc.Create(dto.CrearCotizacionRequest{
		NombreCliente: "Ferretería El Clavo",
		UsuarioID:     "vendedor-1",
		Total:         monto(t, "250"),
		Detalles: []dto.DetalleCotizacionRequest{
			{ProductoID: "prod-1", Cantidad: 2, PrecioUnitario: monto(t, "50")},
			{ProductoID: "prod-2", Cantidad: 3, PrecioUnitario: monto(t, "50"), Subtotal: monto(t, "150")},
		},
	})
	require.NoError(t, err)
	return out
}

func TestCotizacionCreate_ConLineas(t *testing.T) {
	repo := newCotizacionRepoFake()
	uc := cotizacion.NewUseCase(repo)

	out := crearCotizacionBase(t, uc)
	assert.Equal(t, entity.CotizacionPendiente, out.Estado)
	require.Len(t, out.Detalles, 2)
	assert.Equal(t, "100", out.Detalles[0].Subtotal.String(), "sin subtotal explícito se calcula cantidad x precio")
	assert.Equal(t, "150", out.Detalles[1].Subtotal.String(), "el subtotal explícito se respeta")
	assert.Len(t, repo.detallesPor[out.ID], 2)
}

func TestCotizacionCreate_SinClienteNiNombre(t *testing.T) {
	uc := cotizacion.NewUseCase(newCotizacionRepoFake())
	_, err := uc.Create(dto.CrearCotizacionRequest{UsuarioID: "vendedor-1"})
	assert.Equal(t, domain.KindValidacion, domain.KindOf(err))
}

func TestCotizacionCreate_LineaFallidaAborta(t *testing.T) {
	repo := newCotizacionRepoFake()
	repo.failDetalle = true
	uc := cotizacion.NewUseCase(repo)

	_, err := uc.Create(dto.CrearCotizacionRequest{
		NombreCliente: "X",
		UsuarioID:     "vendedor-1",
		Detalles:      []dto.DetalleCotizacionRequest{{ProductoID: "p", Cantidad: 1}},
	})
	assert.Error(t, err)
}

func TestCotizacionConvertirVenta_CambiaEstadoYDevuelvePayload(t *testing.T) {
	repo := newCotizacionRepoFake()
	uc := cotizacion.NewUseCase(repo)
	creada := crearCotizacionBase(t, uc)

	payload, err := uc.ConvertirVenta(creada.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.CotizacionConvertida, repo.porID[creada.ID].Estado)
	assert.Equal(t, "vendedor-1", payload.UsuarioID)
	assert.Equal(t, "250", payload.Total.String())
	assert.True(t, payload.EsAdelanto)
	assert.True(t, payload.Adelanto.Equal(decimal.Zero))
	require.Len(t, payload.Detalles, 2)
	require.NotNil(t, payload.Detalles[0].PrecioUnitario.Valor)
	assert.Equal(t, "50", payload.Detalles[0].PrecioUnitario.Valor.String())
}

func TestCotizacionConvertirVenta_YaConvertida_Conflicto(t *testing.T) {
	uc := cotizacion.NewUseCase(newCotizacionRepoFake())
	creada := crearCotizacionBase(t, uc)

	_, err := uc.ConvertirVenta(creada.ID)
	require.NoError(t, err)

	_, err = uc.ConvertirVenta(creada.ID)
	assert.Equal(t, domain.KindConflicto, domain.KindOf(err))
}

func TestCotizacionPrepararVenta_NoCambiaEstado(t *testing.T) {
	repo := newCotizacionRepoFake()
	uc := cotizacion.NewUseCase(repo)
	creada := crearCotizacionBase(t, uc)

	payload, err := uc.PrepararVenta(creada.ID)
	require.NoError(t, err)
	assert.Len(t, payload.Detalles, 2)
	assert.Equal(t, entity.CotizacionPendiente, repo.porID[creada.ID].Estado, "preparar no convierte")
}

func TestCotizacionUpdate_EstadoInvalido(t *testing.T) {
	uc := cotizacion.NewUseCase(newCotizacionRepoFake())
	creada := crearCotizacionBase(t, uc)

	estado := "vencida"
	_, err := uc.Update(creada.ID, dto.ActualizarCotizacionRequest{Estado: &estado})
	assert.Equal(t, domain.KindValidacion, domain.KindOf(err))
}

func TestCotizacionAgregarDetalle_CantidadNoPositiva(t *testing.T) {
	uc := cotizacion.NewUseCase(newCotizacionRepoFake())
	creada := crearCotizacionBase(t, uc)

	_, err := uc.AgregarDetalle(creada.ID, dto.DetalleCotizacionRequest{ProductoID: "p", Cantidad: 0})
	assert.Equal(t, domain.KindValidacion, domain.KindOf(err))
}

func TestCotizacionDelete_BorraLineas(t *testing.T) {
	repo := newCotizacionRepoFake()
	uc := cotizacion.NewUseCase(repo)
	creada := crearCotizacionBase(t, uc)

	require.NoError(t, uc.Delete(creada.ID))
	assert.Empty(t, repo.porID)
	assert.Empty(t, repo.detallesPor)

	_, err := uc.GetByID(creada.ID)
	assert.Equal(t, domain.KindNoEncontrado, domain.KindOf(err))
}

func TestCotizacionResumen(t *testing.T) {
	repo := newCotizacionRepoFake()
	uc := cotizacion.NewUseCase(repo)

	crearCotizacionBase(t, uc)
	segunda := crearCotizacionBase(t, uc)
	aprobada := entity.CotizacionAprobada
	_, err := uc.Update(segunda.ID, dto.ActualizarCotizacionRequest{Estado: &aprobada})
	require.NoError(t, err)
	tercera := crearCotizacionBase(t, uc)
	_, err = uc.ConvertirVenta(tercera.ID)
	require.NoError(t, err)

	res, err := uc.Resumen()
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Pendientes)
	assert.Equal(t, 1, res.Aprobadas)
	assert.Equal(t, 1, res.Convertidas)
}
