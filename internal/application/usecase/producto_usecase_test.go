package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// productoRepoFake fake en memoria indexado por ID y por código.
type productoRepoFake struct {
	porID     map[string]*entity.Producto
	porCodigo map[string]*entity.Producto
}

func newProductoRepoFake() *productoRepoFake {
	return &productoRepoFake{
		porID:     map[string]*entity.Producto{},
		porCodigo: map[string]*entity.Producto{},
	}
}

func (f *productoRepoFake) Create(p *entity.Producto) error {
	if _, ok := f.porCodigo[p.Codigo]; ok {
		return domain.ErrDuplicado("el código del producto ya existe")
	}
	cp := *p
	f.porID[p.ID] = &cp
	f.porCodigo[p.Codigo] = &cp
	return nil
}

func (f *productoRepoFake) GetByID(id string) (*entity.Producto, error) {
	p, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *productoRepoFake) GetByCodigo(codigo string) (*entity.Producto, error) {
	p, ok := f.porCodigo[codigo]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *productoRepoFake) Update(p *entity.Producto) error {
	cp := *p
	f.porID[p.ID] = &cp
	f.porCodigo[p.Codigo] = &cp
	return nil
}

func (f *productoRepoFake) List() ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.porID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *productoRepoFake) Search(termino string, limit int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.porID {
		if strings.Contains(strings.ToLower(p.Descripcion), strings.ToLower(termino)) ||
			strings.Contains(strings.ToLower(p.Codigo), strings.ToLower(termino)) {
			cp := *p
			out = append(out, &cp)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *productoRepoFake) Desactivar(id string) error {
	p, ok := f.porID[id]
	if !ok {
		return domain.ErrNoEncontrado("producto no encontrado")
	}
	p.Activo = false
	return nil
}

func (f *productoRepoFake) AjustarStock(id string, delta int) error {
	p, ok := f.porID[id]
	if !ok {
		return domain.ErrNoEncontrado("producto no encontrado")
	}
	if p.Stock+delta < 0 {
		return domain.ErrConflicto("stock negativo")
	}
	p.Stock += delta
	return nil
}

func montoP(s string) dto.MontoOpcional {
	var m dto.MontoOpcional
	if err := m.UnmarshalJSON([]byte(s)); err != nil {
		panic(err)
	}
	return m
}

func TestProductoCreate_CamposYPreciosNulos(t *testing.T) {
	uc := usecase.NewProductoUseCase(newProductoRepoFake())
	stock := 5
	out, err := uc.Create(dto.CrearProductoRequest{
		Codigo:        "ABC-1",
		Descripcion:   "Tornillo 3mm",
		Stock:         &stock,
		PrecioGeneral: montoP("12.50"),
		PrecioCompra:  montoP(`""`), // vacío → NULL
	})
	require.NoError(t, err)
	assert.True(t, out.Activo)
	assert.Equal(t, 5, out.Stock)
	require.NotNil(t, out.PrecioGeneral)
	assert.Equal(t, "12.5", out.PrecioGeneral.String())
	assert.Nil(t, out.PrecioCompra)
	assert.NotEmpty(t, out.ID)
}

func TestProductoCreate_CodigoVacio_Validacion(t *testing.T) {
	uc := usecase.NewProductoUseCase(newProductoRepoFake())
	_, err := uc.Create(dto.CrearProductoRequest{Codigo: "  ", Descripcion: "x"})
	assert.Equal(t, domain.KindValidacion, domain.KindOf(err))
}

func TestProductoCreate_DescripcionVacia_Validacion(t *testing.T) {
	repo := newProductoRepoFake()
	uc := usecase.NewProductoUseCase(repo)
	_, err := uc.Create(dto.CrearProductoRequest{Codigo: "P-1"})
	assert.Equal(t, domain.KindValidacion, domain.KindOf(err))
	assert.Empty(t, repo.porID, "ninguna fila persistida")
}

func TestProductoCreate_StockNegativo_Validacion(t *testing.T) {
	uc := usecase.NewProductoUseCase(newProductoRepoFake())
	stock := -1
	_, err := uc.Create(dto.CrearProductoRequest{Codigo: "A", Descripcion: "x", Stock: &stock})
	assert.Equal(t, domain.KindValidacion, domain.KindOf(err))
}

func TestProductoCreate_CodigoDuplicado(t *testing.T) {
	repo := newProductoRepoFake()
	uc := usecase.NewProductoUseCase(repo)
	_, err := uc.Create(dto.CrearProductoRequest{Codigo: "DUP", Descripcion: "uno"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CrearProductoRequest{Codigo: "DUP", Descripcion: "dos"})
	assert.Equal(t, domain.KindDuplicado, domain.KindOf(err))
	assert.Len(t, repo.porID, 1, "el segundo producto no se persistió")
}

func TestProductoUpdate_NoTocaStock(t *testing.T) {
	repo := newProductoRepoFake()
	uc := usecase.NewProductoUseCase(repo)
	stock := 7
	creado, err := uc.Create(dto.CrearProductoRequest{Codigo: "S-1", Descripcion: "caja", Stock: &stock})
	require.NoError(t, err)

	desc := "caja grande"
	out, err := uc.Update(creado.ID, dto.ActualizarProductoRequest{Descripcion: &desc})
	require.NoError(t, err)
	assert.Equal(t, "caja grande", out.Descripcion)
	assert.Equal(t, 7, out.Stock, "el stock solo cambia vía movimientos")
}

func TestProductoDesactivar_SoloCambiaActivo(t *testing.T) {
	repo := newProductoRepoFake()
	uc := usecase.NewProductoUseCase(repo)
	stock := 3
	creado, err := uc.Create(dto.CrearProductoRequest{
		Codigo: "D-1", Descripcion: "martillo", Stock: &stock, PrecioGeneral: montoP("80"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Desactivar(creado.ID))

	out, err := uc.GetByID(creado.ID)
	require.NoError(t, err)
	assert.False(t, out.Activo)
	assert.Equal(t, "martillo", out.Descripcion)
	assert.Equal(t, 3, out.Stock)
	require.NotNil(t, out.PrecioGeneral)
	assert.Equal(t, "80", out.PrecioGeneral.String())
}

func TestProductoSearch_TerminoVacioListaTodo(t *testing.T) {
	repo := newProductoRepoFake()
	uc := usecase.NewProductoUseCase(repo)
	for _, codigo := range []string{"A", "B", "C"} {
		_, err := uc.Create(dto.CrearProductoRequest{Codigo: codigo, Descripcion: "producto " + codigo})
		require.NoError(t, err)
	}

	out, err := uc.Search("   ")
	require.NoError(t, err)
	assert.Len(t, out, 3)

	filtrado, err := uc.Search("producto B")
	require.NoError(t, err)
	assert.Len(t, filtrado, 1)
}

func TestProductoGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewProductoUseCase(newProductoRepoFake())
	_, err := uc.GetByID("nada")
	assert.Equal(t, domain.KindNoEncontrado, domain.KindOf(err))
}
