package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

type clienteRepoFake struct {
	porID        map[string]*entity.Cliente
	porDocumento map[int64]*entity.Cliente
}

func newClienteRepoFake() *clienteRepoFake {
	return &clienteRepoFake{
		porID:        map[string]*entity.Cliente{},
		porDocumento: map[int64]*entity.Cliente{},
	}
}

func (f *clienteRepoFake) Create(c *entity.Cliente) error {
	if _, ok := f.porDocumento[c.Documento]; ok {
		return domain.ErrDuplicado("el documento del cliente ya está registrado")
	}
	cp := *c
	f.porID[c.ID] = &cp
	f.porDocumento[c.Documento] = &cp
	return nil
}

func (f *clienteRepoFake) GetByID(id string) (*entity.Cliente, error) {
	c, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *clienteRepoFake) GetByDocumento(doc int64) (*entity.Cliente, error) {
	c, ok := f.porDocumento[doc]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *clienteRepoFake) Update(c *entity.Cliente) error {
	cp := *c
	f.porID[c.ID] = &cp
	f.porDocumento[c.Documento] = &cp
	return nil
}

func (f *clienteRepoFake) List() ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range f.porID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *clienteRepoFake) Desactivar(id string) error {
	c, ok := f.porID[id]
	if !ok {
		return domain.ErrNoEncontrado("cliente no encontrado")
	}
	c.Activo = false
	return nil
}

func TestClienteCreate_DocumentoComoCadena(t *testing.T) {
	uc := usecase.NewClienteUseCase(newClienteRepoFake())
	out, err := uc.Create(dto.CrearClienteRequest{
		Nombre:    "María",
		Documento: dto.Texto("45678901"),
		Telefono:  "555-0101",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(45678901), out.Documento)
	assert.True(t, out.Activo)
}

func TestClienteCreate_DocumentoNoNumerico_Validacion(t *testing.T) {
	uc := usecase.NewClienteUseCase(newClienteRepoFake())
	_, err := uc.Create(dto.CrearClienteRequest{Nombre: "X", Documento: dto.Texto("ABC123")})
	assert.Equal(t, domain.KindValidacion, domain.KindOf(err))
}

func TestClienteCreate_DocumentoVacio_Validacion(t *testing.T) {
	uc := usecase.NewClienteUseCase(newClienteRepoFake())
	_, err := uc.Create(dto.CrearClienteRequest{Nombre: "X", Documento: dto.Texto("")})
	assert.Equal(t, domain.KindValidacion, domain.KindOf(err))
}

func TestClienteCreate_DocumentoDuplicado(t *testing.T) {
	uc := usecase.NewClienteUseCase(newClienteRepoFake())
	_, err := uc.Create(dto.CrearClienteRequest{Nombre: "Uno", Documento: dto.Texto("111")})
	require.NoError(t, err)

	_, err = uc.Create(dto.CrearClienteRequest{Nombre: "Dos", Documento: dto.Texto("111")})
	assert.Equal(t, domain.KindDuplicado, domain.KindOf(err))
}

func TestClienteDesactivar_BajaLogica(t *testing.T) {
	uc := usecase.NewClienteUseCase(newClienteRepoFake())
	creado, err := uc.Create(dto.CrearClienteRequest{Nombre: "Ana", Documento: dto.Texto("222")})
	require.NoError(t, err)

	require.NoError(t, uc.Desactivar(creado.ID))
	out, err := uc.GetByID(creado.ID)
	require.NoError(t, err)
	assert.False(t, out.Activo)
	assert.Equal(t, "Ana", out.Nombre)
}

func TestClienteUpdate_ParcialConCoercion(t *testing.T) {
	uc := usecase.NewClienteUseCase(newClienteRepoFake())
	creado, err := uc.Create(dto.CrearClienteRequest{Nombre: "Luis", Documento: dto.Texto("333")})
	require.NoError(t, err)

	nuevoDoc := dto.Texto("444")
	out, err := uc.Update(creado.ID, dto.ActualizarClienteRequest{Documento: &nuevoDoc})
	require.NoError(t, err)
	assert.Equal(t, int64(444), out.Documento)
	assert.Equal(t, "Luis", out.Nombre)
}
