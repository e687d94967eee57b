package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

type usuarioRepoFake struct {
	porID    map[string]*entity.Usuario
	porLogin map[string]*entity.Usuario
}

func newUsuarioRepoFake() *usuarioRepoFake {
	return &usuarioRepoFake{
		porID:    map[string]*entity.Usuario{},
		porLogin: map[string]*entity.Usuario{},
	}
}

func (f *usuarioRepoFake) Create(u *entity.Usuario) error {
	if _, ok := f.porLogin[u.Usuario]; ok {
		return domain.ErrDuplicado("el nombre de usuario ya existe")
	}
	cp := *u
	f.porID[u.ID] = &cp
	f.porLogin[u.Usuario] = &cp
	return nil
}

func (f *usuarioRepoFake) GetByID(id string) (*entity.Usuario, error) {
	u, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *usuarioRepoFake) GetByLogin(login string) (*entity.Usuario, error) {
	u, ok := f.porLogin[login]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *usuarioRepoFake) Update(u *entity.Usuario) error {
	cp := *u
	f.porID[u.ID] = &cp
	f.porLogin[u.Usuario] = &cp
	return nil
}

func (f *usuarioRepoFake) List() ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.porID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *usuarioRepoFake) Delete(id string) error {
	u, ok := f.porID[id]
	if !ok {
		return domain.ErrNoEncontrado("usuario no encontrado")
	}
	delete(f.porLogin, u.Usuario)
	delete(f.porID, id)
	return nil
}

func TestUsuarioCreate_HasheaLaContrasena(t *testing.T) {
	repo := newUsuarioRepoFake()
	uc := usecase.NewUsuarioUseCase(repo)

	out, err := uc.Create(dto.CrearUsuarioRequest{
		Nombre: "Jefa", Usuario: "jefa", Contrasena: "secreta", Rol: entity.RolAdmin,
	})
	require.NoError(t, err)

	guardado := repo.porLogin["jefa"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreta", guardado.ContrasenaHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.ContrasenaHash), []byte("secreta")))
	assert.Equal(t, entity.RolAdmin, out.Rol)
}

func TestUsuarioCreate_RolInvalido_NoPersiste(t *testing.T) {
	repo := newUsuarioRepoFake()
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Create(dto.CrearUsuarioRequest{
		Nombre: "X", Usuario: "x", Contrasena: "p", Rol: "gerente",
	})
	assert.Equal(t, domain.KindValidacion, domain.KindOf(err))
	assert.Empty(t, repo.porID, "ninguna fila persistida")
}

func TestUsuarioCreate_NombreVacio_NoPersiste(t *testing.T) {
	repo := newUsuarioRepoFake()
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Create(dto.CrearUsuarioRequest{
		Usuario: "pepe", Contrasena: "x", Rol: entity.RolVendedor,
	})
	assert.Equal(t, domain.KindValidacion, domain.KindOf(err))
	assert.Empty(t, repo.porID, "ninguna fila persistida")
}

func TestUsuarioCreate_LoginDuplicado(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newUsuarioRepoFake())
	_, err := uc.Create(dto.CrearUsuarioRequest{Nombre: "A", Usuario: "dup", Contrasena: "p", Rol: entity.RolVendedor})
	require.NoError(t, err)

	_, err = uc.Create(dto.CrearUsuarioRequest{Nombre: "B", Usuario: "dup", Contrasena: "p", Rol: entity.RolVendedor})
	assert.Equal(t, domain.KindDuplicado, domain.KindOf(err))
}

func TestUsuarioUpdate_RehashSoloSiVieneContrasena(t *testing.T) {
	repo := newUsuarioRepoFake()
	uc := usecase.NewUsuarioUseCase(repo)
	creado, err := uc.Create(dto.CrearUsuarioRequest{Nombre: "Pepe", Usuario: "pepe", Contrasena: "vieja", Rol: entity.RolVendedor})
	require.NoError(t, err)
	hashOriginal := repo.porID[creado.ID].ContrasenaHash

	nombre := "Pepe Luis"
	_, err = uc.Update(creado.ID, dto.ActualizarUsuarioRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, hashOriginal, repo.porID[creado.ID].ContrasenaHash, "sin contraseña nueva el hash no cambia")

	nueva := "nueva"
	_, err = uc.Update(creado.ID, dto.ActualizarUsuarioRequest{Contrasena: &nueva})
	require.NoError(t, err)
	assert.NotEqual(t, hashOriginal, repo.porID[creado.ID].ContrasenaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.porID[creado.ID].ContrasenaHash), []byte("nueva")))
}

func TestUsuarioUpdate_LoginDeOtroUsuario_Duplicado(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newUsuarioRepoFake())
	_, err := uc.Create(dto.CrearUsuarioRequest{Nombre: "A", Usuario: "ana", Contrasena: "p", Rol: entity.RolVendedor})
	require.NoError(t, err)
	b, err := uc.Create(dto.CrearUsuarioRequest{Nombre: "B", Usuario: "beto", Contrasena: "p", Rol: entity.RolVendedor})
	require.NoError(t, err)

	login := "ana"
	_, err = uc.Update(b.ID, dto.ActualizarUsuarioRequest{Usuario: &login})
	assert.Equal(t, domain.KindDuplicado, domain.KindOf(err))
}

func TestUsuarioUpdate_RolInvalido(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newUsuarioRepoFake())
	creado, err := uc.Create(dto.CrearUsuarioRequest{Nombre: "C", Usuario: "caro", Contrasena: "p", Rol: entity.RolAdmin})
	require.NoError(t, err)

	rol := "superusuario"
	_, err = uc.Update(creado.ID, dto.ActualizarUsuarioRequest{Rol: &rol})
	assert.Equal(t, domain.KindValidacion, domain.KindOf(err))
}

func TestUsuarioDelete_BorradoFisico(t *testing.T) {
	repo := newUsuarioRepoFake()
	uc := usecase.NewUsuarioUseCase(repo)
	creado, err := uc.Create(dto.CrearUsuarioRequest{Nombre: "D", Usuario: "dani", Contrasena: "p", Rol: entity.RolVendedor})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(creado.ID))
	assert.Empty(t, repo.porID, "la fila desaparece, no es baja lógica")
}
