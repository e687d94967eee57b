package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioUseCase administración de usuarios. Solo accesible para admin.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create crea un usuario con la contraseña hasheada con bcrypt.
func (uc *UsuarioUseCase) Create(in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrValidacion("el nombre es obligatorio")
	}
	login := strings.TrimSpace(in.Usuario)
	if login == "" {
		return nil, domain.ErrValidacion("el nombre de usuario es obligatorio")
	}
	if in.Contrasena == "" {
		return nil, domain.ErrValidacion("la contraseña es obligatoria")
	}
	if !entity.RolValido(in.Rol) {
		return nil, domain.ErrValidacion("rol inválido: debe ser admin o vendedor")
	}
	existente, err := uc.repo.GetByLogin(login)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado("el nombre de usuario ya existe")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Usuario:        login,
		ContrasenaHash: string(hash),
		Rol:            in.Rol,
		Activo:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNoEncontrado("usuario no encontrado")
	}
	return toUsuarioResponse(usuario), nil
}

// Update actualiza un usuario. La contraseña solo se re-hashea si viene.
func (uc *UsuarioUseCase) Update(id string, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNoEncontrado("usuario no encontrado")
	}
	if in.Nombre != nil {
		usuario.Nombre = *in.Nombre
	}
	if in.Usuario != nil {
		login := strings.TrimSpace(*in.Usuario)
		if login == "" {
			return nil, domain.ErrValidacion("el nombre de usuario es obligatorio")
		}
		otro, err := uc.repo.GetByLogin(login)
		if err != nil {
			return nil, err
		}
		if otro != nil && otro.ID != usuario.ID {
			return nil, domain.ErrDuplicado("el nombre de usuario ya existe")
		}
		usuario.Usuario = login
	}
	if in.Contrasena != nil && *in.Contrasena != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Contrasena), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.ContrasenaHash = string(hash)
	}
	if in.Rol != nil {
		if !entity.RolValido(*in.Rol) {
			return nil, domain.ErrValidacion("rol inválido: debe ser admin o vendedor")
		}
		usuario.Rol = *in.Rol
	}
	usuario.UpdatedAt = time.Now()
	if err := uc.repo.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// List lista todos los usuarios.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsuarioResponse(u))
	}
	return items, nil
}

// Delete elimina un usuario. Borrado físico, a diferencia del resto de entidades.
func (uc *UsuarioUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Usuario:   u.Usuario,
		Rol:       u.Rol,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
