package auth

import (
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/config"
	"github.com/tu-usuario/ventas-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// UseCase autenticación por login y contraseña. Emite el token con id,
// nombre y rol embebidos para que el middleware no consulte la DB.
type UseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(usuarios repository.UsuarioRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login verifica credenciales contra el hash bcrypt y devuelve el token.
// El mensaje de error no distingue usuario inexistente de contraseña mala.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Contrasena == "" {
		return nil, domain.ErrValidacion("usuario y contraseña son obligatorios")
	}
	usuario, err := uc.usuarios.GetByLogin(in.Usuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.Activo {
		return nil, domain.ErrAutenticacion("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ContrasenaHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrAutenticacion("credenciales inválidas")
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nombre, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			ID:        usuario.ID,
			Nombre:    usuario.Nombre,
			Usuario:   usuario.Usuario,
			Rol:       usuario.Rol,
			Activo:    usuario.Activo,
			CreatedAt: usuario.CreatedAt,
			UpdatedAt: usuario.UpdatedAt,
		},
	}, nil
}
