package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inspecciones-api/internal/application/dto"
	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
	"github.com/jhoicas/Inspecciones-api/pkg/jwt"
	"github.com/jhoicas/Inspecciones-api/pkg/validate"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y resolución de permisos del llamador.
type AuthUseCase struct {
	userRepo       repository.UserRepository
	permissionRepo repository.PermissionRepository
	jwtCfg         JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, permissionRepo repository.PermissionRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, permissionRepo: permissionRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.EmployeeNumber, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// CallerPermissions resuelve los permisos por módulo del empleado autenticado.
// Un empleado sin filas de permisos obtiene un conjunto vacío (nunca nil).
func (uc *AuthUseCase) CallerPermissions(ctx context.Context, employeeNumber int64) (*entity.UserPermissionsSet, error) {
	perms, err := uc.permissionRepo.GetPermissions(ctx, employeeNumber)
	if err != nil {
		return nil, err
	}
	if perms == nil {
		perms = &entity.UserPermissionsSet{EmployeeNumber: employeeNumber, Modules: map[string]entity.ModulePermission{}}
	}
	return perms, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		EmployeeNumber: u.EmployeeNumber,
		Email:          u.Email,
		Name:           u.DisplayName(),
		Role:           u.Role,
		Status:         u.Status,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
