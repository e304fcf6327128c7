package service

import (
	"context"
	"fmt"
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/middleware"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 8 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	repo      repository.UsuarioRepository
	bitacora  *BitacoraService
	jwtSecret string
}

func NewAuthService(repo repository.UsuarioRepository, bitacora *BitacoraService, jwtSecret string) *AuthService {
	return &AuthService{repo: repo, bitacora: bitacora, jwtSecret: jwtSecret}
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, Validacion("credenciales incorrectas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, Validacion("credenciales incorrectas")
	}

	access, err := s.firmarToken(u, accessTokenTTL, "access")
	if err != nil {
		return nil, err
	}
	refresh, err := s.firmarToken(u, refreshTokenTTL, "refresh")
	if err != nil {
		return nil, err
	}

	s.bitacora.Registrar(ctx, u.ID, "LOGIN", fmt.Sprintf("Inicio de sesión de %s", u.Email))

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(accessTokenTTL.Seconds()),
		User:         aUsuarioResponse(u),
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh access token. The user
// is re-read so a deactivated account can't renew.
func (s *AuthService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid || claims.Subject != "refresh" {
		return nil, Validacion("refresh token inválido o expirado")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, Validacion("refresh token inválido o expirado")
	}
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil || !u.Activo {
		return nil, Validacion("refresh token inválido o expirado")
	}

	access, err := s.firmarToken(u, accessTokenTTL, "access")
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: req.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(accessTokenTTL.Seconds()),
		User:         aUsuarioResponse(u),
	}, nil
}

func (s *AuthService) firmarToken(u *model.Usuario, ttl time.Duration, tipo string) (string, error) {
	claims := middleware.Claims{
		UserID: u.ID.String(),
		Email:  u.Email,
		Rol:    u.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   tipo,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
}

// ─── Gestión de usuarios (solo administradores) ──────────────────────────────

func (s *AuthService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest, adminID uuid.UUID) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, Validacion("ya existe un usuario con el correo '%s'", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rol := req.Rol
	if rol == "" {
		rol = "vendedor"
	}

	u := &model.Usuario{
		Nombre:       req.Nombre,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.bitacora.Registrar(ctx, adminID, "CREAR_USUARIO",
		fmt.Sprintf("Usuario '%s' con rol %s", u.Email, u.Rol))

	resp := aUsuarioResponse(u)
	return &resp, nil
}

func (s *AuthService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest, adminID uuid.UUID) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Nombre = req.Nombre
	u.Email = req.Email
	if req.Rol != "" {
		u.Rol = req.Rol
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.bitacora.Registrar(ctx, adminID, "EDITAR_USUARIO",
		fmt.Sprintf("Usuario '%s'", u.Email))

	resp := aUsuarioResponse(u)
	return &resp, nil
}

// EliminarUsuario deactivates an account. An administrator can't delete
// themselves.
func (s *AuthService) EliminarUsuario(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	if id == adminID {
		return Validacion("no puedes eliminar tu propia cuenta")
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.bitacora.Registrar(ctx, adminID, "ELIMINAR_USUARIO",
		fmt.Sprintf("Usuario '%s'", u.Email))
	return nil
}

func (s *AuthService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, aUsuarioResponse(&usuarios[i]))
	}
	return out, nil
}

func aUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:     u.ID.String(),
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    u.Rol,
		Activo: u.Activo,
	}
}
