package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/gestor-ventas-api/internal/application/dto"
	"github.com/jhoicas/gestor-ventas-api/internal/application/ports"
	"github.com/jhoicas/gestor-ventas-api/internal/domain"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/repository"
	"github.com/jhoicas/gestor-ventas-api/pkg/jwt"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// refreshRotationWindow si al refresh token le queda menos que esto, se emite uno nuevo.
const refreshRotationWindow = 20 * time.Minute

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret            string
	ExpMinutes        int
	RefreshSecret     string
	RefreshExpMinutes int
	ResetSecret       string
	ResetExpMinutes   int
	Issuer            string
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh y recuperación de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   ports.MailSender
	jwtCfg   JWTConfig
	resetURL string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, mailer ports.MailSender, jwtCfg JWTConfig, resetURL string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, jwtCfg: jwtCfg, resetURL: resetURL}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y emite access + refresh token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	return uc.tokenPair(user)
}

// Logout no invalida tokens (son stateless); solo confirma el cierre para el cliente.
func (uc *AuthUseCase) Logout() *dto.MessageResponse {
	return &dto.MessageResponse{Message: "Sesión cerrada correctamente"}
}

// Refresh emite un nuevo access token a partir de un refresh token válido.
// Si al refresh token le quedan menos de 20 minutos también se rota.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := jwt.ParseOfType(uc.jwtCfg.RefreshSecret, refreshToken, jwt.TypeRefresh)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil || user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if claims.ExpiresWithin(refreshRotationWindow) {
		return uc.tokenPair(user)
	}
	access, err := jwt.Generate(uc.jwtCfg.Secret, subjectOf(user), jwt.TypeAccess, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: access}, nil
}

// ForgotPassword envía un enlace de restablecimiento. Si el email no existe no hace nada
// para no revelar qué cuentas están registradas.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	token, err := jwt.Generate(uc.jwtCfg.ResetSecret, subjectOf(user), jwt.TypeReset, uc.jwtCfg.Issuer, uc.jwtCfg.ResetExpMinutes)
	if err != nil {
		return err
	}
	link := uc.resetURL + "?token=" + url.QueryEscape(token)
	msg := ports.MailMessage{
		To:      user.Email,
		Subject: "Recuperación de contraseña",
		HTML:    fmt.Sprintf(`<p>Haz clic <a href="%s">aquí</a> para restablecer tu contraseña.</p>`, link),
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("no se pudo enviar el correo de recuperación")
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}

// ResetPassword valida el token de restablecimiento y guarda la nueva contraseña.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if in.Password == "" {
		return domain.ErrInvalidInput
	}
	claims, err := jwt.ParseOfType(uc.jwtCfg.ResetSecret, in.Token, jwt.TypeReset)
	if err != nil {
		return domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return err
	}
	return nil
}

func (uc *AuthUseCase) tokenPair(user *entity.User) (*dto.TokenResponse, error) {
	sub := subjectOf(user)
	access, err := jwt.Generate(uc.jwtCfg.Secret, sub, jwt.TypeAccess, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.jwtCfg.RefreshSecret, sub, jwt.TypeRefresh, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func subjectOf(u *entity.User) jwt.Subject {
	return jwt.Subject{UserID: u.ID, Email: u.Email, Role: u.Role}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
		City:      u.City,
		Province:  u.Province,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
