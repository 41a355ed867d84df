package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/access"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

// AdminUserID identificador de sesión del usuario administrativo fijo.
const AdminUserID = "ADMIN"

// AdminCredential credencial administrativa configurada fuera de banda.
type AdminCredential struct {
	Username string
	Password string
}

// AuthUseCase login por comparación directa de credenciales y ciclo de vida de la sesión.
type AuthUseCase struct {
	employees repository.EmployeeRepository
	admin     AdminCredential
	holder    *SessionHolder
	log       *logger.Logger
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employees repository.EmployeeRepository, admin AdminCredential, holder *SessionHolder, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{employees: employees, admin: admin, holder: holder, log: log, now: time.Now}
}

// Login verifica credenciales y abre la sesión.
//   - ErrInvalidInput: usuario o clave vacíos.
//   - ErrSessionActive: ya hay una sesión; hay que cerrar sesión antes.
//   - ErrInvalidCredentials: no coincide ni el admin ni un empleado.
//   - ErrUnrecognizedRole: credenciales válidas pero rol sin perfil; no se crea sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*access.Session, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, active := uc.holder.Current(); active {
		return nil, domain.ErrSessionActive
	}

	var (
		userID, name string
		role         access.Role
	)
	if uc.isAdmin(username, password) {
		userID, name, role = AdminUserID, "System Administrator", access.RoleAdmin
	} else {
		emp, err := uc.employees.FindByCredentials(ctx, username, password)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			uc.log.Warn().Str("username", username).Msg("login rechazado: credenciales inválidas")
			return nil, domain.ErrInvalidCredentials
		}
		role, err = access.ParseRole(emp.Role)
		if err != nil {
			uc.log.Error().Str("emp_id", emp.EmpID).Str("role", emp.Role).Msg("login rechazado: rol no reconocido")
			return nil, err
		}
		userID, name = emp.EmpID, emp.Name
	}

	s := access.NewSession(uuid.NewString(), userID, name, role, uc.now())
	if !uc.holder.begin(s) {
		return nil, domain.ErrSessionActive
	}
	uc.log.Session(s.ID, s.UserID).Info().Str("role", role.String()).Msg("sesión iniciada")
	return &s, nil
}

// Logout descarta la sesión y su estado transitorio.
func (uc *AuthUseCase) Logout() error {
	s, ok := uc.holder.end()
	if !ok {
		return domain.ErrNoSession
	}
	uc.log.Session(s.ID, s.UserID).Info().Dur("duration", uc.now().Sub(s.StartedAt)).Msg("sesión cerrada")
	return nil
}

// Current devuelve la sesión activa o ErrNoSession.
func (uc *AuthUseCase) Current() (access.Session, error) {
	s, ok := uc.holder.Current()
	if !ok {
		return access.Session{}, domain.ErrNoSession
	}
	return s, nil
}

func (uc *AuthUseCase) isAdmin(username, password string) bool {
	if uc.admin.Username == "" || uc.admin.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(uc.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(uc.admin.Password)) == 1
	return userOK && passOK
}

// ToSessionResponse serializa la sesión para la ventana.
func ToSessionResponse(s access.Session) dto.SessionResponse {
	caps := s.Capabilities
	return dto.SessionResponse{
		SessionID:   s.ID,
		UserID:      s.UserID,
		DisplayName: s.DisplayName,
		Role:        s.Role.String(),
		StartedAt:   s.StartedAt,
		Capabilities: dto.CapabilityResponse{
			VisibleSections:    caps.VisibleSections().Names(),
			CanAdd:             caps.CanAdd(),
			CanEdit:            caps.CanEdit(),
			CanDelete:          caps.CanDelete(),
			CanViewSalary:      caps.CanViewSalary(),
			CanManageEmployees: caps.CanManageEmployees(),
		},
	}
}
