package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalEmail = "email"
	LocalName  = "name"
)

// adminChecker contrato mínimo para verificar membresía admin; lo implementa
// *usecase.UserUseCase. La interfaz evita el import circular.
type adminChecker interface {
	IsAdmin(email string) (bool, error)
}

type reqKind int

const (
	reqAuthenticated reqKind = iota
	reqAdminOnly
	reqSelfParam
	reqSelfQuery
)

// Requirement es un chequeo de autorización que una ruta declara como dato.
// El Gate los evalúa en orden antes de despachar al handler.
type Requirement struct {
	kind reqKind
	name string // nombre del path/query param para los chequeos self
}

// Requisitos disponibles. Authenticated debe ir primero: los demás dependen
// de los claims que este deja en el contexto.
var (
	Authenticated = Requirement{kind: reqAuthenticated}
	AdminOnly     = Requirement{kind: reqAdminOnly}
)

// SelfParam exige que el email autenticado coincida con el path param indicado.
func SelfParam(name string) Requirement {
	return Requirement{kind: reqSelfParam, name: name}
}

// SelfQuery exige que el email autenticado coincida con el query param indicado.
func SelfQuery(name string) Requirement {
	return Requirement{kind: reqSelfQuery, name: name}
}

// Gate evalúa los requisitos de autorización declarados por cada ruta.
type Gate struct {
	secret string
	admins adminChecker
}

// NewGate construye el gate con el secret JWT y el verificador de admins.
func NewGate(secret string, admins adminChecker) *Gate {
	return &Gate{secret: secret, admins: admins}
}

// Protect devuelve el middleware que evalúa los requisitos en orden y corta
// con 401/403 al primero que falle.
func (g *Gate) Protect(reqs ...Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, req := range reqs {
			var err error
			switch req.kind {
			case reqAuthenticated:
				err = g.authenticate(c)
			case reqAdminOnly:
				err = g.requireAdmin(c)
			case reqSelfParam:
				err = requireSelf(c, c.Params(req.name))
			case reqSelfQuery:
				err = requireSelf(c, c.Query(req.name))
			}
			if err != nil {
				return err
			}
		}
		return c.Next()
	}
}

// authenticate valida el Bearer Token y deja email y name en c.Locals.
func (g *Gate) authenticate(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
	}
	claims, err := jwt.Parse(g.secret, tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
	}
	c.Locals(LocalEmail, claims.Email)
	c.Locals(LocalName, claims.Name)
	return nil
}

// requireAdmin consulta el rol del email autenticado en el store.
// Un usuario inexistente no es admin.
func (g *Gate) requireAdmin(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "email no encontrado en el token"})
	}
	isAdmin, err := g.admins.IsAdmin(email)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "ADMIN_CHECK_FAILED", Message: "no se pudo verificar el rol, intente más tarde"})
	}
	if !isAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere rol admin"})
	}
	return nil
}

// requireSelf compara el email autenticado con el objetivo de la ruta.
func requireSelf(c *fiber.Ctx, target string) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "email no encontrado en el token"})
	}
	if target == "" || target != email {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar sus propios datos"})
	}
	return nil
}

// GetEmail devuelve el email autenticado del contexto (después del gate).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetName devuelve el nombre del usuario autenticado, si el token lo traía.
func GetName(c *fiber.Ctx) string {
	v := c.Locals(LocalName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
