// Package authz is the declarative (entity, action) -> role gate for dashboard routes.
package authz

import (
	_ "embed"
	"errors"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/constants"
	"ucentric_backend/internals/helpers/applog"
)

type Mode string

const (
	ModeEnforce  Mode = "enforce"
	ModeShadow   Mode = "shadow"
	ModeDisabled Mode = "disabled"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

var (
	//go:embed model.conf
	modelText string
	//go:embed policy.csv
	policyText string
)

// ParseMode: kosong = enforce; disabled hanya kalau allowDisabled.
func ParseMode(raw string, allowDisabled bool) (Mode, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ModeEnforce, nil
	}
	switch Mode(raw) {
	case ModeEnforce, ModeShadow:
		return Mode(raw), nil
	case ModeDisabled:
		if !allowDisabled {
			return "", errors.New("authz: AUTHZ_MODE=disabled requires AUTHZ_UNSAFE_ALLOW_DISABLED=1")
		}
		return ModeDisabled, nil
	default:
		return "", errors.New("authz: invalid AUTHZ_MODE (expected enforce|shadow|disabled)")
	}
}

type Authorizer struct {
	enforcer *casbin.Enforcer
	mode     Mode
}

// NewAuthorizer loads the embedded model and policy table.
func NewAuthorizer(mode Mode) (*Authorizer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m, stringadapter.NewAdapter(policyText))
	if err != nil {
		return nil, err
	}
	return &Authorizer{enforcer: enforcer, mode: mode}, nil
}

func SubjectFromRole(role string) string {
	role = constants.NormalizeRole(role)
	if role == "" {
		role = "anonymous"
	}
	return "role:" + role
}

// ActionFromMethod maps HTTP verbs onto policy actions.
func ActionFromMethod(method string) string {
	switch strings.ToUpper(method) {
	case fiber.MethodPost:
		return ActionCreate
	case fiber.MethodPut, fiber.MethodPatch:
		return ActionUpdate
	case fiber.MethodDelete:
		return ActionDelete
	default:
		return ActionRead
	}
}

func (a *Authorizer) Mode() Mode { return a.mode }

// Authorize reports the policy decision and whether it is being enforced.
func (a *Authorizer) Authorize(role, object, action string) (allowed bool, enforced bool, err error) {
	switch a.mode {
	case ModeDisabled:
		return true, false, nil
	case ModeShadow:
		ok, err := a.enforcer.Enforce(SubjectFromRole(role), object, action)
		if err != nil {
			return false, false, err
		}
		return ok, false, nil
	case ModeEnforce:
		ok, err := a.enforcer.Enforce(SubjectFromRole(role), object, action)
		if err != nil {
			return false, true, err
		}
		return ok, true, nil
	default:
		return false, false, errors.New("authz: unknown mode")
	}
}

// Require gates a route group on object; role comes from the auth middleware locals.
func (a *Authorizer) Require(object string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(constants.LocalUserRole).(string)
		action := ActionFromMethod(c.Method())

		allowed, enforced, err := a.Authorize(role, object, action)
		entry := applog.WithContext(c.UserContext()).WithField("object", object).
			WithField("action", action).WithField("role", role)
		if err != nil {
			entry.WithError(err).Error("authz: enforce failed")
			if enforced {
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			return c.Next()
		}
		if !allowed {
			if !enforced {
				entry.Warn("authz: shadow deny")
				return c.Next()
			}
			entry.Info("authz: denied")
			return fiber.NewError(fiber.StatusForbidden, constants.ErrUnauthorized)
		}
		return c.Next()
	}
}

// IsAuthorized is the in-code check: role must be one of required.
func IsAuthorized(role string, required ...string) bool {
	role = constants.NormalizeRole(role)
	if role == "" {
		return false
	}
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}
