package rbac

import (
	"strings"
	"sync"

	"go-attendance/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	Permissions(role string) ([]domain.PermissionResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads the default policy table into enforcer.
func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	enforcer.ClearPolicy()
	if _, err := enforcer.AddPolicies(DefaultPolicies()); err != nil {
		return nil, err
	}
	if _, err := enforcer.AddGroupingPolicies(DefaultGroupings()); err != nil {
		return nil, err
	}

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	role := normalizeRole(req.Role)
	if role == "" {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("teacher_id", req.TeacherID),
			zap.String("role", role),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("teacher_id", req.TeacherID),
		zap.String("role", role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

func (s *service) Permissions(role string) ([]domain.PermissionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	perms, err := s.enforcer.GetImplicitPermissionsForUser(normalizeRole(role))
	if err != nil {
		return nil, err
	}

	resp := make([]domain.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		resp = append(resp, domain.PermissionResponse{Resource: p[1], Action: p[2]})
	}
	return resp, nil
}

func normalizeRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}
