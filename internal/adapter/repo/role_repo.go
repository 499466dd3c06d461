package repo

import (
	"context"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// RoleRepositoryPG resolves role membership from the user_roles table.
type RoleRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewRoleRepository creates a new role repo.
func NewRoleRepository(sql infra.SQLExecutor) *RoleRepositoryPG {
	return &RoleRepositoryPG{sql: sql}
}

var _ domain.RoleRepository = (*RoleRepositoryPG)(nil)

// HasRole reports whether the user holds the given role.
func (r *RoleRepositoryPG) HasRole(ctx context.Context, userID string, role domain.Role) (bool, error) {
	var ok bool
	if err := r.sql.QueryRow(ctx, sqlinline.QHasRole, userID, string(role)).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
