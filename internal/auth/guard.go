package auth

import (
	"context"
	"fmt"
	"strings"

	"server/internal/domain"
)

// DecisionKind tags the authorization outcome for a stats request.
type DecisionKind int

const (
	// DecisionUnauthenticated means no usable credential was presented.
	DecisionUnauthenticated DecisionKind = iota
	// DecisionForbidden means the caller is authenticated but lacks the
	// administrative role.
	DecisionForbidden
	// DecisionAllowed means aggregation may proceed for this caller.
	DecisionAllowed
)

// Externally visible denial reasons. They map one-to-one onto response
// bodies, so the UI can distinguish "log in" from "access denied".
const (
	ReasonMissingHeader = "Missing authorization header"
	ReasonInvalidToken  = "Unauthorized"
	ReasonNotAdmin      = "Forbidden: Admin access required"
)

// Decision is the single authorization outcome produced by the guard.
// UserID is set for every authenticated caller, allowed or not.
type Decision struct {
	Kind   DecisionKind
	UserID string
	Reason string
}

// Guard decides whether a caller may receive aggregate platform data. It
// verifies the bearer credential, resolves the caller's role set through the
// role repository, and collapses the result into one Decision. How roles are
// stored stays behind the repository interface.
type Guard struct {
	secret string
	roles  domain.RoleRepository
}

func NewGuard(secret string, roles domain.RoleRepository) *Guard {
	return &Guard{secret: secret, roles: roles}
}

// Authorize resolves the Authorization header into a Decision. The role
// lookup only runs for callers holding a verifiable token. A role-store read
// failure is returned as an error, never as a denial.
func (g *Guard) Authorize(ctx context.Context, authHeader string) (Decision, error) {
	if strings.TrimSpace(authHeader) == "" {
		return Decision{Kind: DecisionUnauthenticated, Reason: ReasonMissingHeader}, nil
	}

	claims, err := VerifyToken(g.secret, BearerToken(authHeader))
	if err != nil || claims.Sub == "" {
		return Decision{Kind: DecisionUnauthenticated, Reason: ReasonInvalidToken}, nil
	}

	isAdmin, err := g.roles.HasRole(ctx, claims.Sub, domain.RoleAdmin)
	if err != nil {
		return Decision{}, fmt.Errorf("resolve roles: %w", err)
	}
	if !isAdmin {
		return Decision{Kind: DecisionForbidden, UserID: claims.Sub, Reason: ReasonNotAdmin}, nil
	}
	return Decision{Kind: DecisionAllowed, UserID: claims.Sub}, nil
}
