// Package session supplies the caller identity to the workflow. The CLI
// binds it from flags; a future transport would bind it from its own
// authentication layer.
package session

import (
	"context"

	vo "gatepass/internal/domain/gatepass/valueobjects"
	"gatepass/internal/domain/identity"
)

// StaticSession holds a fixed actor for the lifetime of one invocation.
type StaticSession struct {
	actor identity.Actor
}

func NewStaticSession(actorID, name, role, department string) (*StaticSession, error) {
	parsedRole, err := identity.NewRole(role)
	if err != nil {
		return nil, err
	}

	actor := identity.Actor{
		ID:         actorID,
		Name:       name,
		Role:       parsedRole,
		Department: vo.Department(department),
	}
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	return &StaticSession{actor: actor}, nil
}

func (s *StaticSession) Current(ctx context.Context) (identity.Actor, error) {
	return s.actor, nil
}
