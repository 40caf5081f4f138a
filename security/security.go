package security

// RoleGate answers whether the current caller may perform a protected
// operation. The authorized-role set comes from configuration; matching is
// case-sensitive, no normalization.
type RoleGate struct {
	identity        IdentityClient
	authorizedRoles []string
}

func NewRoleGate(identity IdentityClient, authorizedRoles []string) *RoleGate {
	return &RoleGate{identity: identity, authorizedRoles: authorizedRoles}
}

// ValidateRole resolves the caller through the identity service and checks
// membership in the authorized set. Identity lookup failures pass through
// unchanged; a resolved user outside the set gets ErrForbidden.
func (g *RoleGate) ValidateRole(token string) error {
	user, err := g.identity.CurrentUser(token)
	if err != nil {
		return err
	}
	for _, role := range g.authorizedRoles {
		if user.Role.Name == role {
			return nil
		}
	}
	return ErrForbidden
}
