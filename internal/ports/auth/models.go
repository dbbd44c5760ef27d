package auth

// Permisos reconocidos por el registro.
const (
	PermInsertPet = "insertPet"
	PermUpdatePet = "updatePet"
	PermDeletePet = "deletePet"
)

// Claims representa la identidad completa extraída del token.
type Claims struct {
	UserID      string   `json:"id"`
	Email       string   `json:"email"`
	FullName    string   `json:"fullName"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}

// HasPermission reporta si el actor trae el permiso pedido.
func (c Claims) HasPermission(perm string) bool {
	for _, p := range c.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
