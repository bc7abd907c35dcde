package api

// PerfilAdmin is the role value that grants administrative access.
const PerfilAdmin = "admin"

// Profile represents the authenticated user as returned by GET /user/me.
type Profile struct {
	ID         int64  `json:"id"`
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	TipoPerfil string `json:"tipo_perfil"`
	Telefone   string `json:"telefone,omitempty"`
	Cidade     string `json:"cidade,omitempty"`
	Estado     string `json:"estado,omitempty"`
}

// IsAdmin reports whether the profile has the administrative role.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.TipoPerfil == PerfilAdmin
}

// UpdateProfileRequest is the payload for PUT /user/me. Empty fields are
// omitted so the server keeps their current values.
type UpdateProfileRequest struct {
	Nome     string `json:"nome,omitempty"     validate:"omitempty,min=2"`
	Telefone string `json:"telefone,omitempty"`
	Cidade   string `json:"cidade,omitempty"`
	Estado   string `json:"estado,omitempty"`
}
