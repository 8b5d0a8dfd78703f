// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the core identity entity. Field names on the wire keep the
// column names of the original `usuarios` table so existing clients
// keep working unchanged.
type User struct {
	ID        int64  `json:"idusuario"`  // Auto-generated primary key.
	Name      string `json:"nombre"`     // Display name.
	Email     string `json:"email"`      // Login identifier.
	Password  string `json:"password"`   // Stored and compared in plaintext. Known defect inherited from the source system, out of scope here.
	RoleID    int64  `json:"idrol"`      // Reference to the rol table.
	Phone     string `json:"telefono"`   // Contact phone.
	BirthDate string `json:"fecha_naci"` // Birth date as submitted; the source never validates the format.
}

// Role is a lookup row of the rol table.
type Role struct {
	ID   int64  `json:"idrol"`
	Name string `json:"nombre"`
}
