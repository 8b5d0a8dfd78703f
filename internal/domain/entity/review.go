package entity

import "time"

// Review is a product review left by a user. UserName is populated from the
// usuarios join on the read path only.
type Review struct {
	ID        int64     `json:"id_resena"`
	UserID    int64     `json:"idusuario,omitempty"`
	ProductID int64     `json:"id_producto,omitempty"`
	Rating    int       `json:"calificacion"`
	Comment   string    `json:"comentario"`
	Date      time.Time `json:"fecha"`
	UserName  string    `json:"nombre_usuario,omitempty"`
}
