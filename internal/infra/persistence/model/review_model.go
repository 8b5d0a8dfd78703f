package model

import "time"

// ReviewModel is the GORM-specific struct for the 'resenas' table.
type ReviewModel struct {
	ID        int64     `gorm:"column:id_resena;primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:idusuario;not null;index"`
	ProductID int64     `gorm:"column:id_producto;not null;index"`
	Rating    int       `gorm:"column:calificacion;not null"`
	Comment   string    `gorm:"column:comentario;type:varchar(500);not null"`
	Date      time.Time `gorm:"column:fecha;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "resenas"
}
