package model

import "time"

// LoyaltyAccountModel is the GORM-specific struct for the 'pepperpoints'
// table. The source carried a second, overlapping 'pepper_points' table;
// both are served by this one consolidated mapping.
type LoyaltyAccountModel struct {
	ID             int64  `gorm:"column:id_pepper;primaryKey;autoIncrement"`
	UserID         int64  `gorm:"column:id_usuario;not null;uniqueIndex"`
	CardNumber     string `gorm:"column:num_tarjeta;type:varchar(20);not null"`
	Balance        int    `gorm:"column:puntos_actuales;not null;default:0"`
	LifetimeEarned int    `gorm:"column:puntos_totales;not null;default:0"`
	LifetimeSpent  int    `gorm:"column:puntos_gastados;not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyAccountModel) TableName() string {
	return "pepperpoints"
}

// RedeemableModel is the GORM-specific struct for the 'canjeables' table.
type RedeemableModel struct {
	ID          int64      `gorm:"column:id_canjeable;primaryKey;autoIncrement"`
	ProductID   int64      `gorm:"column:id_producto;not null;index"`
	Name        string     `gorm:"column:nombre;type:varchar(100);not null"`
	Description string     `gorm:"column:descripcion;type:varchar(255)"`
	PointsCost  int        `gorm:"column:costo_puntos;not null"`
	Image       string     `gorm:"column:imagen;type:varchar(255)"`
	StartsAt    *time.Time `gorm:"column:fecha_inicio"`
	ExpiresAt   *time.Time `gorm:"column:fecha_fin"`
}

// TableName explicitly sets the table name for GORM.
func (RedeemableModel) TableName() string {
	return "canjeables"
}
