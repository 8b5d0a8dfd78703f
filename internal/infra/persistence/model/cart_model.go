package model

import "github.com/shopspring/decimal"

// CartLineModel is the GORM-specific struct for the 'carrito' table.
// The (idproducto, idusuario) composite key is what makes the add-or-merge
// upsert race-safe: a concurrent duplicate insert hits the key and gets
// folded back into an update.
type CartLineModel struct {
	ProductID  int64           `gorm:"column:idproducto;primaryKey"`
	UserID     int64           `gorm:"column:idusuario;primaryKey"`
	Name       string          `gorm:"column:nombre;type:varchar(100);not null"`
	Quantity   int             `gorm:"column:cantidad;not null"`
	Total      decimal.Decimal `gorm:"column:total;type:decimal(10,2);not null"`
	Image      string          `gorm:"column:imagen;type:varchar(255)"`
	CategoryID int64           `gorm:"column:idcategoria;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "carrito"
}
