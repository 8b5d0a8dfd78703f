// Package model holds the GORM-specific structs mapping the original
// pizzeria schema. Table and column names are kept verbatim so the module
// can run against an existing database.
package model

// UserModel is the GORM-specific struct for the 'usuarios' table.
type UserModel struct {
	ID        int64  `gorm:"column:idusuario;primaryKey;autoIncrement"`
	Name      string `gorm:"column:nombre;type:varchar(100);not null"`
	Email     string `gorm:"column:email;type:varchar(100);not null"`
	Password  string `gorm:"column:password;type:varchar(100);not null"`
	RoleID    int64  `gorm:"column:idrol;not null"`
	Phone     string `gorm:"column:telefono;type:varchar(20)"`
	BirthDate string `gorm:"column:fecha_naci;type:varchar(20)"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "usuarios"
}

// RoleModel is the GORM-specific struct for the 'rol' table.
type RoleModel struct {
	ID   int64  `gorm:"column:idrol;primaryKey;autoIncrement"`
	Name string `gorm:"column:nombre;type:varchar(50);not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "rol"
}
