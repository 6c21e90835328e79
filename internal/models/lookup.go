package models

// Dimension tables. Every categorical column elsewhere is a plain foreign key
// to one of these; display names are resolved with explicit joins.

type City struct {
	ID   uint   `gorm:"primaryKey" json:"id" db:"id"`
	Name string `gorm:"column:city_name;type:varchar(50);uniqueIndex;not null" json:"name" db:"city_name"`
}

func (City) TableName() string { return "cities" }

type UserType struct {
	ID   uint   `gorm:"primaryKey" json:"id" db:"id"`
	Name string `gorm:"column:type_name;type:varchar(20);uniqueIndex;not null" json:"name" db:"type_name"`
}

func (UserType) TableName() string { return "user_types" }

type RequestType struct {
	ID   uint   `gorm:"primaryKey" json:"id" db:"id"`
	Name string `gorm:"column:type_name;type:varchar(50);uniqueIndex;not null" json:"name" db:"type_name"`
}

func (RequestType) TableName() string { return "request_types" }

type RequestStatus struct {
	ID   uint   `gorm:"primaryKey" json:"id" db:"id"`
	Name string `gorm:"column:status_name;type:varchar(50);uniqueIndex;not null" json:"name" db:"status_name"`
}

func (RequestStatus) TableName() string { return "request_status" }

type License struct {
	ID   uint   `gorm:"primaryKey" json:"id" db:"id"`
	Name string `gorm:"column:license_name;type:varchar(50);uniqueIndex;not null" json:"name" db:"license_name"`
}

func (License) TableName() string { return "licenses" }
