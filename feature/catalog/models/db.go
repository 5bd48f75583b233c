package models

import "menu-manager/core/reconcile"

// Table names of the catalog schema.
const (
	TableRestaurant  = "restaurant"
	TableMenu        = "menu"
	TableSection     = "section"
	TableItem        = "item"
	TableFeature     = "feature"
	TableItemFeature = "item_feature"
)

// RestaurantRow maps the restaurant table.
type RestaurantRow struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement:false;type:int"`
	Name string `gorm:"column:name;type:varchar(255);not null"`
}

// TableName overrides the table name.
func (RestaurantRow) TableName() string { return TableRestaurant }

// ToDomain converts the row into a tree node without children.
func (r RestaurantRow) ToDomain() Restaurant {
	return Restaurant{ID: reconcile.Persisted(r.ID), Name: r.Name, Menus: []Menu{}}
}

// MenuRow maps the menu table.
type MenuRow struct {
	ID           int            `gorm:"column:id;primaryKey;autoIncrement:false;type:int"`
	Name         string         `gorm:"column:name;type:varchar(255);not null"`
	RestaurantID int            `gorm:"column:restaurant_id;type:int;not null;index"`
	Restaurant   *RestaurantRow `gorm:"foreignKey:RestaurantID"`
}

// TableName overrides the table name.
func (MenuRow) TableName() string { return TableMenu }

// ToDomain converts the row into a tree node without children.
func (r MenuRow) ToDomain() Menu {
	return Menu{ID: reconcile.Persisted(r.ID), Name: r.Name, Sections: []Section{}}
}

// SectionRow maps the section table.
type SectionRow struct {
	ID     int      `gorm:"column:id;primaryKey;autoIncrement:false;type:int"`
	Name   string   `gorm:"column:name;type:varchar(255);not null"`
	MenuID int      `gorm:"column:menu_id;type:int;not null;index"`
	Menu   *MenuRow `gorm:"foreignKey:MenuID"`
}

// TableName overrides the table name.
func (SectionRow) TableName() string { return TableSection }

// ToDomain converts the row into a tree node without children.
func (r SectionRow) ToDomain() Section {
	return Section{ID: reconcile.Persisted(r.ID), Name: r.Name, Items: []Item{}}
}

// ItemRow maps the item table.
type ItemRow struct {
	ID          int         `gorm:"column:id;primaryKey;autoIncrement:false;type:int"`
	Name        string      `gorm:"column:name;type:varchar(255);not null"`
	Description string      `gorm:"column:description;type:text"`
	Price       float64     `gorm:"column:price;type:double;not null"`
	SectionID   int         `gorm:"column:section_id;type:int;not null;index"`
	Section     *SectionRow `gorm:"foreignKey:SectionID"`
}

// TableName overrides the table name.
func (ItemRow) TableName() string { return TableItem }

// ToDomain converts the row into an item with the given feature names.
func (r ItemRow) ToDomain(features []string) Item {
	if features == nil {
		features = []string{}
	}
	return Item{
		ID:          reconcile.Persisted(r.ID),
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Features:    features,
	}
}

// FeatureRow maps the feature table.
type FeatureRow struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement:false;type:int"`
	Name string `gorm:"column:name;type:varchar(255);not null;uniqueIndex"`
}

// TableName overrides the table name.
func (FeatureRow) TableName() string { return TableFeature }

// ToDomain converts the row.
func (r FeatureRow) ToDomain() Feature {
	return Feature{ID: r.ID, Name: r.Name}
}

// ItemFeatureRow maps the item_feature association table.
type ItemFeatureRow struct {
	ItemID    int         `gorm:"column:item_id;primaryKey;autoIncrement:false;type:int"`
	FeatureID int         `gorm:"column:feature_id;primaryKey;autoIncrement:false;type:int"`
	Item      *ItemRow    `gorm:"foreignKey:ItemID"`
	Feature   *FeatureRow `gorm:"foreignKey:FeatureID"`
}

// TableName overrides the table name.
func (ItemFeatureRow) TableName() string { return TableItemFeature }

// All returns every row model in dependency order, for migration and schema checks.
func All() []any {
	return []any{
		&RestaurantRow{},
		&MenuRow{},
		&SectionRow{},
		&ItemRow{},
		&FeatureRow{},
		&ItemFeatureRow{},
	}
}
