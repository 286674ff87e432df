package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null"`
	Owner       *User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Logo        string     `json:"logo"`
	CoverImage  string     `json:"cover_image"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	Categories  []Category `json:"categories,omitempty" gorm:"foreignKey:RestaurantID"`
	Products    []Product  `json:"products,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type Category struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `json:"restaurant_id" gorm:"type:uuid;not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID             uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	RestaurantID   uuid.UUID        `json:"restaurant_id" gorm:"type:uuid;not null;index"`
	CategoryID     uuid.UUID        `json:"category_id" gorm:"type:uuid;not null;index"`
	Name           string           `json:"name" gorm:"not null"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price" gorm:"type:decimal(10,2);not null"`
	Image          string           `json:"image"`
	IsPromotion    bool             `json:"is_promotion" gorm:"default:false"`
	PromotionPrice *decimal.Decimal `json:"promotion_price,omitempty" gorm:"type:decimal(10,2)"`
	IsAvailable    bool             `json:"is_available" gorm:"default:true"`

	CustomizationOptions []CustomizationOption `json:"customization_options,omitempty" gorm:"foreignKey:ProductID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ActivePrice returns the unit price a customer actually pays: the promotion
// price when the promotion flag is set and a value exists, else the base price.
func (p Product) ActivePrice() decimal.Decimal {
	if p.IsPromotion && p.PromotionPrice != nil {
		return *p.PromotionPrice
	}
	return p.Price
}

// CustomizationOption is a named choice group on a product (e.g. "Size").
type CustomizationOption struct {
	ID          uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID           `json:"product_id" gorm:"type:uuid;not null;index"`
	Name        string              `json:"name" gorm:"not null"`
	Required    bool                `json:"required" gorm:"default:false"`
	MultiSelect bool                `json:"multi_select" gorm:"default:false"`
	Items       []CustomizationItem `json:"items,omitempty" gorm:"foreignKey:OptionID"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (o *CustomizationOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// CustomizationItem is one selectable value within an option, with an
// additive per-unit price delta.
type CustomizationItem struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	OptionID  uuid.UUID       `json:"option_id" gorm:"type:uuid;not null;index"`
	Name      string          `json:"name" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (i *CustomizationItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
