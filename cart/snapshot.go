package cart

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafaslide/carddz/models"
)

// GormSnapshotStore keeps cart snapshots in the cart_snapshots table, one
// row per customer.
type GormSnapshotStore struct {
	db *gorm.DB
}

func NewGormSnapshotStore(db *gorm.DB) *GormSnapshotStore {
	return &GormSnapshotStore{db: db}
}

func (s *GormSnapshotStore) Load(customerID uuid.UUID) ([]byte, error) {
	var snap models.CartSnapshot
	err := s.db.First(&snap, "customer_id = ?", customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load cart snapshot")
	}
	return snap.Payload, nil
}

func (s *GormSnapshotStore) Save(customerID uuid.UUID, payload []byte) error {
	snap := models.CartSnapshot{CustomerID: customerID, Payload: payload}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snap).Error
	return errors.Wrap(err, "save cart snapshot")
}

func (s *GormSnapshotStore) Delete(customerID uuid.UUID) error {
	err := s.db.Delete(&models.CartSnapshot{}, "customer_id = ?", customerID).Error
	return errors.Wrap(err, "delete cart snapshot")
}
