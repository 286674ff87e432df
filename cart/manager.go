package cart

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rafaslide/carddz/models"
)

// SnapshotStore persists one opaque cart blob per customer. Load returns
// (nil, nil) when no snapshot exists.
type SnapshotStore interface {
	Load(customerID uuid.UUID) ([]byte, error)
	Save(customerID uuid.UUID, payload []byte) error
	Delete(customerID uuid.UUID) error
}

// Manager owns every live cart, keyed by customer. Carts are hydrated from
// the snapshot store on first touch and written back after every mutation.
// A mutation is applied to a working copy and committed to memory only once
// the snapshot write succeeds, so a failed save leaves the previous state
// intact and the caller can retry.
type Manager struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*Cart
	store SnapshotStore
	log   *logrus.Logger
}

func NewManager(store SnapshotStore, log *logrus.Logger) *Manager {
	return &Manager{
		carts: make(map[uuid.UUID]*Cart),
		store: store,
		log:   log,
	}
}

// Get returns a copy of the customer's cart, hydrating it from the snapshot
// store if needed.
func (m *Manager) Get(customerID uuid.UUID) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.loadLocked(customerID)
	if err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// AddToCart adds a configured product to the customer's cart.
func (m *Manager) AddToCart(customerID uuid.UUID, product models.Product, quantity int, selections []models.Selection) (*Cart, error) {
	return m.mutate(customerID, func(c *Cart) error {
		return c.Add(product, quantity, selections)
	})
}

// RemoveFromCart removes every customization variant of the product.
func (m *Manager) RemoveFromCart(customerID, productID uuid.UUID) (*Cart, error) {
	return m.mutate(customerID, func(c *Cart) error {
		c.Remove(productID)
		return nil
	})
}

// UpdateQuantity changes the quantity of the first line matching the
// product; zero or less removes it.
func (m *Manager) UpdateQuantity(customerID, productID uuid.UUID, quantity int) (*Cart, error) {
	return m.mutate(customerID, func(c *Cart) error {
		c.UpdateQuantity(productID, quantity)
		return nil
	})
}

// Clear empties the customer's cart and drops its snapshot.
func (m *Manager) Clear(customerID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(customerID); err != nil {
		return err
	}
	m.carts[customerID] = &Cart{}
	return nil
}

func (m *Manager) mutate(customerID uuid.UUID, fn func(*Cart) error) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.loadLocked(customerID)
	if err != nil {
		return nil, err
	}

	working := current.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(working)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(customerID, payload); err != nil {
		return nil, err
	}

	m.carts[customerID] = working
	return working.Clone(), nil
}

// loadLocked returns the live cart for the customer, reading the durable
// snapshot on first access. A snapshot that fails to parse is logged and
// discarded; startup never fails on a bad blob.
func (m *Manager) loadLocked(customerID uuid.UUID) (*Cart, error) {
	if c, ok := m.carts[customerID]; ok {
		return c, nil
	}

	c := &Cart{}
	payload, err := m.store.Load(customerID)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		if err := json.Unmarshal(payload, c); err != nil {
			m.log.WithError(err).WithField("customer_id", customerID).
				Warn("discarding corrupt cart snapshot")
			c = &Cart{}
		}
	}

	m.carts[customerID] = c
	return c, nil
}
