package cart

import (
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory SnapshotStore with injectable failures.
type memoryStore struct {
	blobs   map[uuid.UUID][]byte
	saveErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{blobs: make(map[uuid.UUID][]byte)}
}

func (s *memoryStore) Load(customerID uuid.UUID) ([]byte, error) {
	return s.blobs[customerID], nil
}

func (s *memoryStore) Save(customerID uuid.UUID, payload []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.blobs[customerID] = payload
	return nil
}

func (s *memoryStore) Delete(customerID uuid.UUID) error {
	delete(s.blobs, customerID)
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestManagerPersistsAfterEveryMutation(t *testing.T) {
	store := newMemoryStore()
	m := NewManager(store, quietLogger())
	customer := uuid.New()
	p := testProduct("12.00")

	_, err := m.AddToCart(customer, p, 2, nil)
	require.NoError(t, err)
	require.Contains(t, store.blobs, customer)

	// a second manager over the same store sees the saved cart
	restored, err := NewManager(store, quietLogger()).Get(customer)
	require.NoError(t, err)
	require.Len(t, restored.Items, 1)
	assert.Equal(t, 2, restored.Items[0].Quantity)
	assert.True(t, restored.TotalPrice().Equal(money("24.00")))
	require.NotNil(t, restored.RestaurantID)
	assert.Equal(t, p.RestaurantID, *restored.RestaurantID)
}

func TestManagerDiscardsCorruptSnapshot(t *testing.T) {
	store := newMemoryStore()
	customer := uuid.New()
	store.blobs[customer] = []byte("{not json")

	m := NewManager(store, quietLogger())
	c, err := m.Get(customer)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Nil(t, c.RestaurantID)
}

func TestManagerFailedSaveLeavesStateIntact(t *testing.T) {
	store := newMemoryStore()
	m := NewManager(store, quietLogger())
	customer := uuid.New()
	p := testProduct("10.00")

	_, err := m.AddToCart(customer, p, 1, nil)
	require.NoError(t, err)

	store.saveErr = errors.New("disk full")
	_, err = m.AddToCart(customer, p, 5, nil)
	require.Error(t, err)

	// in-memory cart still reflects the last durable state
	c, err := m.Get(customer)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestManagerRejectionDoesNotPersist(t *testing.T) {
	store := newMemoryStore()
	m := NewManager(store, quietLogger())
	customer := uuid.New()

	_, err := m.AddToCart(customer, testProduct("10.00"), 1, nil)
	require.NoError(t, err)
	saved := string(store.blobs[customer])

	_, err = m.AddToCart(customer, testProduct("11.00"), 1, nil)
	assert.ErrorIs(t, err, ErrCrossTenantCart)
	assert.Equal(t, saved, string(store.blobs[customer]))
}

func TestManagerClearDropsSnapshot(t *testing.T) {
	store := newMemoryStore()
	m := NewManager(store, quietLogger())
	customer := uuid.New()

	_, err := m.AddToCart(customer, testProduct("10.00"), 1, nil)
	require.NoError(t, err)

	require.NoError(t, m.Clear(customer))
	assert.NotContains(t, store.blobs, customer)

	c, err := m.Get(customer)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Nil(t, c.RestaurantID)
}

func TestManagerGetReturnsCopy(t *testing.T) {
	store := newMemoryStore()
	m := NewManager(store, quietLogger())
	customer := uuid.New()
	p := testProduct("10.00")

	_, err := m.AddToCart(customer, p, 1, nil)
	require.NoError(t, err)

	c1, err := m.Get(customer)
	require.NoError(t, err)
	c1.Items[0].Quantity = 99

	c2, err := m.Get(customer)
	require.NoError(t, err)
	assert.Equal(t, 1, c2.Items[0].Quantity)
}
