package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rafaslide/carddz/config"
	"github.com/rafaslide/carddz/middleware"
	"github.com/rafaslide/carddz/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Restaurant{}))
	config.DB = db
}

func claimsContext(claims *middleware.Claims) (*gin.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Set("claims", claims)
	return c, rec
}

func TestOwnRestaurantFallsBackToOwnerLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	owner := models.User{Name: "Rosa", Email: "rosa@example.com", PasswordHash: "x", Role: models.RoleRestaurant}
	require.NoError(t, config.DB.Create(&owner).Error)

	// restaurant created after the owner's token was issued, so the claims
	// carry no tenant id
	restaurant := models.Restaurant{OwnerID: owner.ID, Name: "Cantina da Rosa"}
	require.NoError(t, config.DB.Create(&restaurant).Error)

	c, _ := claimsContext(&middleware.Claims{UserID: owner.ID, Role: models.RoleRestaurant})

	got, ok := ownRestaurant(c)
	require.True(t, ok)
	assert.Equal(t, restaurant.ID, got.ID)
}

func TestOwnRestaurantPrefersClaimTenant(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	owner := models.User{Name: "Rosa", Email: "rosa@example.com", PasswordHash: "x", Role: models.RoleRestaurant}
	require.NoError(t, config.DB.Create(&owner).Error)
	restaurant := models.Restaurant{OwnerID: owner.ID, Name: "Cantina da Rosa"}
	require.NoError(t, config.DB.Create(&restaurant).Error)

	c, _ := claimsContext(&middleware.Claims{
		UserID:       owner.ID,
		Role:         models.RoleRestaurant,
		RestaurantID: &restaurant.ID,
	})

	got, ok := ownRestaurant(c)
	require.True(t, ok)
	assert.Equal(t, restaurant.ID, got.ID)
}

func TestOwnRestaurantWithoutRestaurant(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	owner := models.User{Name: "Novo", Email: "novo@example.com", PasswordHash: "x", Role: models.RoleRestaurant}
	require.NoError(t, config.DB.Create(&owner).Error)

	c, rec := claimsContext(&middleware.Claims{UserID: owner.ID, Role: models.RoleRestaurant})

	_, ok := ownRestaurant(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
