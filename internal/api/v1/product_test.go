package v1

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCategory_Valid(t *testing.T) {
	require.True(t, CategoryBeauty.Valid())
	require.True(t, CategorySupplement.Valid())
	require.False(t, Category("Beauty").Valid(), "categories are case-sensitive")
	require.False(t, Category("").Valid())
}

func TestProductPatch_Empty(t *testing.T) {
	require.True(t, ProductPatch{}.Empty())

	name := "Serum"
	require.False(t, ProductPatch{Name: &name}.Empty())

	empty := ""
	require.False(t, ProductPatch{LinkURL: &empty}.Empty(), "an explicit empty string is still an update")
}

func TestProduct_JSONShape(t *testing.T) {
	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	raw, err := json.Marshal(Product{ID: 1, Name: "Serum", Category: CategoryBeauty, ImageURL: "i", LinkURL: "l", CreatedAt: at, UpdatedAt: at})
	require.NoError(t, err)
	require.JSONEq(t, `{
		"id": 1,
		"name": "Serum",
		"category": "beauty",
		"imageUrl": "i",
		"linkUrl": "l",
		"createdBy": null,
		"createdAt": "2026-02-03T04:05:06Z",
		"updatedAt": "2026-02-03T04:05:06Z"
	}`, string(raw))
}

func TestUser_PublicHidesPassword(t *testing.T) {
	u := &User{ID: 7, Name: "Ada", Email: "ada@example.com", PasswordHash: "$2a$10$hash", Role: RoleAdmin}

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "hash")

	require.Equal(t, PublicUser{ID: 7, Name: "Ada", Email: "ada@example.com", Role: RoleAdmin}, u.Public())
}
