// api/util/helper/api_test.go
package helper_util_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper_util "github.com/dev-mohitbeniwal/lotr/api/util/helper"
)

func ginContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		page, perPage, err := helper_util.GetPaginationParams(ginContext(t, "/characters"))
		require.NoError(t, err)
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, perPage)
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		page, perPage, err := helper_util.GetPaginationParams(ginContext(t, "/characters?page=3&per_page=25"))
		require.NoError(t, err)
		assert.Equal(t, 3, page)
		assert.Equal(t, 25, perPage)
	})

	t.Run("ClampsNonPositive", func(t *testing.T) {
		page, perPage, err := helper_util.GetPaginationParams(ginContext(t, "/characters?page=0&per_page=-5"))
		require.NoError(t, err)
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, perPage)
	})

	t.Run("NonNumeric", func(t *testing.T) {
		_, _, err := helper_util.GetPaginationParams(ginContext(t, "/characters?page=abc"))
		assert.Error(t, err)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, helper_util.TotalPages(0, 10))
	assert.Equal(t, 1, helper_util.TotalPages(1, 10))
	assert.Equal(t, 1, helper_util.TotalPages(10, 10))
	assert.Equal(t, 2, helper_util.TotalPages(11, 10))
	assert.Equal(t, 3, helper_util.TotalPages(25, 10))
	assert.Equal(t, 0, helper_util.TotalPages(25, 0))
}
