package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden/database"
	"garden/pkg/clock"
	harvestRepoImp "garden/pkg/harvest/repositoryImp"
	plantingRepoImp "garden/pkg/planting/repositoryImp"
	"garden/pkg/upload"
)

func newTestCtrl(t *testing.T) *HarvestCtrl {
	t.Helper()
	dir := t.TempDir()
	db := database.OpenSQLite(filepath.Join(dir, "test.db"))
	clk := clock.Fixed(time.Date(2024, 6, 1, 12, 0, 0, 0, clock.JST))
	ctrl := New(harvestRepoImp.New(db, clk), plantingRepoImp.New(db, clk), upload.New(dir))
	return ctrl.(*HarvestCtrl)
}

func listRequest(t *testing.T, ctrl *HarvestCtrl, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/harvests?"+query, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.List(e.NewContext(req, rec)))
	return rec
}

func TestListRejectsNonNumericLocationID(t *testing.T) {
	ctrl := newTestCtrl(t)

	rec := listRequest(t, ctrl, "location_id=greenhouse")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "location_id")
}

func TestListRejectsNonNumericCropID(t *testing.T) {
	ctrl := newTestCtrl(t)

	rec := listRequest(t, ctrl, "crop_id=tomato")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "crop_id")
}

func TestListAcceptsNumericFilters(t *testing.T) {
	ctrl := newTestCtrl(t)

	rec := listRequest(t, ctrl, "location_id=3&crop_id=7")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExportRejectsNonNumericLocationID(t *testing.T) {
	ctrl := newTestCtrl(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/harvests/export?location_id=bed", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.Export(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
