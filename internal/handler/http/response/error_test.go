package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"shift type not found", shift.ErrShiftTypeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"schedule code exists", schedule.ErrWorkScheduleCodeExists, http.StatusConflict, "CONFLICT"},
		{"misconfigured schedule", schedule.ErrRotationPatternEmpty, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"roster range too large", roster.ErrDateRangeTooLarge, http.StatusBadRequest, "BAD_REQUEST"},
		{"report already final", dailyreport.ErrReportAlreadyFinal, http.StatusConflict, "CONFLICT"},
		{"unmapped error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}

	t.Run("validation errors carry field details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleError(rec, validator.ValidationErrors{
			{Field: "start_date", Message: "start_date is required"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "start_date is required", resp.Error.Details["start_date"])
	})
}
