package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"reportgate/internal/constants"
	"reportgate/internal/db/repositories"
	"reportgate/internal/models/dtos"
	gormModels "reportgate/internal/models/gorm"
)

// CreateSettingsHandler handles POST /api/v1/admin/settings
func CreateSettingsHandler(repo *repositories.ConfigAdminRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.SaveConnectionSettingsReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "invalid request body")
			return
		}

		if req.BaseURL == "" || req.Username == "" || req.Secret == "" {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "base_url, username and secret are required")
			return
		}

		settings := &gormModels.ConnectionSettings{
			BaseURL:  req.BaseURL,
			Username: req.Username,
			Secret:   req.Secret,
			IsActive: true,
		}
		if req.IsActive != nil {
			settings.IsActive = *req.IsActive
		}

		if err := repo.CreateSettings(r.Context(), settings); err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.ErrKindInternal, err.Error())
			return
		}

		resp := settingsResp(settings)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// ListSettingsHandler handles GET /api/v1/admin/settings
func ListSettingsHandler(repo *repositories.ConfigAdminRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := repo.ListSettings(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.ErrKindInternal, err.Error())
			return
		}

		resp := make([]dtos.ConnectionSettingsResp, 0, len(rows))
		for i := range rows {
			resp = append(resp, settingsResp(&rows[i]))
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// UpdateSettingsHandler handles PUT /api/v1/admin/settings/{id}
func UpdateSettingsHandler(repo *repositories.ConfigAdminRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "id must be a positive integer")
			return
		}

		var req dtos.SaveConnectionSettingsReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "invalid request body")
			return
		}

		settings, err := repo.GetSettingsByID(r.Context(), id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.ErrKindInternal, err.Error())
			return
		}
		if settings == nil {
			respondWithError(w, http.StatusNotFound, constants.ErrKindSettingsNotFound, "connection settings not found")
			return
		}

		if req.BaseURL != "" {
			settings.BaseURL = req.BaseURL
		}
		if req.Username != "" {
			settings.Username = req.Username
		}
		if req.Secret != "" {
			settings.Secret = req.Secret
		}
		if req.IsActive != nil {
			settings.IsActive = *req.IsActive
		}

		if err := repo.UpdateSettings(r.Context(), settings); err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.ErrKindInternal, err.Error())
			return
		}

		resp := settingsResp(settings)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// DeactivateSettingsHandler handles DELETE /api/v1/admin/settings/{id}
func DeactivateSettingsHandler(repo *repositories.ConfigAdminRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "id must be a positive integer")
			return
		}

		if err := repo.DeactivateSettings(r.Context(), id); err != nil {
			respondWithError(w, http.StatusNotFound, constants.ErrKindSettingsNotFound, err.Error())
			return
		}

		msg := "connection settings deactivated"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// CreateReportHandler handles POST /api/v1/admin/reports
func CreateReportHandler(repo *repositories.ConfigAdminRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.SaveReportDefinitionReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "invalid request body")
			return
		}

		if req.SettingsID <= 0 || req.Path == "" || req.DisplayName == "" {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "settings_id, path and display_name are required")
			return
		}

		// The referenced connection settings must exist
		settings, err := repo.GetSettingsByID(r.Context(), req.SettingsID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.ErrKindInternal, err.Error())
			return
		}
		if settings == nil {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "referenced connection settings do not exist")
			return
		}

		def := &gormModels.ReportDefinition{
			SettingsID:    req.SettingsID,
			Path:          req.Path,
			DisplayName:   req.DisplayName,
			DefaultParams: req.DefaultParams,
			IsActive:      true,
		}
		if req.IsActive != nil {
			def.IsActive = *req.IsActive
		}

		if err := repo.CreateReport(r.Context(), def); err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.ErrKindInternal, err.Error())
			return
		}

		resp := reportResp(def)
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// ListReportsHandler handles GET /api/v1/admin/reports
func ListReportsHandler(repo *repositories.ConfigAdminRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := repo.ListReports(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.ErrKindInternal, err.Error())
			return
		}

		resp := make([]dtos.ReportDefinitionResp, 0, len(rows))
		for i := range rows {
			resp = append(resp, reportResp(&rows[i]))
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// UpdateReportHandler handles PUT /api/v1/admin/reports/{id}
func UpdateReportHandler(repo *repositories.ConfigAdminRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "id must be a positive integer")
			return
		}

		var req dtos.SaveReportDefinitionReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "invalid request body")
			return
		}

		def, err := repo.GetReportByID(r.Context(), id)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.ErrKindInternal, err.Error())
			return
		}
		if def == nil {
			respondWithError(w, http.StatusNotFound, constants.ErrKindReportNotFound, "report definition not found")
			return
		}

		if req.SettingsID > 0 && req.SettingsID != def.SettingsID {
			settings, err := repo.GetSettingsByID(r.Context(), req.SettingsID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, constants.ErrKindInternal, err.Error())
				return
			}
			if settings == nil {
				respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "referenced connection settings do not exist")
				return
			}
			def.SettingsID = req.SettingsID
		}
		if req.Path != "" {
			def.Path = req.Path
		}
		if req.DisplayName != "" {
			def.DisplayName = req.DisplayName
		}
		if req.DefaultParams != nil {
			def.DefaultParams = req.DefaultParams
		}
		if req.IsActive != nil {
			def.IsActive = *req.IsActive
		}

		if err := repo.UpdateReport(r.Context(), def); err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.ErrKindInternal, err.Error())
			return
		}

		resp := reportResp(def)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// DeactivateReportHandler handles DELETE /api/v1/admin/reports/{id}
func DeactivateReportHandler(repo *repositories.ConfigAdminRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "id must be a positive integer")
			return
		}

		if err := repo.DeactivateReport(r.Context(), id); err != nil {
			respondWithError(w, http.StatusNotFound, constants.ErrKindReportNotFound, err.Error())
			return
		}

		msg := "report definition deactivated"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

func settingsResp(m *gormModels.ConnectionSettings) dtos.ConnectionSettingsResp {
	// The secret never leaves the service
	return dtos.ConnectionSettingsResp{
		ID:        m.ID,
		BaseURL:   m.BaseURL,
		Username:  m.Username,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func reportResp(m *gormModels.ReportDefinition) dtos.ReportDefinitionResp {
	return dtos.ReportDefinitionResp{
		ID:            m.ID,
		SettingsID:    m.SettingsID,
		Path:          m.Path,
		DisplayName:   m.DisplayName,
		DefaultParams: m.DefaultParams,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
