package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/salespulse/salespulse-api/internal/usecases/dashboarding"
	"github.com/salespulse/salespulse-api/internal/usecases/evaluating"
	"github.com/salespulse/salespulse-api/pkg/apiErrors"
	"github.com/salespulse/salespulse-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type ReplaceConfigResponse struct {
	Version int `json:"version"`
}

// CreateDashboard cria um dashboard vazio para um usuário ou time
func CreateDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req dashboarding.CreateDashboardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// Sem dono explícito o dashboard é individual do usuário logado
		if req.UserID == nil && req.TeamID == nil {
			req.UserID = &userClaims.UserID
		}

		dashboard, err := service.Create(&req)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dashboard)
	}
}

// ListDashboards lista os dashboards visíveis ao usuário logado
func ListDashboards(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dashboards, err := service.List(userClaims.UserID)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dashboards)
	}
}

// GetDashboard retorna um dashboard pelo ID
func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		dashboard, err := service.GetByID(id, userClaims.UserID)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dashboard)
	}
}

// UpdateDashboard edita título e descrição de um dashboard
func UpdateDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req dashboarding.UpdateDashboardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		dashboard, err := service.Update(id, userClaims.UserID, &req)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dashboard)
	}
}

// ReplaceDashboardConfig substitui a configuração completa do dashboard
// e incrementa a versão
func ReplaceDashboardConfig(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var config domain.DashboardConfig
		if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar configuração", nil)
			return
		}

		version, err := service.ReplaceConfig(id, userClaims.UserID, &config)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ReplaceConfigResponse{Version: version})
	}
}

// DeleteDashboard remove um dashboard
func DeleteDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(id, userClaims.UserID); err != nil {
			handleDashboardError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetDashboardValues avalia todas as métricas do dashboard na janela de datas
func GetDashboardValues(service evaluating.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parsePeriodFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		values, err := service.DashboardValues(id, filters)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(values)
	}
}

// GetMetricSeries calcula a série diária de uma métrica do dashboard.
// O parâmetro mode aceita total, breakdown e members
func GetMetricSeries(service evaluating.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")
		metricID := params.ByName("metric_id")

		filters, err := parsePeriodFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		mode := evaluating.SeriesMode(r.URL.Query().Get("mode"))
		if mode == "" {
			mode = evaluating.SeriesModeTotal
		}

		series, err := service.MetricSeries(id, metricID, mode, filters)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(series)
	}
}

func handleDashboardError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, dashboarding.ErrDashboardNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDashboardNotFound, "Dashboard não encontrado", nil)

	case errors.Is(err, dashboarding.ErrNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Usuário não tem acesso a este dashboard", nil)

	case errors.Is(err, dashboarding.ErrInvalidOwnership):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, dashboarding.ErrInvalidConfig):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDashboard, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar operação do dashboard", nil)
	}
}
