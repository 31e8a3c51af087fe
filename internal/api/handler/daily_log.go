package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/salespulse/salespulse-api/internal/usecases/tracking"
	"github.com/salespulse/salespulse-api/pkg/apiErrors"
	"github.com/salespulse/salespulse-api/pkg/middleware"
	"github.com/salespulse/salespulse-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type UpsertDailyLogRequest struct {
	Date   string           `json:"date"`
	Fields map[string]int64 `json:"fields"`
}

// UpsertDailyLog registra as atividades do dia do usuário logado.
// Campos já registrados no mesmo dia são sobrescritos; os demais permanecem
func UpsertDailyLog(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		teamID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if teamID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do time não fornecido", nil)
			return
		}

		var req UpsertDailyLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data do registro é obrigatória", nil)
			return
		}

		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			logrus.WithField("date", req.Date).Warn("Data inválida no registro de atividades")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		fields := make(map[domain.ActivityField]int64, len(req.Fields))
		for name, value := range req.Fields {
			fields[domain.ActivityField(name)] = value
		}

		log, err := service.UpsertDailyLog(&tracking.UpsertLogRequest{
			TeamID: teamID,
			UserID: userClaims.UserID,
			Date:   date,
			Fields: fields,
		})
		if err != nil {
			handleTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(log)
	}
}

// ListTeamDailyLogs lista os registros de atividades de um time na janela.
// O parâmetro user_id restringe o resultado a um único membro
func ListTeamDailyLogs(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		teamID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parsePeriodFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var userID *int
		if userIDStr := r.URL.Query().Get("user_id"); userIDStr != "" {
			id, err := strconv.Atoi(userIDStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "user_id inválido", nil)
				return
			}
			userID = &id
		}

		logs, err := service.ListTeamLogs(teamID, userClaims.UserID, userID, filters)
		if err != nil {
			handleTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(logs)
	}
}

// ListActivityFields retorna os campos de atividade aceitos nos registros
func ListActivityFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.ActivityFields)
	}
}

// parsePeriodFilters extrai a janela de datas dos parâmetros da URL
func parsePeriodFilters(r *http.Request) (*domain.PeriodFilters, error) {
	startStr := r.URL.Query().Get("start_date")
	endStr := r.URL.Query().Get("end_date")

	if startStr == "" || endStr == "" {
		return nil, errors.New("start_date e end_date são obrigatórios")
	}

	startDate, err := utils.ParseDate(startStr)
	if err != nil {
		return nil, errors.New("start_date inválido, use o formato YYYY-MM-DD")
	}

	endDate, err := utils.ParseDate(endStr)
	if err != nil {
		return nil, errors.New("end_date inválido, use o formato YYYY-MM-DD")
	}

	return &domain.PeriodFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func handleTrackingError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, tracking.ErrTeamNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTeamNotFound, "Time não encontrado", nil)

	case errors.Is(err, tracking.ErrNotTeamMember):
		apiErrors.WriteError(w, apiErrors.ErrNotTeamMember, "Usuário não é membro do time", nil)

	case errors.Is(err, tracking.ErrInvalidLog):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, tracking.ErrMissingDate):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data do registro é obrigatória", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar registro de atividades", nil)
	}
}
