package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/salespulse/salespulse-api/internal/usecases/teaming"
	"github.com/salespulse/salespulse-api/pkg/apiErrors"
	"github.com/salespulse/salespulse-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type TeamMemberRequest struct {
	UserID int `json:"user_id"`
}

// CreateTeam cria um novo time com o usuário logado como dono
func CreateTeam(service teaming.Teamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req teaming.CreateTeamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		req.OwnerID = userClaims.UserID

		team, err := service.Create(req)
		if err != nil {
			handleTeamError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(team)
	}
}

// ListTeams lista os times do usuário logado
func ListTeams(service teaming.Teamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		teams, err := service.ListByUser(userClaims.UserID)
		if err != nil {
			handleTeamError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(teams)
	}
}

// GetTeam retorna um time pelo ID
func GetTeam(service teaming.Teamer) http.HandlerFunc {
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

		team, err := service.GetByID(teamID, userClaims.UserID)
		if err != nil {
			handleTeamError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(team)
	}
}

// ListTeamMembers lista os membros de um time
func ListTeamMembers(service teaming.Teamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		teamID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		members, err := service.ListMembers(teamID, userClaims.UserID)
		if err != nil {
			handleTeamError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(members)
	}
}

// AddTeamMember vincula um usuário ao time. Apenas o dono pode adicionar
func AddTeamMember(service teaming.Teamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		teamID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req TeamMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.AddMember(teamID, userClaims.UserID, req.UserID); err != nil {
			handleTeamError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// RemoveTeamMember desvincula um usuário do time
func RemoveTeamMember(service teaming.Teamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		teamID := params.ByName("id")

		memberID, err := strconv.Atoi(params.ByName("user_id"))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		if err := service.RemoveMember(teamID, userClaims.UserID, memberID); err != nil {
			handleTeamError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleTeamError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, teaming.ErrTeamNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTeamNotFound, "Time não encontrado", nil)

	case errors.Is(err, teaming.ErrNotTeamMember):
		apiErrors.WriteError(w, apiErrors.ErrNotTeamMember, "Usuário não é membro do time", nil)

	case errors.Is(err, teaming.ErrNotTeamOwner):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)

	case errors.Is(err, teaming.ErrMissingTeamName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do time é obrigatório", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar operação do time", nil)
	}
}
