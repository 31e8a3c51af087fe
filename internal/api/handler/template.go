package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/salespulse/salespulse-api/internal/usecases/templating"
	"github.com/salespulse/salespulse-api/pkg/apiErrors"
	"github.com/salespulse/salespulse-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type CompatibilityRequest struct {
	AvailableFields []string `json:"available_fields"`
}

// CreateTemplate cria um template a partir de um dashboard existente ou
// de uma configuração enviada no corpo
func CreateTemplate(service templating.Templater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req templating.CreateTemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		req.OwnerID = userClaims.UserID

		template, err := service.Create(&req)
		if err != nil {
			handleTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(template)
	}
}

// ListTemplates lista os templates públicos e os do usuário logado
func ListTemplates(service templating.Templater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		templates, err := service.List(userClaims.UserID)
		if err != nil {
			handleTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(templates)
	}
}

// GetTemplate retorna um template pelo ID
func GetTemplate(service templating.Templater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		template, err := service.GetByID(id, userClaims.UserID)
		if err != nil {
			handleTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(template)
	}
}

// UpdateTemplate edita os atributos de um template. Apenas o dono pode editar
func UpdateTemplate(service templating.Templater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req templating.UpdateTemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		template, err := service.Update(id, userClaims.UserID, &req)
		if err != nil {
			handleTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(template)
	}
}

// DeleteTemplate remove um template. Apenas o dono pode remover
func DeleteTemplate(service templating.Templater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(id, userClaims.UserID); err != nil {
			handleTemplateError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// CheckTemplateCompatibility verifica quais campos o template usa que não
// estão entre os campos disponíveis do chamador
func CheckTemplateCompatibility(service templating.Templater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req CompatibilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		fields := make([]domain.ActivityField, 0, len(req.AvailableFields))
		for _, name := range req.AvailableFields {
			fields = append(fields, domain.ActivityField(name))
		}

		result, err := service.CheckCompatibility(id, userClaims.UserID, fields)
		if err != nil {
			handleTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// CloneTemplate cria um novo dashboard a partir da configuração do template
func CloneTemplate(service templating.Templater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var overrides templating.CloneOverrides
		if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// Sem dono explícito o clone é individual do usuário logado
		if overrides.UserID == nil && overrides.TeamID == nil {
			overrides.UserID = &userClaims.UserID
		}

		dashboard, err := service.Clone(id, userClaims.UserID, &overrides)
		if err != nil {
			handleTemplateError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dashboard)
	}
}

// ListTemplateCategories retorna as categorias sugeridas para templates
func ListTemplateCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.TemplateCategories)
	}
}

func handleTemplateError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, templating.ErrTemplateNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTemplateNotFound, "Template não encontrado", nil)

	case errors.Is(err, templating.ErrNotVisible):
		apiErrors.WriteError(w, apiErrors.ErrTemplateNotFound, "Template não encontrado", nil)

	case errors.Is(err, templating.ErrNotOwner):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas o dono pode alterar o template", nil)

	case errors.Is(err, templating.ErrInvalidTemplate), errors.Is(err, templating.ErrInvalidOwnership):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar operação do template", nil)
	}
}
