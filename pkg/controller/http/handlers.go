package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/casaflow/casaflow/pkg/domain/types"
	"github.com/casaflow/casaflow/pkg/usecase"
	"github.com/casaflow/casaflow/pkg/utils/errutil"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

// handleError maps use case errors onto HTTP status codes
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound),
		errors.Is(err, usecase.ErrActionNotFound),
		errors.Is(err, usecase.ErrChecklistItemNotFound):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusConflict)
	default:
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(usecase.ErrInvalidInput, "invalid request body")
	}
	return nil
}

func (s *Server) createClient(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	client, err := s.uc.Client.Create(r.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, client)
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	clientID := types.ClientID(chi.URLParam(r, "clientID"))

	client, err := s.uc.Client.Get(r.Context(), clientID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, client)
}

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.uc.Client.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, clients)
}

func (s *Server) clientOverview(w http.ResponseWriter, r *http.Request) {
	clientID := types.ClientID(chi.URLParam(r, "clientID"))

	overview, err := s.uc.Client.Overview(r.Context(), clientID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, overview)
}

func (s *Server) listInteractions(w http.ResponseWriter, r *http.Request) {
	clientID := types.ClientID(chi.URLParam(r, "clientID"))

	interactions, err := s.uc.Client.ListInteractions(r.Context(), clientID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, interactions)
}

func (s *Server) createAction(w http.ResponseWriter, r *http.Request) {
	clientID := types.ClientID(chi.URLParam(r, "clientID"))

	var req struct {
		Title       string           `json:"title"`
		Description string           `json:"description"`
		Type        string           `json:"type"`
		DueDate     *time.Time       `json:"dueDate"`
		TaskTypes   []types.TaskType `json:"automatedTasks"`
	}
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	action, err := s.uc.Process.CreateAction(r.Context(), clientID, usecase.CreateActionInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		DueDate:     req.DueDate,
		TaskTypes:   req.TaskTypes,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, action)
}

func (s *Server) listActions(w http.ResponseWriter, r *http.Request) {
	clientID := types.ClientID(chi.URLParam(r, "clientID"))

	actions, err := s.uc.Process.ListActions(r.Context(), clientID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, actions)
}

func (s *Server) updateActionStatus(w http.ResponseWriter, r *http.Request) {
	actionID := types.ActionID(chi.URLParam(r, "actionID"))

	var req struct {
		Status string  `json:"status"`
		Notes  *string `json:"notes"`
	}
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	status, err := types.ParseActionStatus(req.Status)
	if err != nil {
		handleError(w, r, goerr.Wrap(usecase.ErrInvalidInput, "invalid action status", goerr.V("status", req.Status)))
		return
	}

	action, err := s.uc.Process.UpdateStatus(r.Context(), actionID, status, req.Notes)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, action)
}

func (s *Server) addChecklistItem(w http.ResponseWriter, r *http.Request) {
	stageID := types.StageID(chi.URLParam(r, "stageID"))

	var req struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	item, err := s.uc.Checklist.AddItem(r.Context(), stageID, req.Text)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, item)
}

func (s *Server) setChecklistCompleted(w http.ResponseWriter, r *http.Request) {
	itemID := types.ChecklistItemID(chi.URLParam(r, "itemID"))

	var req struct {
		Completed bool `json:"completed"`
	}
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	item, err := s.uc.Checklist.SetCompleted(r.Context(), itemID, req.Completed)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, item)
}

func (s *Server) deleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	itemID := types.ChecklistItemID(chi.URLParam(r, "itemID"))

	if err := s.uc.Checklist.Delete(r.Context(), itemID); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) listChecklist(w http.ResponseWriter, r *http.Request) {
	stageID := types.StageID(chi.URLParam(r, "stageID"))

	items, err := s.uc.Checklist.ListByStage(r.Context(), stageID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, items)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	type categoryResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	categories := make([]categoryResponse, 0)
	if s.processCfg != nil {
		for _, c := range s.processCfg.Categories {
			categories = append(categories, categoryResponse{
				ID:          c.ID,
				Name:        c.Name,
				Description: c.Description,
			})
		}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"categories": categories})
}
