package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/doodle-sync/internal/config"
	"github.com/s21platform/doodle-sync/internal/engine"
	"github.com/s21platform/doodle-sync/internal/model"
	"github.com/s21platform/doodle-sync/internal/pkg/validator"
	"github.com/s21platform/doodle-sync/internal/reaction"
)

type Handler struct {
	engine SyncEngine
}

func New(engine SyncEngine) *Handler {
	return &Handler{engine: engine}
}

// Routes mounts every endpoint of the UI bridge on r.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/status", h.GetStatus)
		r.Get("/conversations", h.GetConversations)
		r.Post("/conversations/refresh", h.RefreshConversations)
		r.Post("/conversations/close", h.CloseConversation)

		r.Route("/conversations/{conversation_id}", func(r chi.Router) {
			r.Post("/open", h.OpenConversation)
			r.Get("/items", h.GetThread)
			r.Post("/items/older", h.LoadOlderItems)
			r.Post("/messages", h.SendText)
			r.Post("/doodles", h.SendDoodle)
			r.Post("/read", h.MarkRead)
			r.Put("/mute", h.SetMuted)
			r.Post("/items/{item_id}/reactions", h.ToggleReaction)
		})

		r.Get("/doodles/received", h.GetReceivedDoodles)
		r.Get("/doodles/{doodle_id}/reactions", h.GetDoodleReactions)
		r.Get("/doodles/{doodle_id}/recipients", h.GetDoodleRecipients)
		r.Post("/doodles/{doodle_id}/forward", h.ForwardDoodle)

		r.Get("/friend-requests", h.GetFriendRequests)
		r.Get("/events", h.StreamEvents)
	})
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, StatusResponse{
		UserID:              h.engine.UserID(),
		Connected:           h.engine.Connected(),
		ConversationsLoaded: h.engine.ConversationsLoaded(),
	}, http.StatusOK)
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, GetConversationsResponse{Conversations: h.engine.Conversations()}, http.StatusOK)
}

func (h *Handler) RefreshConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RefreshConversations")

	if err := h.engine.LoadConversations(r.Context()); err != nil {
		logger.Error(fmt.Sprintf("failed to refresh conversations: %v", err))
		h.writeError(w, fmt.Sprintf("failed to refresh conversations: %v", err), http.StatusBadGateway)
		return
	}

	h.writeJSON(w, GetConversationsResponse{Conversations: h.engine.Conversations()}, http.StatusOK)
}

func (h *Handler) OpenConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("OpenConversation")

	conversationID, ok := h.pathUUID(w, r, logger, "conversation_id")
	if !ok {
		return
	}

	if err := h.engine.OpenConversation(r.Context(), conversationID); err != nil {
		logger.Error(fmt.Sprintf("failed to open conversation %s: %v", conversationID, err))
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, h.threadResponse(conversationID), http.StatusOK)
}

func (h *Handler) CloseConversation(w http.ResponseWriter, r *http.Request) {
	h.engine.CloseConversation()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetThread")

	conversationID, ok := h.pathUUID(w, r, logger, "conversation_id")
	if !ok {
		return
	}

	h.writeJSON(w, h.threadResponse(conversationID), http.StatusOK)
}

func (h *Handler) LoadOlderItems(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LoadOlderItems")

	conversationID, ok := h.pathUUID(w, r, logger, "conversation_id")
	if !ok {
		return
	}

	var params LoadOlderParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
		logger.Error(fmt.Sprintf("invalid limit: %v", err))
		h.writeError(w, fmt.Sprintf("invalid limit: %v", err), http.StatusBadRequest)
		return
	}

	limit := 0
	if params.Limit != nil {
		if *params.Limit <= 0 {
			h.writeError(w, "limit must be positive", http.StatusBadRequest)
			return
		}
		limit = *params.Limit
	}

	if err := h.engine.LoadMore(r.Context(), conversationID, limit); err != nil {
		logger.Error(fmt.Sprintf("failed to load older items of %s: %v", conversationID, err))
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, h.threadResponse(conversationID), http.StatusOK)
}

func (h *Handler) SendText(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendText")

	conversationID, ok := h.pathUUID(w, r, logger, "conversation_id")
	if !ok {
		return
	}

	var req SendTextRequest
	if !h.decode(w, r, logger, &req) {
		return
	}

	item, err := h.engine.SendText(r.Context(), conversationID, req.Text, req.ReplyToItemID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send text to %s: %v", conversationID, err))
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, ThreadItemResponse{Item: item}, http.StatusOK)
}

func (h *Handler) SendDoodle(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendDoodle")

	conversationID, ok := h.pathUUID(w, r, logger, "conversation_id")
	if !ok {
		return
	}

	var req SendDoodleRequest
	if !h.decode(w, r, logger, &req) {
		return
	}

	if req.DoodleID == uuid.Nil {
		h.writeError(w, "doodle_id is required", http.StatusBadRequest)
		return
	}

	item, err := h.engine.SendDoodle(r.Context(), conversationID, req.DoodleID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send doodle to %s: %v", conversationID, err))
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, ThreadItemResponse{Item: item}, http.StatusOK)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkRead")

	conversationID, ok := h.pathUUID(w, r, logger, "conversation_id")
	if !ok {
		return
	}

	if err := h.engine.MarkRead(r.Context(), conversationID); err != nil {
		logger.Error(fmt.Sprintf("failed to mark %s read: %v", conversationID, err))
		h.writeEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetMuted(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetMuted")

	conversationID, ok := h.pathUUID(w, r, logger, "conversation_id")
	if !ok {
		return
	}

	var req SetMutedRequest
	if !h.decode(w, r, logger, &req) {
		return
	}

	if err := h.engine.SetMuted(r.Context(), conversationID, req.Muted); err != nil {
		logger.Error(fmt.Sprintf("failed to update mute of %s: %v", conversationID, err))
		h.writeEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ToggleReaction(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ToggleReaction")

	conversationID, ok := h.pathUUID(w, r, logger, "conversation_id")
	if !ok {
		return
	}
	itemID, ok := h.pathUUID(w, r, logger, "item_id")
	if !ok {
		return
	}

	var req ToggleReactionRequest
	if !h.decode(w, r, logger, &req) {
		return
	}

	result, err := h.engine.ToggleReaction(r.Context(), conversationID, itemID, req.Emoji)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to toggle reaction on %s: %v", itemID, err))
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, ToggleReactionResponse{Reaction: result}, http.StatusOK)
}

func (h *Handler) GetDoodleReactions(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetDoodleReactions")

	doodleID, ok := h.pathUUID(w, r, logger, "doodle_id")
	if !ok {
		return
	}

	summary, err := h.engine.DoodleReactions(r.Context(), doodleID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get reactions of doodle %s: %v", doodleID, err))
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, summary, http.StatusOK)
}

func (h *Handler) GetDoodleRecipients(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetDoodleRecipients")

	doodleID, ok := h.pathUUID(w, r, logger, "doodle_id")
	if !ok {
		return
	}

	users, err := h.engine.Recipients(r.Context(), doodleID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get recipients of doodle %s: %v", doodleID, err))
		h.writeEngineError(w, err)
		return
	}

	h.writeJSON(w, GetRecipientsResponse{Recipients: users}, http.StatusOK)
}

func (h *Handler) ForwardDoodle(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ForwardDoodle")

	doodleID, ok := h.pathUUID(w, r, logger, "doodle_id")
	if !ok {
		return
	}

	var req ForwardDoodleRequest
	if !h.decode(w, r, logger, &req) {
		return
	}

	if err := h.engine.ForwardDoodle(r.Context(), doodleID, req.RecipientIDs); err != nil {
		logger.Error(fmt.Sprintf("failed to forward doodle %s: %v", doodleID, err))
		h.writeEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetFriendRequests(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, GetFriendRequestsResponse{FriendRequests: h.engine.FriendRequests()}, http.StatusOK)
}

func (h *Handler) GetReceivedDoodles(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, GetReceivedDoodlesResponse{Doodles: h.engine.ReceivedDoodles()}, http.StatusOK)
}

// StreamEvents pushes store change notifications as server-sent events until
// the client goes away.
func (h *Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StreamEvents")

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("response writer does not support streaming")
		h.writeError(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	notifications, unsubscribe := h.engine.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case n, ok := <-notifications:
			if !ok {
				return
			}

			var payload EventPayload
			if n.ConversationID != uuid.Nil {
				id := n.ConversationID
				payload.ConversationID = &id
			}
			data, err := json.Marshal(payload)
			if err != nil {
				logger.Error(fmt.Sprintf("failed to marshal event: %v", err))
				continue
			}

			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", n.Kind, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// ----------------------------- helpers -----------------------------

// threadResponse serves the live thread while the conversation is open and
// the cache otherwise.
func (h *Handler) threadResponse(conversationID uuid.UUID) GetThreadResponse {
	state := h.engine.ThreadState(conversationID)

	resp := GetThreadResponse{
		Status:    state.Status.String(),
		Items:     []model.ThreadItem{},
		Doodles:   map[uuid.UUID]model.Doodle{},
		Reactions: map[uuid.UUID][]model.Reaction{},
		HasMore:   h.engine.HasMore(conversationID),

		ReactionSummaries: map[uuid.UUID]model.ReactionSummary{},
	}

	if live, ok := h.engine.LiveThread(); ok && live.ConversationID == conversationID {
		resp.Live = true
		fillThread(&resp, live.Items, live.Doodles, live.Reactions)
	} else if state.Cache != nil {
		fillThread(&resp, state.Cache.Items, state.Cache.Doodles, state.Cache.Reactions)
	}

	if state.Err != nil {
		msg := state.Err.Error()
		resp.Error = &msg
	}
	return resp
}

func fillThread(resp *GetThreadResponse, items model.ThreadItemList, doodles map[uuid.UUID]model.Doodle, reactions map[uuid.UUID][]model.Reaction) {
	if items != nil {
		resp.Items = items
	}
	if doodles != nil {
		resp.Doodles = doodles
	}
	if reactions != nil {
		resp.Reactions = reactions
	}

	for _, item := range items {
		itemReactions := reactions[item.ID]
		if len(itemReactions) == 0 {
			continue
		}
		var doodleID uuid.UUID
		if item.DoodleID != nil {
			doodleID = *item.DoodleID
		}
		resp.ReactionSummaries[item.ID] = reaction.SummarizeItem(doodleID, itemReactions)
	}
}

func (h *Handler) pathUUID(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		logger.Error(fmt.Sprintf("invalid %s: %v", name, err))
		h.writeError(w, fmt.Sprintf("invalid %s", name), http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validator.ErrInvalid):
		h.writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, engine.ErrItemNotFound):
		h.writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, engine.ErrNoThreadCache):
		h.writeError(w, err.Error(), http.StatusBadGateway)
	default:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
}
