package api

import (
	"encoding/json"
	"net/http"

	"github.com/homeforge-app/homeforge/internal/ollama"
	"github.com/homeforge-app/homeforge/internal/store"
)

const chatSystemPrompt = "You are a helpful assistant for planning a custom home build. " +
	"The user is comparing candidate areas, budgeting, and tracking requirements. " +
	"Answer concisely and practically."

// ChatHandler proxies the planning-assistant conversation through a local
// Ollama server and persists the transcript.
type ChatHandler struct {
	store        store.Store
	ollama       ollama.Client
	defaultModel string
}

func NewChatHandler(s store.Store, oc ollama.Client, defaultModel string) *ChatHandler {
	return &ChatHandler{store: s, ollama: oc, defaultModel: defaultModel}
}

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.store.ListChatMessages(r.Context(), 0)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if msgs == nil {
		msgs = []*store.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
		Model   string `json:"model,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message required"})
		return
	}
	model := body.Model
	if model == "" {
		model = h.defaultModel
		if st, err := h.store.GetSettings(r.Context()); err == nil && st.OllamaModel != "" {
			model = st.OllamaModel
		}
	}

	userMsg := &store.ChatMessage{Role: "user", Content: body.Message}
	if err := h.store.AppendChatMessage(r.Context(), userMsg); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	history, err := h.store.ListChatMessages(r.Context(), 0)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	messages := make([]ollama.Message, 0, len(history)+1)
	messages = append(messages, ollama.Message{Role: "system", Content: chatSystemPrompt})
	for _, m := range history {
		messages = append(messages, ollama.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := h.ollama.Chat(r.Context(), model, messages)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	assistantMsg := &store.ChatMessage{Role: "assistant", Content: reply.Content}
	if err := h.store.AppendChatMessage(r.Context(), assistantMsg); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, assistantMsg)
}

func (h *ChatHandler) Status(w http.ResponseWriter, r *http.Request) {
	available := h.ollama.Available(r.Context())
	resp := map[string]interface{}{"available": available}
	if available {
		if models, err := h.ollama.ListModels(r.Context()); err == nil {
			resp["models"] = models
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearChatMessages(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
