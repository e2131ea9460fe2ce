package handler

import (
	"encoding/json"
	"net/http"

	"github.com/saishivaaditya/market/internal/groq"
	"github.com/saishivaaditya/market/internal/service"
)

// GenerationHandler exposes the four AI capabilities. The generation
// endpoints never fail from the caller's perspective: completion errors are
// already masked in the service and persistence is best-effort.
type GenerationHandler struct {
	Service *service.GenerationService
}

func (h *GenerationHandler) GenerateCampaign(w http.ResponseWriter, r *http.Request) {
	in := service.CampaignInput{
		Product:  r.FormValue("product"),
		Industry: r.FormValue("industry"),
		Cost:     r.FormValue("cost"),
		Audience: r.FormValue("audience"),
		Platform: r.FormValue("platform"),
	}
	result := h.Service.GenerateCampaign(r.Context(), in)
	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}

func (h *GenerationHandler) GeneratePitch(w http.ResponseWriter, r *http.Request) {
	in := service.PitchInput{
		Product:  r.FormValue("product"),
		Customer: r.FormValue("customer"),
	}
	result := h.Service.GeneratePitch(r.Context(), in)
	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}

func (h *GenerationHandler) LeadScore(w http.ResponseWriter, r *http.Request) {
	in := service.LeadInput{
		Name:    r.FormValue("name"),
		Budget:  r.FormValue("budget"),
		Need:    r.FormValue("need"),
		Urgency: r.FormValue("urgency"),
	}
	result := h.Service.ScoreLead(r.Context(), in)
	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}

func (h *GenerationHandler) Chatbot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Messages []groq.Message `json:"messages"`
	}
	// A malformed body is treated as an empty conversation, matching the
	// endpoint's never-fails contract.
	_ = json.NewDecoder(r.Body).Decode(&body)

	reply := h.Service.ChatReply(r.Context(), body.Messages)
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
