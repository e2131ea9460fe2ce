package service

import (
	"context"
	"log"

	"github.com/saishivaaditya/market/internal/groq"
	"github.com/saishivaaditya/market/internal/prompt"
	"github.com/saishivaaditya/market/internal/repository"
)

// User-facing strings. The two fallbacks mask every completion failure so a
// caller always receives displayable text (tier-1 policy); the greeting is
// returned for an empty chat history without touching the model.
const (
	FallbackResult = "API error. Please try again."
	FallbackReply  = "I'm having trouble connecting right now. Please try again in a moment!"
	Greeting       = "Hi there! 👋 I'm your MarketMind Assistant. How can I help you today?"
)

// CompletionClient is what the generation pipelines need from the Groq
// client; tests substitute a stub.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, jsonMode bool) (string, error)
	Chat(ctx context.Context, history []groq.Message) (string, error)
}

type CampaignInput struct {
	Product  string
	Industry string
	Cost     string
	Audience string
	Platform string
}

type PitchInput struct {
	Product  string
	Customer string
}

type LeadInput struct {
	Name    string
	Budget  string
	Need    string
	Urgency string
}

type GenerationService struct {
	Client       CompletionClient
	CampaignRepo repository.CampaignRepositoryInterface
	PitchRepo    repository.PitchRepositoryInterface
	LeadRepo     repository.LeadRepositoryInterface
}

// GenerateCampaign runs the pipeline: prompt → completion → best-effort
// persist → full completion text back to the caller. Note the deliberate
// divergence: the caller gets the whole sanitized JSON text, the database
// only the parsed subset.
func (s *GenerationService) GenerateCampaign(ctx context.Context, in CampaignInput) string {
	out, err := s.Client.Complete(ctx, prompt.Campaign(in.Product, in.Industry, in.Cost, in.Audience, in.Platform), true)
	if err != nil {
		log.Println("⚠️ campaign completion failed:", err)
		return FallbackResult
	}

	record, err := campaignRecord(in, out)
	if err != nil {
		log.Println("⚠️ skipping campaign save:", err)
		return out
	}
	if err := s.CampaignRepo.Create(ctx, record); err != nil {
		log.Println("⚠️ failed to save campaign:", err)
	}
	return out
}

func (s *GenerationService) GeneratePitch(ctx context.Context, in PitchInput) string {
	out, err := s.Client.Complete(ctx, prompt.Pitch(in.Product, in.Customer), true)
	if err != nil {
		log.Println("⚠️ pitch completion failed:", err)
		return FallbackResult
	}

	record, err := pitchRecord(in, out)
	if err != nil {
		log.Println("⚠️ skipping pitch save:", err)
		return out
	}
	if err := s.PitchRepo.Create(ctx, record); err != nil {
		log.Println("⚠️ failed to save pitch:", err)
	}
	return out
}

func (s *GenerationService) ScoreLead(ctx context.Context, in LeadInput) string {
	out, err := s.Client.Complete(ctx, prompt.LeadScore(in.Name, in.Budget, in.Need, in.Urgency), true)
	if err != nil {
		log.Println("⚠️ lead scoring completion failed:", err)
		return FallbackResult
	}

	record, err := leadRecord(in, out)
	if err != nil {
		log.Println("⚠️ skipping lead save:", err)
		return out
	}
	if err := s.LeadRepo.Create(ctx, record); err != nil {
		log.Println("⚠️ failed to save lead:", err)
	}
	return out
}

// ChatReply answers a multi-turn conversation. An empty history short-circuits
// to the greeting without calling the model.
func (s *GenerationService) ChatReply(ctx context.Context, history []groq.Message) string {
	if len(history) == 0 {
		return Greeting
	}
	out, err := s.Client.Chat(ctx, history)
	if err != nil {
		log.Println("⚠️ chat completion failed:", err)
		return FallbackReply
	}
	return out
}
