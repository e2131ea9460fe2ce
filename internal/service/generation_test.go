package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saishivaaditya/market/internal/groq"
	"github.com/saishivaaditya/market/internal/model"
)

// --- Stubs ---

type stubClient struct {
	completeCalls int
	chatCalls     int
	lastPrompt    string
	lastJSONMode  bool
	out           string
	err           error
}

func (s *stubClient) Complete(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	s.completeCalls++
	s.lastPrompt = prompt
	s.lastJSONMode = jsonMode
	return s.out, s.err
}

func (s *stubClient) Chat(ctx context.Context, history []groq.Message) (string, error) {
	s.chatCalls++
	return s.out, s.err
}

type stubCampaignRepo struct {
	created []*model.Campaign
	err     error
}

func (s *stubCampaignRepo) Create(ctx context.Context, c *model.Campaign) error {
	s.created = append(s.created, c)
	return s.err
}

type stubPitchRepo struct {
	created []*model.Pitch
}

func (s *stubPitchRepo) Create(ctx context.Context, p *model.Pitch) error {
	s.created = append(s.created, p)
	return nil
}

type stubLeadRepo struct {
	created []*model.Lead
	err     error
}

func (s *stubLeadRepo) Create(ctx context.Context, l *model.Lead) error {
	s.created = append(s.created, l)
	return s.err
}

func newService(client *stubClient) (*GenerationService, *stubCampaignRepo, *stubPitchRepo, *stubLeadRepo) {
	campaigns := &stubCampaignRepo{}
	pitches := &stubPitchRepo{}
	leads := &stubLeadRepo{}
	svc := &GenerationService{
		Client:       client,
		CampaignRepo: campaigns,
		PitchRepo:    pitches,
		LeadRepo:     leads,
	}
	return svc, campaigns, pitches, leads
}

// --- Generation pipelines ---

func TestGenerateCampaignReturnsFullTextButStoresParsedContent(t *testing.T) {
	completion := `{"success_probability": 70, "target_audience": "SMBs", "content": "Run a reel series"}`
	client := &stubClient{out: completion}
	svc, campaigns, _, _ := newService(client)

	out := svc.GenerateCampaign(context.Background(), CampaignInput{Product: "CRM", Platform: "Instagram"})

	// Caller sees the whole completion, the row only the 'content' subset.
	assert.Equal(t, completion, out)
	require.Len(t, campaigns.created, 1)
	assert.Equal(t, "Run a reel series", campaigns.created[0].Result)
	assert.Equal(t, "CRM", campaigns.created[0].Product)
	assert.True(t, client.lastJSONMode)
	assert.Contains(t, client.lastPrompt, "CRM")
}

func TestGenerateCampaignMasksCompletionFailure(t *testing.T) {
	client := &stubClient{err: errors.New("connection refused")}
	svc, campaigns, _, _ := newService(client)

	out := svc.GenerateCampaign(context.Background(), CampaignInput{Product: "CRM"})

	assert.Equal(t, FallbackResult, out)
	assert.Empty(t, campaigns.created)
}

func TestGenerateCampaignSkipsPersistenceOnInvalidJSON(t *testing.T) {
	client := &stubClient{out: "Here is your campaign: post daily."}
	svc, campaigns, _, _ := newService(client)

	out := svc.GenerateCampaign(context.Background(), CampaignInput{})

	assert.Equal(t, "Here is your campaign: post daily.", out)
	assert.Empty(t, campaigns.created)
}

func TestGenerateCampaignRespondsDespiteWriteFailure(t *testing.T) {
	client := &stubClient{out: `{"content": "plan"}`}
	svc, campaigns, _, _ := newService(client)
	campaigns.err = errors.New("db down")

	out := svc.GenerateCampaign(context.Background(), CampaignInput{})

	assert.Equal(t, `{"content": "plan"}`, out)
}

func TestGeneratePitchPersistsContent(t *testing.T) {
	client := &stubClient{out: `{"content": "Elevator pitch"}`}
	svc, _, pitches, _ := newService(client)

	out := svc.GeneratePitch(context.Background(), PitchInput{Product: "Analytics", Customer: "CTO"})

	assert.Equal(t, `{"content": "Elevator pitch"}`, out)
	require.Len(t, pitches.created, 1)
	assert.Equal(t, "Elevator pitch", pitches.created[0].Result)
	assert.Equal(t, "CTO", pitches.created[0].Customer)
}

func TestScoreLeadPersistsParsedValues(t *testing.T) {
	client := &stubClient{out: `{"score": 80, "probability": 65, "analysis": "strong fit"}`}
	svc, _, _, leads := newService(client)

	out := svc.ScoreLead(context.Background(), LeadInput{Name: "Acme", Budget: "10k", Need: "CRM", Urgency: "high"})

	assert.True(t, strings.Contains(out, "strong fit"))
	require.Len(t, leads.created, 1)
	assert.Equal(t, 80, leads.created[0].Score)
	assert.Equal(t, 65, leads.created[0].Probability)
	assert.Equal(t, "strong fit", leads.created[0].Analysis)
	assert.Equal(t, "Acme", leads.created[0].Name)
}

func TestScoreLeadMasksCompletionFailure(t *testing.T) {
	client := &stubClient{err: errors.New("timeout")}
	svc, _, _, leads := newService(client)

	out := svc.ScoreLead(context.Background(), LeadInput{Name: "Acme"})

	assert.Equal(t, FallbackResult, out)
	assert.Empty(t, leads.created)
}

// --- Chat ---

func TestChatReplyEmptyHistoryReturnsGreetingWithoutCallingClient(t *testing.T) {
	client := &stubClient{out: "should never be used"}
	svc, _, _, _ := newService(client)

	out := svc.ChatReply(context.Background(), nil)

	assert.Equal(t, Greeting, out)
	assert.Equal(t, 0, client.chatCalls)
	assert.Equal(t, 0, client.completeCalls)
}

func TestChatReplyForwardsHistory(t *testing.T) {
	client := &stubClient{out: "Focus on urgency first."}
	svc, _, _, _ := newService(client)

	out := svc.ChatReply(context.Background(), []groq.Message{{Role: "user", Content: "How to qualify leads?"}})

	assert.Equal(t, "Focus on urgency first.", out)
	assert.Equal(t, 1, client.chatCalls)
}

func TestChatReplyMasksFailure(t *testing.T) {
	client := &stubClient{err: errors.New("boom")}
	svc, _, _, _ := newService(client)

	out := svc.ChatReply(context.Background(), []groq.Message{{Role: "user", Content: "hi"}})

	assert.Equal(t, FallbackReply, out)
}
