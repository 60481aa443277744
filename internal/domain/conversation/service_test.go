package conversation_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "careerchat-api/internal/domain/conversation"
	repo "careerchat-api/internal/infrastructure/repository/conversation"
)

// stubGenerator is a deterministic advisor.Generator for service tests.
type stubGenerator struct {
	ReplyFunc func(text string) string
	TitleFunc func(text string) string
}

func (g stubGenerator) GenerateReply(ctx context.Context, text string) string {
	if g.ReplyFunc != nil {
		return g.ReplyFunc(text)
	}
	return "advice for: " + text
}

func (g stubGenerator) GenerateTitle(ctx context.Context, text string) string {
	if g.TitleFunc != nil {
		return g.TitleFunc(text)
	}
	words := strings.Fields(text)
	if len(words) > 5 {
		words = words[:5]
	}
	return strings.Join(words, " ")
}

func newTestService(t *testing.T) (domain.Service, *repo.InMemoryRepository) {
	t.Helper()
	store := repo.NewInMemoryRepository()

	// Deterministic, strictly increasing clock so recency ordering is
	// observable without sleeping.
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	store.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})

	svc := domain.NewService(store, stubGenerator{}, zerolog.Nop())
	return svc, store
}

func TestCreateAssignsDefaultTitle(t *testing.T) {
	svc, _ := newTestService(t)

	conv, err := svc.Create(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, conv.Title)
	assert.Equal(t, domain.DefaultTitle, *conv.Title)
	assert.NotZero(t, conv.ID)
}

func TestCreateKeepsProvidedTitle(t *testing.T) {
	svc, _ := newTestService(t)

	title := "Switching to backend"
	conv, err := svc.Create(context.Background(), &title)
	require.NoError(t, err)
	require.NotNil(t, conv.Title)
	assert.Equal(t, title, *conv.Title)
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	svc, _ := newTestService(t)

	blank := "   "
	_, err := svc.Create(context.Background(), &blank)
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestAddMessageAppendsUserAssistantPair(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	conv, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	user, assistant, err := svc.AddMessage(ctx, conv.ID, "I want to learn react")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, "I want to learn react", user.Content)
	assert.Equal(t, domain.RoleAssistant, assistant.Role)
	assert.Equal(t, "advice for: I want to learn react", assistant.Content)

	got, err := svc.Get(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, domain.RoleUser, got.Messages[0].Role)
	assert.Equal(t, domain.RoleAssistant, got.Messages[1].Role)
	assert.False(t, got.UpdatedAt.Before(assistant.CreatedAt))
}

func TestAddMessageGrowsHistoryByTwo(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	conv, err := svc.Start(ctx, "career change to data science")
	require.NoError(t, err)

	before, err := svc.Get(ctx, conv.ID)
	require.NoError(t, err)

	_, _, err = svc.AddMessage(ctx, conv.ID, "which skills first?")
	require.NoError(t, err)

	after, err := svc.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Len(t, after.Messages, len(before.Messages)+2)
}

func TestAddMessageRejectsBlankContent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	conv, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	_, _, err = svc.AddMessage(ctx, conv.ID, "  \t ")
	assert.ErrorIs(t, err, domain.ErrEmptyContent)
}

func TestAddMessageUnknownConversation(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.AddMessage(context.Background(), 12345, "hello")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetOrdersMessagesByCreation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	conv, err := svc.Start(ctx, "first question")
	require.NoError(t, err)
	_, _, err = svc.AddMessage(ctx, conv.ID, "second question")
	require.NoError(t, err)
	_, _, err = svc.AddMessage(ctx, conv.ID, "third question")
	require.NoError(t, err)

	got, err := svc.Get(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 6)
	for i := 1; i < len(got.Messages); i++ {
		assert.False(t, got.Messages[i].CreatedAt.Before(got.Messages[i-1].CreatedAt),
			"messages must be in non-decreasing creation order")
	}
}

func TestGetIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	conv, err := svc.Start(ctx, "how to prepare for interviews")
	require.NoError(t, err)

	first, err := svc.Get(ctx, conv.ID)
	require.NoError(t, err)
	second, err := svc.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListOrdersByRecency(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	older, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	newer, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, newer.ID, listed[0].ID)

	// Appending to the older conversation moves it to the front.
	_, _, err = svc.AddMessage(ctx, older.ID, "still there?")
	require.NoError(t, err)

	listed, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, older.ID, listed[0].ID)
}

func TestDeleteRemovesConversationAndMessages(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	conv, err := svc.Start(ctx, "should I learn go")
	require.NoError(t, err)
	keep, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, deleted.ID)

	_, err = svc.Get(ctx, conv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, keep.ID, listed[0].ID)
}

func TestDeleteUnknownConversation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStartSeedsConversation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	content := "I want to learn react and become a frontend developer"
	conv, err := svc.Start(ctx, content)
	require.NoError(t, err)
	require.NotZero(t, conv.ID)

	require.NotNil(t, conv.Title)
	assert.NotEmpty(t, *conv.Title)
	assert.LessOrEqual(t, len(strings.Fields(*conv.Title)), 5)

	require.Len(t, conv.Messages, 2)
	assert.Equal(t, domain.RoleUser, conv.Messages[0].Role)
	assert.Equal(t, content, conv.Messages[0].Content)
	assert.Equal(t, domain.RoleAssistant, conv.Messages[1].Role)
	assert.NotEmpty(t, conv.Messages[1].Content)
}

func TestStartFallsBackToDefaultTitleWhenGeneratorBlank(t *testing.T) {
	store := repo.NewInMemoryRepository()
	svc := domain.NewService(store, stubGenerator{
		TitleFunc: func(string) string { return "   " },
	}, zerolog.Nop())

	conv, err := svc.Start(context.Background(), "hello")
	require.NoError(t, err)
	require.NotNil(t, conv.Title)
	assert.Equal(t, domain.DefaultTitle, *conv.Title)
}

func TestStartRejectsBlankContent(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Start(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyContent)
}
