package handlers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/mocks"
	"github.com/ersonp/vgame-horizon/internal/domain/services"
)

var zeldaDetails = detailJSON(map[string]any{
	"directors": []map[string]any{{"name": "Hidemaro Fujibayashi", "known_for": []string{"Breath of the Wild"}}},
	"composers": []map[string]any{{"name": "Manaka Kataoka"}},
	"series":    "The Legend of Zelda",
})

func newDetailsHandler(llm *mocks.LLMClient, history *mocks.LookupLog) *DetailsHandler {
	service := services.NewDetailService(llm, services.DetailOptions{}, nil)
	if history == nil {
		return NewDetailsHandler(service, nil, nil)
	}
	return NewDetailsHandler(service, history, nil)
}

func TestDetailsHandler_Handle_Success(t *testing.T) {
	llm := &mocks.LLMClient{Response: zeldaDetails}
	history := &mocks.LookupLog{}
	handler := newDetailsHandler(llm, history)

	view, err := handler.Handle(t.Context(), DetailRequest{Name: "塞尔达传说：王国之泪", Fallback: "The Legend of Zelda: Tears of the Kingdom"})

	require.NoError(t, err)
	assert.Equal(t, 1, llm.Calls(), "no retry after a successful lookup")
	assert.Equal(t, "塞尔达传说：王国之泪", view.Name)
	require.Len(t, view.Directors, 1)
	assert.Equal(t, "director", view.Directors[0].Role)
	require.NotNil(t, view.Series)
	assert.Equal(t, "The Legend of Zelda", *view.Series)

	require.Len(t, history.Lookups, 1)
	rec := history.Lookups[0]
	assert.Equal(t, "塞尔达传说：王国之泪", rec.Query)
	assert.Equal(t, "The Legend of Zelda: Tears of the Kingdom", rec.Fallback)
	assert.Equal(t, "塞尔达传说：王国之泪", rec.ResolvedName)
	assert.Equal(t, "success", rec.Status)
	assert.Equal(t, 2, rec.Credits)
}

func TestDetailsHandler_Handle_FallbackOnce(t *testing.T) {
	tests := []struct {
		name      string
		first     string
		firstErr  error
		fallback  string
		wantCalls int
		wantFound bool
	}{
		{name: "transport error then fallback", firstErr: errors.New("timeout"), fallback: "Tears of the Kingdom", wantCalls: 2, wantFound: true},
		{name: "empty object then fallback", first: "{}", fallback: "Tears of the Kingdom", wantCalls: 2, wantFound: true},
		{name: "parse failure then fallback", first: "I don't know this game.", fallback: "Tears of the Kingdom", wantCalls: 2, wantFound: true},
		{name: "no fallback", first: "{}", wantCalls: 1},
		{name: "fallback equals name", first: "{}", fallback: "王国之泪", wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mocks.LLMClient{
				Responses: []string{tt.first, zeldaDetails},
				Errs:      []error{tt.firstErr},
			}
			history := &mocks.LookupLog{}
			handler := newDetailsHandler(llm, history)

			view, err := handler.Handle(t.Context(), DetailRequest{Name: "王国之泪", Fallback: tt.fallback})

			require.NoError(t, err)
			assert.Equal(t, tt.wantCalls, llm.Calls())
			assert.Equal(t, !tt.wantFound, view.IsEmpty())
			require.Len(t, history.Lookups, 1)
			if tt.wantFound {
				assert.Equal(t, "Tears of the Kingdom", history.Lookups[0].ResolvedName)
			}
		})
	}
}

func TestDetailsHandler_Handle_NothingFound(t *testing.T) {
	llm := &mocks.LLMClient{Err: errors.New("connection refused")}
	history := &mocks.LookupLog{}
	handler := newDetailsHandler(llm, history)

	view, err := handler.Handle(t.Context(), DetailRequest{Name: "王国之泪", Fallback: "Tears of the Kingdom"})

	require.NoError(t, err)
	assert.Equal(t, 2, llm.Calls(), "the fallback is tried exactly once")
	assert.Equal(t, EmptyDetailView("王国之泪"), *view)

	require.Len(t, history.Lookups, 1)
	assert.Equal(t, entities.FetchUnavailable.String(), history.Lookups[0].Status)
	assert.Empty(t, history.Lookups[0].ResolvedName)
	assert.Zero(t, history.Lookups[0].Credits)
}

func TestDetailsHandler_Handle_HistoryFailureIgnored(t *testing.T) {
	llm := &mocks.LLMClient{Response: zeldaDetails}
	handler := newDetailsHandler(llm, &mocks.LookupLog{Err: errors.New("disk full")})

	view, err := handler.Handle(t.Context(), DetailRequest{Name: "Tears of the Kingdom"})

	require.NoError(t, err)
	assert.False(t, view.IsEmpty())
}

func TestDetailsHandler_Handle_Duration(t *testing.T) {
	llm := &mocks.LLMClient{Response: zeldaDetails}
	history := &mocks.LookupLog{}
	handler := newDetailsHandler(llm, history)

	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	calls := 0
	handler.now = func() time.Time {
		calls++
		return start.Add(time.Duration(calls-1) * 1500 * time.Millisecond)
	}

	_, err := handler.Handle(t.Context(), DetailRequest{Name: "Tears of the Kingdom"})

	require.NoError(t, err)
	require.Len(t, history.Lookups, 1)
	assert.Equal(t, int64(1500), history.Lookups[0].DurationMs)
	assert.Equal(t, start, history.Lookups[0].CreatedAt)
}

func TestDetailsHandler_Handle_Unavailable(t *testing.T) {
	handler := NewDetailsHandler(services.NewDetailService(nil, services.DetailOptions{}, nil), nil, nil)
	_, err := handler.Handle(t.Context(), DetailRequest{Name: "Pikmin 4"})
	assert.ErrorIs(t, err, ErrLLMUnavailable)

	handler = NewDetailsHandler(nil, nil, nil)
	_, err = handler.Handle(t.Context(), DetailRequest{Name: "Pikmin 4"})
	assert.ErrorIs(t, err, ErrLLMUnavailable)
}

func TestDetailsHandler_Handle_EmptyName(t *testing.T) {
	llm := &mocks.LLMClient{Response: zeldaDetails}
	handler := newDetailsHandler(llm, nil)

	_, err := handler.Handle(t.Context(), DetailRequest{Name: "  "})

	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, llm.Calls())
}
