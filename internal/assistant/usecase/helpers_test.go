package usecase_test

import (
	"context"
	"testing"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/assistant/usecase"
	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gemini"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockGemini returns a fixed reply (or error) for every generation call.
type mockGemini struct {
	text string
	err  error
}

func (m *mockGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: m.text}}}},
		},
	}, nil
}

func (m *mockGemini) Model() string { return "gemini-test" }

// mockCalendar implements the calendar UseCase and counts the calls the
// executor makes.
type mockCalendar struct {
	createCalls      int
	createBatchCalls int
	updateCalls      int
	deleteCalls      int
	deleteBatchCalls int

	lastBatchInputs []calendar.CreateInput
	lastDeletedIDs  []string
	lastDeletedID   string
	lastUpdate      calendar.UpdateInput

	createErr error
	updateErr error
	deleteErr error
}

func (m *mockCalendar) List(ctx context.Context, sc model.Scope, input calendar.ListInput) (calendar.ListOutput, error) {
	return calendar.ListOutput{}, nil
}

func (m *mockCalendar) Create(ctx context.Context, sc model.Scope, input calendar.CreateInput) (model.EventRef, error) {
	m.createCalls++
	if m.createErr != nil {
		return model.EventRef{}, m.createErr
	}
	return model.EventRef{ID: "created-1", Summary: input.Summary}, nil
}

func (m *mockCalendar) CreateBatch(ctx context.Context, sc model.Scope, inputs []calendar.CreateInput) ([]calendar.BatchResult, error) {
	m.createBatchCalls++
	m.lastBatchInputs = inputs
	results := make([]calendar.BatchResult, len(inputs))
	for i := range inputs {
		results[i] = calendar.BatchResult{Index: i, EventID: "batch-created"}
	}
	return results, nil
}

func (m *mockCalendar) Update(ctx context.Context, sc model.Scope, input calendar.UpdateInput) (model.EventRef, error) {
	m.updateCalls++
	m.lastUpdate = input
	if m.updateErr != nil {
		return model.EventRef{}, m.updateErr
	}
	return model.EventRef{ID: input.ID, Summary: input.Summary}, nil
}

func (m *mockCalendar) Delete(ctx context.Context, sc model.Scope, id string) error {
	m.deleteCalls++
	m.lastDeletedID = id
	return m.deleteErr
}

func (m *mockCalendar) DeleteBatch(ctx context.Context, sc model.Scope, ids []string) ([]calendar.BatchResult, error) {
	m.deleteBatchCalls++
	m.lastDeletedIDs = ids
	results := make([]calendar.BatchResult, len(ids))
	for i, id := range ids {
		results[i] = calendar.BatchResult{Index: i, EventID: id}
	}
	return results, nil
}

func (m *mockCalendar) ExportICS(ctx context.Context, sc model.Scope, input calendar.ListInput) ([]byte, error) {
	return nil, nil
}

func newAssistantUC(t *testing.T, llm gemini.IGemini, cal *mockCalendar) assistant.UseCase {
	t.Helper()
	dm, err := datemath.New("UTC")
	if err != nil {
		t.Fatalf("datemath.New: %v", err)
	}
	return usecase.New(&mockLogger{}, llm, cal, dm, 6)
}
