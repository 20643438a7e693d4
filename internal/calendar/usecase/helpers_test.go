package usecase_test

import (
	"context"

	"calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/model"
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

// mockBackend implements repository.Backend with overridable funcs.
type mockBackend struct {
	listFunc         func(opt repository.ListOptions) ([]model.EventRef, error)
	createFunc       func(write repository.EventWrite) (model.EventRef, error)
	createBatchFunc  func(writes []repository.EventWrite) []repository.ItemResult
	patchFunc        func(id string, write repository.EventWrite) (model.EventRef, error)
	deleteFunc       func(id string) error
	deleteBatchFunc  func(ids []string) []repository.ItemResult
	lastListOptions  *repository.ListOptions
	lastCreateWrites []repository.EventWrite
}

func (m *mockBackend) ListEvents(ctx context.Context, opt repository.ListOptions) ([]model.EventRef, error) {
	m.lastListOptions = &opt
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockBackend) CreateEvent(ctx context.Context, write repository.EventWrite) (model.EventRef, error) {
	if m.createFunc != nil {
		return m.createFunc(write)
	}
	return model.EventRef{ID: "created", Summary: write.Summary}, nil
}

func (m *mockBackend) CreateEvents(ctx context.Context, writes []repository.EventWrite) []repository.ItemResult {
	m.lastCreateWrites = writes
	if m.createBatchFunc != nil {
		return m.createBatchFunc(writes)
	}
	results := make([]repository.ItemResult, len(writes))
	for i, w := range writes {
		results[i] = repository.ItemResult{Index: i, ID: "batch-created", Event: &model.EventRef{ID: "batch-created", Summary: w.Summary}}
	}
	return results
}

func (m *mockBackend) PatchEvent(ctx context.Context, id string, write repository.EventWrite) (model.EventRef, error) {
	if m.patchFunc != nil {
		return m.patchFunc(id, write)
	}
	return model.EventRef{ID: id, Summary: write.Summary}, nil
}

func (m *mockBackend) DeleteEvent(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func (m *mockBackend) DeleteEvents(ctx context.Context, ids []string) []repository.ItemResult {
	if m.deleteBatchFunc != nil {
		return m.deleteBatchFunc(ids)
	}
	results := make([]repository.ItemResult, len(ids))
	for i, id := range ids {
		results[i] = repository.ItemResult{Index: i, ID: id}
	}
	return results
}

// mockFactory hands out a single backend regardless of token.
type mockFactory struct {
	backend *mockBackend
	err     error
}

func (m *mockFactory) ForToken(ctx context.Context, accessToken string) (repository.Backend, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.backend, nil
}
