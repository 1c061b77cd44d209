package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/thenoetrevino/kanban/internal/backend"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Call records one request received by a FakeBackend
type Call struct {
	Method   string
	ID       string
	ColumnID types.ColumnID
	Order    int
}

// FakeBackend is an in-memory backend.Backend that records every call. It
// can be switched to fail, to reassign created IDs, or to hold calls until
// released.
type FakeBackend struct {
	mu       sync.Mutex
	snapshot models.Snapshot
	calls    []Call
	err      error
	reassign bool
	gate     chan struct{}
}

var _ backend.Backend = (*FakeBackend)(nil)

// NewFakeBackend returns a backend serving snap from GetBoard
func NewFakeBackend(snap models.Snapshot) *FakeBackend {
	return &FakeBackend{snapshot: snap.Clone()}
}

// SetError makes every subsequent mutation fail with err (nil to recover)
func (f *FakeBackend) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// SetReassignIDs makes create calls return "srv-" prefixed IDs
func (f *FakeBackend) SetReassignIDs(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reassign = on
}

// Hold makes calls block until the returned release func is called
func (f *FakeBackend) Hold() (release func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gate := make(chan struct{})
	f.gate = gate
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			f.gate = nil
			f.mu.Unlock()
			close(gate)
		})
	}
}

// Calls returns the recorded mutation calls in arrival order
func (f *FakeBackend) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// record logs the call and returns the configured failure
func (f *FakeBackend) record(ctx context.Context, c Call) (bool, error) {
	f.mu.Lock()
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	return f.reassign, f.err
}

func (f *FakeBackend) GetBoard(_ context.Context, boardID types.BoardID) (models.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Snapshot{}, f.err
	}
	if f.snapshot.Board.ID != boardID {
		return models.Snapshot{}, fmt.Errorf("board %s: %w", boardID, backend.ErrNotFound)
	}
	return f.snapshot.Clone(), nil
}

func (f *FakeBackend) CreateColumn(ctx context.Context, column models.Column) (models.Column, error) {
	reassign, err := f.record(ctx, Call{Method: "CreateColumn", ID: column.ID.String()})
	if err != nil {
		return models.Column{}, err
	}
	if reassign {
		column.ID = types.ColumnID("srv-" + column.ID.String())
	}
	return column, nil
}

func (f *FakeBackend) UpdateColumn(ctx context.Context, column models.Column) error {
	_, err := f.record(ctx, Call{Method: "UpdateColumn", ID: column.ID.String()})
	return err
}

func (f *FakeBackend) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	_, err := f.record(ctx, Call{Method: "DeleteColumn", ID: id.String()})
	return err
}

func (f *FakeBackend) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	reassign, err := f.record(ctx, Call{Method: "CreateCard", ID: card.ID.String(), ColumnID: card.ColumnID, Order: card.Order})
	if err != nil {
		return models.Card{}, err
	}
	if reassign {
		card.ID = types.CardID("srv-" + card.ID.String())
	}
	return card, nil
}

func (f *FakeBackend) UpdateCard(ctx context.Context, card models.Card) error {
	_, err := f.record(ctx, Call{Method: "UpdateCard", ID: card.ID.String()})
	return err
}

func (f *FakeBackend) DeleteCard(ctx context.Context, id types.CardID) error {
	_, err := f.record(ctx, Call{Method: "DeleteCard", ID: id.String()})
	return err
}

func (f *FakeBackend) MoveCard(ctx context.Context, id types.CardID, columnID types.ColumnID, order int) error {
	_, err := f.record(ctx, Call{Method: "MoveCard", ID: id.String(), ColumnID: columnID, Order: order})
	return err
}
