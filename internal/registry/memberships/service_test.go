package memberships

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk/internal/shared"
)

type mockRepository struct {
	memberships map[int64]*Membership
	nextID      int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{memberships: make(map[int64]*Membership), nextID: 1}
}

func (m *mockRepository) Get(ctx context.Context, id int64) (*Membership, error) {
	stored, ok := m.memberships[id]
	if !ok {
		return nil, &shared.NotFoundError{Kind: shared.KindMembership, ID: id}
	}
	copied := *stored
	return &copied, nil
}

func (m *mockRepository) List(ctx context.Context) ([]Membership, error) {
	var list []Membership
	for _, stored := range m.memberships {
		list = append(list, *stored)
	}
	return list, nil
}

func (m *mockRepository) Create(ctx context.Context, membership Membership) (int64, error) {
	id := m.nextID
	m.nextID++
	membership.ID = id
	m.memberships[id] = &membership
	return id, nil
}

func (m *mockRepository) UpdateType(ctx context.Context, id int64, membershipType string) error {
	stored, ok := m.memberships[id]
	if !ok {
		return &shared.NotFoundError{Kind: shared.KindMembership, ID: id}
	}
	stored.Type = membershipType
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.memberships[id]; !ok {
		return &shared.NotFoundError{Kind: shared.KindMembership, ID: id}
	}
	delete(m.memberships, id)
	return nil
}

func (m *mockRepository) ListExpiredAsOf(ctx context.Context, dayValue string) ([]Membership, error) {
	cutoff, err := time.Parse(time.DateOnly, dayValue)
	if err != nil {
		return nil, err
	}
	var list []Membership
	for _, stored := range m.memberships {
		if stored.ExpiryDate.Before(cutoff) {
			list = append(list, *stored)
		}
	}
	return list, nil
}

func fixedClock(value string) func() time.Time {
	return func() time.Time { return day(value) }
}

func TestCreateComputesDates(t *testing.T) {
	repo := newMockRepository()
	service := NewServiceWithClock(repo, fixedClock("2024-01-31"))

	m, err := service.Create(context.Background(), CreateMembershipRequest{Type: "standard"})
	require.NoError(t, err)
	assert.Equal(t, TypeStandard, m.Type)
	assert.Equal(t, day("2024-01-31"), m.StartDate)
	assert.Equal(t, day("2024-04-30"), m.ExpiryDate)
	assert.NotZero(t, m.ID)
}

func TestCreateRejectsUnknownType(t *testing.T) {
	service := NewServiceWithClock(newMockRepository(), fixedClock("2024-01-31"))

	_, err := service.Create(context.Background(), CreateMembershipRequest{Type: "gold"})
	assert.ErrorIs(t, err, shared.ErrInvalidMembershipType)
}

func TestUpdatePreservesDates(t *testing.T) {
	repo := newMockRepository()
	service := NewServiceWithClock(repo, fixedClock("2024-01-31"))

	created, err := service.Create(context.Background(), CreateMembershipRequest{Type: "standard"})
	require.NoError(t, err)

	// The clock has moved on, but a type change must not recompute dates.
	service.now = fixedClock("2025-06-01")
	updated, err := service.Update(context.Background(), created.ID, UpdateMembershipRequest{Type: "platinum"})
	require.NoError(t, err)

	assert.Equal(t, TypePlatinum, updated.Type)
	assert.Equal(t, created.StartDate, updated.StartDate)
	assert.Equal(t, created.ExpiryDate, updated.ExpiryDate)
}

func TestUpdateMissingMembership(t *testing.T) {
	service := NewServiceWithClock(newMockRepository(), fixedClock("2024-01-31"))

	_, err := service.Update(context.Background(), 42, UpdateMembershipRequest{Type: "premium"})
	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, shared.KindMembership, notFound.Kind)
	assert.Equal(t, int64(42), notFound.ID)
}
