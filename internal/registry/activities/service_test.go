package activities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk/internal/shared"
)

type mockRepository struct {
	activities map[int64]*Activity
	nextID     int64
	createErr  error
	listCalls  int
}

func newMockRepository() *mockRepository {
	return &mockRepository{activities: make(map[int64]*Activity), nextID: 1}
}

func (m *mockRepository) Get(ctx context.Context, id int64) (*Activity, error) {
	stored, ok := m.activities[id]
	if !ok {
		return nil, &shared.NotFoundError{Kind: shared.KindActivity, ID: id}
	}
	copied := *stored
	return &copied, nil
}

func (m *mockRepository) List(ctx context.Context) ([]Activity, error) {
	m.listCalls++
	var list []Activity
	for _, stored := range m.activities {
		list = append(list, *stored)
	}
	return list, nil
}

func (m *mockRepository) Create(ctx context.Context, activity Activity) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	id := m.nextID
	m.nextID++
	activity.ID = id
	m.activities[id] = &activity
	return id, nil
}

func (m *mockRepository) Update(ctx context.Context, activity Activity) error {
	if _, ok := m.activities[activity.ID]; !ok {
		return &shared.NotFoundError{Kind: shared.KindActivity, ID: activity.ID}
	}
	m.activities[activity.ID] = &activity
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.activities[id]; !ok {
		return &shared.NotFoundError{Kind: shared.KindActivity, ID: id}
	}
	delete(m.activities, id)
	return nil
}

func TestCreateRejectsCaseInsensitiveDuplicateName(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo, nil)

	_, err := service.Create(context.Background(), UpsertActivityRequest{Name: "Chess Club", Type: "Indoor Activity"})
	require.NoError(t, err)

	// Same name up to case and surrounding whitespace, different type.
	_, err = service.Create(context.Background(), UpsertActivityRequest{Name: "  chess club ", Type: "Outdoor Sport"})
	assert.ErrorIs(t, err, shared.ErrDuplicateActivity)
	assert.Len(t, repo.activities, 1)
}

func TestCreateAllowsDistinctNames(t *testing.T) {
	service := NewService(newMockRepository(), nil)

	_, err := service.Create(context.Background(), UpsertActivityRequest{Name: "Chess Club", Type: "Indoor Activity"})
	require.NoError(t, err)
	created, err := service.Create(context.Background(), UpsertActivityRequest{Name: "Debate Club", Type: "Indoor Activity"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestUpdateExcludesOwnRecord(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo, nil)

	created, err := service.Create(context.Background(), UpsertActivityRequest{Name: "Chess Club", Type: "Indoor Activity"})
	require.NoError(t, err)

	// Re-saving under the same name must not collide with itself.
	updated, err := service.Update(context.Background(), created.ID, UpsertActivityRequest{Name: "Chess Club", Type: "Board Game"})
	require.NoError(t, err)
	assert.Equal(t, "Board Game", updated.Type)
}

func TestUpdateRejectsCollisionWithOtherRecord(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo, nil)

	_, err := service.Create(context.Background(), UpsertActivityRequest{Name: "Chess Club", Type: "Indoor Activity"})
	require.NoError(t, err)
	other, err := service.Create(context.Background(), UpsertActivityRequest{Name: "Debate Club", Type: "Indoor Activity"})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), other.ID, UpsertActivityRequest{Name: "chess club", Type: "Debate"})
	assert.ErrorIs(t, err, shared.ErrDuplicateActivity)
}

func TestCreateMapsUniqueViolation(t *testing.T) {
	// A concurrent writer can slip between the scan and the insert; the
	// repository reports the index violation as the duplicate sentinel.
	repo := newMockRepository()
	repo.createErr = shared.ErrDuplicateActivity
	service := NewService(repo, nil)

	_, err := service.Create(context.Background(), UpsertActivityRequest{Name: "Chess Club", Type: "Indoor Activity"})
	assert.ErrorIs(t, err, shared.ErrDuplicateActivity)
}

func TestCheckDuplicateSuffixBranch(t *testing.T) {
	// The suffix comparison is unreachable through the service because the
	// name-only rule rejects any name match first. Exercise it directly so
	// the branch keeps its documented behavior.
	existing := []Activity{{ID: 1, Name: "Chess Club", Type: "Indoor Activity"}}

	err := checkDuplicate(existing, Activity{Name: "chess club", Type: "Outdoor Activity"}, 0)
	require.ErrorIs(t, err, shared.ErrDuplicateActivity)
	assert.Contains(t, err.Error(), "type suffix")

	err = checkDuplicate(existing, Activity{Name: "chess club", Type: "Outdoor Sport"}, 0)
	require.ErrorIs(t, err, shared.ErrDuplicateActivity)
	assert.NotContains(t, err.Error(), "type suffix")
}

func TestTypeSuffix(t *testing.T) {
	assert.Equal(t, "activity", typeSuffix("Indoor Activity"))
	assert.Equal(t, "sport", typeSuffix("  Outdoor  SPORT  "))
	assert.Equal(t, "chess", typeSuffix("Chess"))
	assert.Equal(t, "", typeSuffix("   "))
}
