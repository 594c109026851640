package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"github.com/marafik-io/greenspace/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockTaskRepo is a mock implementation of repo.TaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) Save(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) GetActive(ctx context.Context, taskID uuid.UUID, owner *uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, taskID, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) GetDeleted(ctx context.Context, taskID uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) ListActive(ctx context.Context, f repo.TaskFilter) ([]model.Task, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepo) SumActive(ctx context.Context, f repo.TaskFilter) (repo.DayTotals, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(repo.DayTotals), args.Error(1)
}

func (m *MockTaskRepo) ListAllDeleted(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepo) ListAllActive(ctx context.Context, exclude []uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, exclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepo) SoftDelete(ctx context.Context, t *model.Task, owner uuid.UUID) error {
	args := m.Called(ctx, t, owner)
	return args.Error(0)
}

func (m *MockTaskRepo) HardDelete(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) Restore(ctx context.Context, t *model.Task, actor uuid.UUID) error {
	args := m.Called(ctx, t, actor)
	return args.Error(0)
}

func (m *MockTaskRepo) Purge(ctx context.Context, t *model.Task, actor uuid.UUID, snap model.TaskSnapshot) error {
	args := m.Called(ctx, t, actor, snap)
	return args.Error(0)
}

// MockTaskTypeRepo is a mock implementation of repo.TaskTypeRepo
type MockTaskTypeRepo struct {
	mock.Mock
}

func (m *MockTaskTypeRepo) List(ctx context.Context) ([]model.TaskType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TaskType), args.Error(1)
}

func (m *MockTaskTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.TaskType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskType), args.Error(1)
}

func (m *MockTaskTypeRepo) Create(ctx context.Context, tt *model.TaskType) error {
	args := m.Called(ctx, tt)
	return args.Error(0)
}

func (m *MockTaskTypeRepo) Save(ctx context.Context, tt *model.TaskType) error {
	args := m.Called(ctx, tt)
	return args.Error(0)
}

func (m *MockTaskTypeRepo) Delete(ctx context.Context, tt *model.TaskType) error {
	args := m.Called(ctx, tt)
	return args.Error(0)
}

// MockHiddenTaskRepo is a mock implementation of repo.HiddenTaskRepo
type MockHiddenTaskRepo struct {
	mock.Mock
}

func (m *MockHiddenTaskRepo) Upsert(ctx context.Context, accountID, taskID uuid.UUID) error {
	args := m.Called(ctx, accountID, taskID)
	return args.Error(0)
}

func (m *MockHiddenTaskRepo) Exists(ctx context.Context, accountID, taskID uuid.UUID) (bool, error) {
	args := m.Called(ctx, accountID, taskID)
	return args.Bool(0), args.Error(1)
}

func (m *MockHiddenTaskRepo) HiddenIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event any) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newTaskService(tasks *MockTaskRepo, types *MockTaskTypeRepo, hidden *MockHiddenTaskRepo, events *MockEventPublisher) TaskService {
	var pub EventPublisher
	if events != nil {
		pub = events
	}
	return NewTaskService(tasks, types, hidden, pub, zap.NewNop())
}

func validInput(typeID uuid.UUID) TaskInput {
	var days [model.DaysInRow]int
	days[0] = 2
	days[1] = 3
	return TaskInput{
		TaskTypeID: typeID,
		Quartier:   "Hay Al Andalous",
		Date:       "2025-7",
		Days:       days,
	}
}

func TestTaskService_Create(t *testing.T) {
	typeID := uuid.New()
	actor := uuid.New()

	t.Run("normalizes month, clamps days, computes total", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		types := new(MockTaskTypeRepo)
		events := new(MockEventPublisher)

		types.On("GetByID", mock.Anything, typeID).Return(&model.TaskType{ID: typeID, Name: "Arrosage"}, nil)
		tasks.On("Create", mock.Anything, mock.Anything).Return(nil)
		events.On("Publish", mock.Anything, mock.Anything).Return(nil)

		in := validInput(typeID)
		in.Days[2] = -5

		got, err := newTaskService(tasks, types, new(MockHiddenTaskRepo), events).Create(context.Background(), actor, in)
		require.NoError(t, err)

		assert.Equal(t, "2025-07", got.Date)
		assert.Equal(t, 0, got.Jour3, "negative day counts are clamped")
		assert.Equal(t, 5, got.Total)
		require.NotNil(t, got.CreatedBy)
		assert.Equal(t, actor, *got.CreatedBy)

		events.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(e any) bool {
			ev, ok := e.(TaskEvent)
			return ok && ev.Event == EventTaskCreated && ev.Total == 5
		}))
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := newTaskService(new(MockTaskRepo), new(MockTaskTypeRepo), new(MockHiddenTaskRepo), nil)
		in := validInput(typeID)
		in.Quartier = "   "
		_, err := svc.Create(context.Background(), actor, in)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("invalid month", func(t *testing.T) {
		svc := newTaskService(new(MockTaskRepo), new(MockTaskTypeRepo), new(MockHiddenTaskRepo), nil)
		in := validInput(typeID)
		in.Date = "2025-13"
		_, err := svc.Create(context.Background(), actor, in)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})

	t.Run("unknown task type", func(t *testing.T) {
		types := new(MockTaskTypeRepo)
		types.On("GetByID", mock.Anything, typeID).Return(nil, gorm.ErrRecordNotFound)
		svc := newTaskService(new(MockTaskRepo), types, new(MockHiddenTaskRepo), nil)
		_, err := svc.Create(context.Background(), actor, validInput(typeID))
		assert.ErrorIs(t, err, ErrUnknownTaskType)
	})

	t.Run("publish failure does not fail the write", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		types := new(MockTaskTypeRepo)
		events := new(MockEventPublisher)

		types.On("GetByID", mock.Anything, typeID).Return(&model.TaskType{ID: typeID}, nil)
		tasks.On("Create", mock.Anything, mock.Anything).Return(nil)
		events.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		_, err := newTaskService(tasks, types, new(MockHiddenTaskRepo), events).Create(context.Background(), actor, validInput(typeID))
		assert.NoError(t, err)
	})
}

func TestTaskService_Update(t *testing.T) {
	typeID := uuid.New()
	actor := uuid.New()
	taskID := uuid.New()

	t.Run("employee is scoped to own rows", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		types := new(MockTaskTypeRepo)
		types.On("GetByID", mock.Anything, typeID).Return(&model.TaskType{ID: typeID}, nil)
		tasks.On("GetActive", mock.Anything, taskID, &actor).Return(nil, gorm.ErrRecordNotFound)

		svc := newTaskService(tasks, types, new(MockHiddenTaskRepo), nil)
		_, err := svc.Update(context.Background(), actor, false, taskID, validInput(typeID))
		assert.ErrorIs(t, err, ErrNotFoundOrUnauthorized)
	})

	t.Run("admin reaches any active row", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		types := new(MockTaskTypeRepo)
		events := new(MockEventPublisher)

		other := uuid.New()
		existing := &model.Task{ID: taskID, TaskTypeID: typeID, CreatedBy: &other}
		types.On("GetByID", mock.Anything, typeID).Return(&model.TaskType{ID: typeID}, nil)
		tasks.On("GetActive", mock.Anything, taskID, (*uuid.UUID)(nil)).Return(existing, nil)
		tasks.On("Save", mock.Anything, existing).Return(nil)
		events.On("Publish", mock.Anything, mock.Anything).Return(nil)

		got, err := newTaskService(tasks, types, new(MockHiddenTaskRepo), events).
			Update(context.Background(), actor, true, taskID, validInput(typeID))
		require.NoError(t, err)
		assert.Equal(t, 5, got.Total)
		assert.Equal(t, other, *got.CreatedBy, "ownership does not change on admin edit")
	})

	t.Run("type change detaches the loaded association", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		types := new(MockTaskTypeRepo)

		oldType := uuid.New()
		existing := &model.Task{ID: taskID, TaskTypeID: oldType, CreatedBy: &actor,
			TaskType: &model.TaskType{ID: oldType, Name: "Tonte"}}
		types.On("GetByID", mock.Anything, typeID).Return(&model.TaskType{ID: typeID}, nil)
		tasks.On("GetActive", mock.Anything, taskID, &actor).Return(existing, nil)
		tasks.On("Save", mock.Anything, mock.MatchedBy(func(saved *model.Task) bool {
			return saved.TaskTypeID == typeID && saved.TaskType == nil
		})).Return(nil)

		_, err := newTaskService(tasks, types, new(MockHiddenTaskRepo), nil).
			Update(context.Background(), actor, false, taskID, validInput(typeID))
		require.NoError(t, err)
		tasks.AssertExpectations(t)
	})
}

func TestTaskService_DeleteLifecycle(t *testing.T) {
	actor := uuid.New()
	taskID := uuid.New()

	t.Run("soft delete requires ownership", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		tasks.On("GetActive", mock.Anything, taskID, &actor).Return(nil, gorm.ErrRecordNotFound)
		svc := newTaskService(tasks, new(MockTaskTypeRepo), new(MockHiddenTaskRepo), nil)
		assert.ErrorIs(t, svc.SoftDelete(context.Background(), actor, taskID), ErrNotFoundOrUnauthorized)
	})

	t.Run("restore only reaches soft-deleted rows", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		tasks.On("GetDeleted", mock.Anything, taskID).Return(nil, gorm.ErrRecordNotFound)
		svc := newTaskService(tasks, new(MockTaskTypeRepo), new(MockHiddenTaskRepo), nil)
		assert.ErrorIs(t, svc.Restore(context.Background(), actor, taskID), ErrNotFoundOrUnauthorized)
	})

	t.Run("purge snapshots the row", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		events := new(MockEventPublisher)

		owner := uuid.New()
		deleted := &model.Task{
			ID:         taskID,
			TaskTypeID: uuid.New(),
			TaskType:   &model.TaskType{Name: "Tonte"},
			Quartier:   "Centre",
			Date:       "2025-06",
			CreatedBy:  &owner,
			IsDeleted:  true,
		}
		var days [model.DaysInRow]int
		days[9] = 4
		deleted.SetDays(days)

		tasks.On("GetDeleted", mock.Anything, taskID).Return(deleted, nil)
		tasks.On("Purge", mock.Anything, deleted, actor, mock.MatchedBy(func(s model.TaskSnapshot) bool {
			return s.TaskID == taskID && s.TaskTypeName == "Tonte" && s.Total == 4 && s.Days[9] == 4
		})).Return(nil)
		events.On("Publish", mock.Anything, mock.Anything).Return(nil)

		err := newTaskService(tasks, new(MockTaskTypeRepo), new(MockHiddenTaskRepo), events).
			Purge(context.Background(), actor, taskID)
		require.NoError(t, err)
		tasks.AssertExpectations(t)
	})
}

func TestTaskService_Hide(t *testing.T) {
	actor := uuid.New()
	own := uuid.New()
	foreign := uuid.New()

	t.Run("skips ids outside the actor's scope", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		hidden := new(MockHiddenTaskRepo)

		tasks.On("GetActive", mock.Anything, own, &actor).Return(&model.Task{ID: own}, nil)
		tasks.On("GetActive", mock.Anything, foreign, &actor).Return(nil, gorm.ErrRecordNotFound)
		hidden.On("Upsert", mock.Anything, actor, own).Return(nil)

		count, err := newTaskService(tasks, new(MockTaskTypeRepo), hidden, nil).
			Hide(context.Background(), actor, []uuid.UUID{own, foreign})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		hidden.AssertNotCalled(t, "Upsert", mock.Anything, actor, foreign)
	})

	t.Run("hide one reports already hidden", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		hidden := new(MockHiddenTaskRepo)

		tasks.On("GetActive", mock.Anything, own, &actor).Return(&model.Task{ID: own}, nil)
		hidden.On("Exists", mock.Anything, actor, own).Return(true, nil)

		already, err := newTaskService(tasks, new(MockTaskTypeRepo), hidden, nil).
			HideOne(context.Background(), actor, own)
		require.NoError(t, err)
		assert.True(t, already)
		hidden.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTaskService_List(t *testing.T) {
	viewer := uuid.New()
	arrosage := model.TaskType{ID: uuid.New(), Name: "Arrosage"}
	tonte := model.TaskType{ID: uuid.New(), Name: "Tonte"}

	t.Run("groups by type with totals and hidden overlay", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		types := new(MockTaskTypeRepo)
		hidden := new(MockHiddenTaskRepo)

		hiddenID := uuid.New()
		hidden.On("HiddenIDs", mock.Anything, viewer).Return([]uuid.UUID{hiddenID}, nil)
		types.On("List", mock.Anything).Return([]model.TaskType{arrosage, tonte}, nil)

		row := model.Task{ID: uuid.New(), TaskTypeID: arrosage.ID, Quartier: "Centre", Date: "2025-07"}
		var days [model.DaysInRow]int
		days[0] = 6
		row.SetDays(days)

		tasks.On("ListActive", mock.Anything, mock.MatchedBy(func(f repo.TaskFilter) bool {
			return f.TaskTypeID == arrosage.ID && len(f.Exclude) == 1 && f.Exclude[0] == hiddenID
		})).Return([]model.Task{row}, nil)
		tasks.On("SumActive", mock.Anything, mock.MatchedBy(func(f repo.TaskFilter) bool {
			return f.TaskTypeID == arrosage.ID
		})).Return(repo.DayTotals{Jours: days, Total: 6}, nil)

		tasks.On("ListActive", mock.Anything, mock.MatchedBy(func(f repo.TaskFilter) bool {
			return f.TaskTypeID == tonte.ID
		})).Return([]model.Task{}, nil)
		tasks.On("SumActive", mock.Anything, mock.MatchedBy(func(f repo.TaskFilter) bool {
			return f.TaskTypeID == tonte.ID
		})).Return(repo.DayTotals{}, nil)

		out, err := newTaskService(tasks, types, hidden, nil).
			List(context.Background(), ListTasksInput{Viewer: &viewer})
		require.NoError(t, err)

		require.Contains(t, out.Types, "Arrosage")
		require.Contains(t, out.Types, "Tonte")
		assert.Equal(t, 6, out.Types["Arrosage"].Totals.Total)
		assert.Len(t, out.Types["Arrosage"].Tasks, 1)
		assert.Empty(t, out.Types["Tonte"].Tasks)
		assert.Empty(t, out.Notes, "no notes without a month filter")
	})

	t.Run("month filter is normalized and noted when empty", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		types := new(MockTaskTypeRepo)

		types.On("List", mock.Anything).Return([]model.TaskType{arrosage}, nil)
		tasks.On("ListActive", mock.Anything, mock.MatchedBy(func(f repo.TaskFilter) bool {
			return f.Month == "2025-03"
		})).Return([]model.Task{}, nil)
		tasks.On("SumActive", mock.Anything, mock.Anything).Return(repo.DayTotals{}, nil)

		out, err := newTaskService(tasks, types, new(MockHiddenTaskRepo), nil).
			List(context.Background(), ListTasksInput{Month: "2025-3"})
		require.NoError(t, err)
		require.Len(t, out.Notes, 1)
		assert.Contains(t, out.Notes[0], "2025-03")
	})

	t.Run("a broken type does not take the page down", func(t *testing.T) {
		tasks := new(MockTaskRepo)
		types := new(MockTaskTypeRepo)

		types.On("List", mock.Anything).Return([]model.TaskType{arrosage, tonte}, nil)
		tasks.On("ListActive", mock.Anything, mock.MatchedBy(func(f repo.TaskFilter) bool {
			return f.TaskTypeID == arrosage.ID
		})).Return(nil, errors.New("boom"))
		tasks.On("ListActive", mock.Anything, mock.MatchedBy(func(f repo.TaskFilter) bool {
			return f.TaskTypeID == tonte.ID
		})).Return([]model.Task{}, nil)
		tasks.On("SumActive", mock.Anything, mock.Anything).Return(repo.DayTotals{}, nil)

		out, err := newTaskService(tasks, types, new(MockHiddenTaskRepo), nil).
			List(context.Background(), ListTasksInput{})
		require.NoError(t, err)
		assert.Empty(t, out.Types["Arrosage"].Tasks)
		require.Contains(t, out.Types, "Tonte")
	})

	t.Run("invalid month filter", func(t *testing.T) {
		svc := newTaskService(new(MockTaskRepo), new(MockTaskTypeRepo), new(MockHiddenTaskRepo), nil)
		_, err := svc.List(context.Background(), ListTasksInput{Month: "not-a-month"})
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})
}

func TestTaskService_History(t *testing.T) {
	viewer := uuid.New()
	tasks := new(MockTaskRepo)
	hidden := new(MockHiddenTaskRepo)

	owner := &model.Account{Username: "a@ville.ma"}
	del := model.Task{ID: uuid.New(), Quartier: "Nord", Date: "2025-05", IsDeleted: true,
		TaskType: &model.TaskType{Name: "Tonte"}, Creator: owner}
	act := model.Task{ID: uuid.New(), Quartier: "Sud", Date: "2025-06"}

	tasks.On("ListAllDeleted", mock.Anything).Return([]model.Task{del}, nil)
	hidden.On("HiddenIDs", mock.Anything, viewer).Return([]uuid.UUID{}, nil)
	tasks.On("ListAllActive", mock.Anything, []uuid.UUID{}).Return([]model.Task{act}, nil)

	out, err := newTaskService(tasks, new(MockTaskTypeRepo), hidden, nil).
		History(context.Background(), viewer)
	require.NoError(t, err)

	require.Len(t, out.Deleted, 1)
	assert.Equal(t, "Tonte", out.Deleted[0].TaskType)
	assert.Equal(t, "a@ville.ma", out.Deleted[0].User)

	require.Len(t, out.Active, 1)
	assert.Equal(t, "N/A", out.Active[0].TaskType, "missing type association falls back")
	assert.Equal(t, "unknown", out.Active[0].User, "missing creator falls back")
}

// liveTaskService wires the service to real repos over an in-memory
// database, for behavior that only shows up through gorm itself.
func liveTaskService(t *testing.T) (TaskService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Account{},
		&model.TaskType{},
		&model.Task{},
		&model.HiddenTask{},
		&model.TaskHistory{},
	))
	svc := NewTaskService(repo.NewTaskRepo(db), repo.NewTaskTypeRepo(db), repo.NewHiddenTaskRepo(db), nil, zap.NewNop())
	return svc, db
}

func TestTaskService_UpdatePersistsTypeChange(t *testing.T) {
	svc, db := liveTaskService(t)
	ctx := context.Background()

	actor := &model.Account{Username: "a@ville.ma", Email: "a@ville.ma", PasswordHash: "x"}
	require.NoError(t, db.Create(actor).Error)
	tonte := &model.TaskType{Name: "Tonte"}
	arrosage := &model.TaskType{Name: "Arrosage"}
	require.NoError(t, db.Create(tonte).Error)
	require.NoError(t, db.Create(arrosage).Error)

	in := validInput(tonte.ID)
	created, err := svc.Create(ctx, actor.ID, in)
	require.NoError(t, err)

	in.TaskTypeID = arrosage.ID
	_, err = svc.Update(ctx, actor.ID, false, created.ID, in)
	require.NoError(t, err)

	var stored model.Task
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, arrosage.ID, stored.TaskTypeID, "the new type reaches the database")
}

func TestTaskService_ListWithoutViewerKeepsHiddenTasks(t *testing.T) {
	svc, db := liveTaskService(t)
	ctx := context.Background()

	actor := &model.Account{Username: "b@ville.ma", Email: "b@ville.ma", PasswordHash: "x"}
	require.NoError(t, db.Create(actor).Error)
	tonte := &model.TaskType{Name: "Tonte"}
	require.NoError(t, db.Create(tonte).Error)

	created, err := svc.Create(ctx, actor.ID, validInput(tonte.ID))
	require.NoError(t, err)
	_, err = svc.HideOne(ctx, actor.ID, created.ID)
	require.NoError(t, err)

	// No viewer, no overlay: the admin setup listing still carries the row.
	out, err := svc.List(ctx, ListTasksInput{})
	require.NoError(t, err)
	require.Len(t, out.Types["Tonte"].Tasks, 1)
	assert.Equal(t, 5, out.Types["Tonte"].Totals.Total)

	// The hiding viewer's own listing excludes it.
	out, err = svc.List(ctx, ListTasksInput{Viewer: &actor.ID})
	require.NoError(t, err)
	assert.Empty(t, out.Types["Tonte"].Tasks)
	assert.Equal(t, 0, out.Types["Tonte"].Totals.Total)
}
