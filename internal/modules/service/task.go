package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"github.com/marafik-io/greenspace/internal/modules/repo"
	"github.com/marafik-io/greenspace/internal/pkg/dates"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventPublisher is the lifecycle event feed. Publishes happen after the
// database transaction commits and are best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// TaskEvent is what goes onto the queue for every lifecycle transition.
type TaskEvent struct {
	Event      string    `json:"event"`
	TaskID     uuid.UUID `json:"task_id"`
	TaskTypeID uuid.UUID `json:"task_type_id"`
	Actor      uuid.UUID `json:"actor"`
	Month      string    `json:"month,omitempty"`
	Total      int       `json:"total"`
	At         time.Time `json:"at"`
}

const (
	EventTaskCreated     = "task.created"
	EventTaskUpdated     = "task.updated"
	EventTaskSoftDeleted = "task.soft_deleted"
	EventTaskDeleted     = "task.deleted"
	EventTaskRestored    = "task.restored"
	EventTaskPurged      = "task.purged"
)

// TaskInput carries the writable task fields. Day values arrive already
// coerced (non-numeric form input becomes 0 at the handler); negatives are
// clamped here.
type TaskInput struct {
	TaskTypeID uuid.UUID
	Quartier   string
	Date       string
	Days       [model.DaysInRow]int
}

// TaskView is one task row in a listing payload.
type TaskView struct {
	ID       uuid.UUID            `json:"id"`
	Quartier string               `json:"quartier"`
	Date     string               `json:"date"`
	Total    int                  `json:"total"`
	Jours    [model.DaysInRow]int `json:"jours"`
}

// TypeListing is the per-task-type payload: the rows plus totals
// recomputed from them on every read.
type TypeListing struct {
	Tasks      []TaskView    `json:"tasks"`
	Totals     repo.DayTotals `json:"totals"`
	TaskTypeID uuid.UUID     `json:"task_type_id"`
}

// ListTasksInput scopes a listing. Owner non-nil restricts rows to that
// creator (the employee view); Viewer non-nil excludes that viewer's
// hidden tasks; Month filters to one normalized month.
type ListTasksInput struct {
	Owner  *uuid.UUID
	Viewer *uuid.UUID
	Month  string
}

type ListTasksOutput struct {
	Types map[string]TypeListing `json:"types"`
	// Notes carries informational messages, e.g. a month filter that
	// matched nothing for a type.
	Notes []string `json:"notes,omitempty"`
}

// HistoryEntry is one row of the admin history view.
type HistoryEntry struct {
	ID        uuid.UUID `json:"id"`
	TaskType  string    `json:"task_type"`
	Quartier  string    `json:"quartier"`
	Date      string    `json:"date"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HistoryOutput struct {
	Deleted []HistoryEntry `json:"deleted"`
	Active  []HistoryEntry `json:"active"`
}

type TaskService interface {
	Create(ctx context.Context, actor uuid.UUID, in TaskInput) (*model.Task, error)
	// Update edits an active task. Employees (admin=false) reach only
	// their own rows; admins reach any active row.
	Update(ctx context.Context, actor uuid.UUID, admin bool, taskID uuid.UUID, in TaskInput) (*model.Task, error)
	// SoftDelete is the employee deletion path: own active rows only,
	// recoverable through the admin history view. The actor's hide
	// markers for the task are cleaned up in the same transaction.
	SoftDelete(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error
	// HardDelete is the admin-setup deletion path: any active row,
	// irreversible, no audit record.
	HardDelete(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error
	// Restore flips a soft-deleted task back to active, writing an
	// UPDATE audit record.
	Restore(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error
	// Purge removes a soft-deleted task permanently, writing a DELETE
	// audit record with a nil task reference and a row snapshot.
	Purge(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error

	// Hide suppresses tasks from the actor's own listing. Ids that are
	// not the actor's own active tasks are skipped; the hidden count is
	// returned.
	Hide(ctx context.Context, actor uuid.UUID, taskIDs []uuid.UUID) (int, error)
	// HideOne hides a single active task and reports whether it was
	// already hidden.
	HideOne(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) (bool, error)

	List(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error)
	History(ctx context.Context, viewer uuid.UUID) (*HistoryOutput, error)
}

type taskService struct {
	tasks  repo.TaskRepo
	types  repo.TaskTypeRepo
	hidden repo.HiddenTaskRepo
	events EventPublisher
	log    *zap.Logger
}

func NewTaskService(tasks repo.TaskRepo, types repo.TaskTypeRepo, hidden repo.HiddenTaskRepo, events EventPublisher, log *zap.Logger) TaskService {
	return &taskService{
		tasks:  tasks,
		types:  types,
		hidden: hidden,
		events: events,
		log:    log,
	}
}

func (s *taskService) publish(ctx context.Context, event string, t *model.Task, actor uuid.UUID) {
	if s.events == nil {
		return
	}
	err := s.events.Publish(ctx, TaskEvent{
		Event:      event,
		TaskID:     t.ID,
		TaskTypeID: t.TaskTypeID,
		Actor:      actor,
		Month:      t.Date,
		Total:      t.Total,
		At:         time.Now().UTC(),
	})
	if err != nil {
		s.log.Sugar().Warnw("task event publish failed", "event", event, "task_id", t.ID, "err", err)
	}
}

// validate normalizes and checks the writable fields shared by create and
// update.
func (s *taskService) validate(ctx context.Context, in *TaskInput) error {
	in.Quartier = strings.TrimSpace(in.Quartier)
	if in.TaskTypeID == uuid.Nil || in.Quartier == "" || strings.TrimSpace(in.Date) == "" {
		return ErrMissingFields
	}
	month, err := dates.NormalizeMonth(in.Date)
	if err != nil {
		return ErrInvalidMonth
	}
	in.Date = month
	if _, err := s.types.GetByID(ctx, in.TaskTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownTaskType
		}
		return err
	}
	return nil
}

func (s *taskService) Create(ctx context.Context, actor uuid.UUID, in TaskInput) (*model.Task, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}

	creator := actor
	t := &model.Task{
		TaskTypeID: in.TaskTypeID,
		Quartier:   in.Quartier,
		Date:       in.Date,
		CreatedBy:  &creator,
	}
	t.SetDays(model.ClampDays(in.Days))

	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	s.log.Sugar().Infow("task created", "task_id", t.ID, "task_type_id", t.TaskTypeID, "actor", actor)
	s.publish(ctx, EventTaskCreated, t, actor)
	return t, nil
}

func (s *taskService) Update(ctx context.Context, actor uuid.UUID, admin bool, taskID uuid.UUID, in TaskInput) (*model.Task, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}

	var owner *uuid.UUID
	if !admin {
		owner = &actor
	}
	t, err := s.tasks.GetActive(ctx, taskID, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, err
	}

	t.TaskTypeID = in.TaskTypeID
	// Detach the loaded association: a stale TaskType on the struct would
	// win over the assigned FK when GORM saves belongs-to relations first.
	t.TaskType = nil
	t.Quartier = in.Quartier
	t.Date = in.Date
	t.SetDays(model.ClampDays(in.Days))

	if err := s.tasks.Save(ctx, t); err != nil {
		return nil, err
	}
	s.log.Sugar().Infow("task updated", "task_id", t.ID, "actor", actor, "admin", admin)
	s.publish(ctx, EventTaskUpdated, t, actor)
	return t, nil
}

func (s *taskService) SoftDelete(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error {
	t, err := s.tasks.GetActive(ctx, taskID, &actor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFoundOrUnauthorized
		}
		return err
	}
	if err := s.tasks.SoftDelete(ctx, t, actor); err != nil {
		return err
	}
	s.log.Sugar().Infow("task soft-deleted", "task_id", t.ID, "actor", actor)
	s.publish(ctx, EventTaskSoftDeleted, t, actor)
	return nil
}

func (s *taskService) HardDelete(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error {
	t, err := s.tasks.GetActive(ctx, taskID, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFoundOrUnauthorized
		}
		return err
	}
	if err := s.tasks.HardDelete(ctx, t); err != nil {
		return err
	}
	s.log.Sugar().Infow("task hard-deleted", "task_id", t.ID, "actor", actor)
	s.publish(ctx, EventTaskDeleted, t, actor)
	return nil
}

func (s *taskService) Restore(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error {
	t, err := s.tasks.GetDeleted(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFoundOrUnauthorized
		}
		return err
	}
	if err := s.tasks.Restore(ctx, t, actor); err != nil {
		return err
	}
	s.log.Sugar().Infow("task restored", "task_id", t.ID, "actor", actor)
	s.publish(ctx, EventTaskRestored, t, actor)
	return nil
}

func (s *taskService) Purge(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) error {
	t, err := s.tasks.GetDeleted(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFoundOrUnauthorized
		}
		return err
	}

	snap := model.TaskSnapshot{
		TaskID:     t.ID,
		TaskTypeID: t.TaskTypeID,
		Quartier:   t.Quartier,
		Date:       t.Date,
		Days:       t.Days(),
		Total:      t.Total,
		CreatedBy:  t.CreatedBy,
	}
	if t.TaskType != nil {
		snap.TaskTypeName = t.TaskType.Name
	}

	if err := s.tasks.Purge(ctx, t, actor, snap); err != nil {
		return err
	}
	s.log.Sugar().Infow("task purged", "task_id", t.ID, "actor", actor)
	s.publish(ctx, EventTaskPurged, t, actor)
	return nil
}

func (s *taskService) Hide(ctx context.Context, actor uuid.UUID, taskIDs []uuid.UUID) (int, error) {
	hidden := 0
	for _, taskID := range taskIDs {
		if _, err := s.tasks.GetActive(ctx, taskID, &actor); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return hidden, err
		}
		if err := s.hidden.Upsert(ctx, actor, taskID); err != nil {
			s.log.Sugar().Errorw("hide failed", "task_id", taskID, "actor", actor, "err", err)
			continue
		}
		hidden++
	}
	return hidden, nil
}

func (s *taskService) HideOne(ctx context.Context, actor uuid.UUID, taskID uuid.UUID) (bool, error) {
	if _, err := s.tasks.GetActive(ctx, taskID, &actor); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFoundOrUnauthorized
		}
		return false, err
	}
	already, err := s.hidden.Exists(ctx, actor, taskID)
	if err != nil {
		return false, err
	}
	if already {
		return true, nil
	}
	return false, s.hidden.Upsert(ctx, actor, taskID)
}

func (s *taskService) List(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	month := in.Month
	if month != "" {
		normalized, err := dates.NormalizeMonth(month)
		if err != nil {
			return nil, ErrInvalidMonth
		}
		month = normalized
	}

	var exclude []uuid.UUID
	if in.Viewer != nil {
		ids, err := s.hidden.HiddenIDs(ctx, *in.Viewer)
		if err != nil {
			return nil, err
		}
		exclude = ids
	}

	types, err := s.types.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &ListTasksOutput{Types: make(map[string]TypeListing, len(types))}
	for _, tt := range types {
		filter := repo.TaskFilter{
			TaskTypeID: tt.ID,
			Month:      month,
			Owner:      in.Owner,
			Exclude:    exclude,
		}

		tasks, err := s.tasks.ListActive(ctx, filter)
		if err != nil {
			// One broken type must not take the whole page down.
			s.log.Sugar().Errorw("task listing failed", "task_type", tt.Name, "err", err)
			out.Types[tt.Name] = TypeListing{Tasks: []TaskView{}, TaskTypeID: tt.ID}
			continue
		}
		totals, err := s.tasks.SumActive(ctx, filter)
		if err != nil {
			s.log.Sugar().Errorw("task aggregation failed", "task_type", tt.Name, "err", err)
			out.Types[tt.Name] = TypeListing{Tasks: []TaskView{}, TaskTypeID: tt.ID}
			continue
		}

		if month != "" && len(tasks) == 0 {
			out.Notes = append(out.Notes, "no tasks for "+tt.Name+" in "+month)
		}

		views := make([]TaskView, 0, len(tasks))
		for i := range tasks {
			t := &tasks[i]
			views = append(views, TaskView{
				ID:       t.ID,
				Quartier: t.Quartier,
				Date:     t.Date,
				Total:    t.Total,
				Jours:    t.Days(),
			})
		}
		out.Types[tt.Name] = TypeListing{Tasks: views, Totals: totals, TaskTypeID: tt.ID}
	}
	return out, nil
}

func historyEntry(t *model.Task) HistoryEntry {
	e := HistoryEntry{
		ID:        t.ID,
		TaskType:  "N/A",
		Quartier:  t.Quartier,
		Date:      t.Date,
		User:      "unknown",
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.TaskType != nil {
		e.TaskType = t.TaskType.Name
	}
	if t.Creator != nil {
		e.User = t.Creator.Username
	}
	return e
}

func (s *taskService) History(ctx context.Context, viewer uuid.UUID) (*HistoryOutput, error) {
	deleted, err := s.tasks.ListAllDeleted(ctx)
	if err != nil {
		return nil, err
	}

	exclude, err := s.hidden.HiddenIDs(ctx, viewer)
	if err != nil {
		return nil, err
	}
	active, err := s.tasks.ListAllActive(ctx, exclude)
	if err != nil {
		return nil, err
	}

	out := &HistoryOutput{
		Deleted: make([]HistoryEntry, 0, len(deleted)),
		Active:  make([]HistoryEntry, 0, len(active)),
	}
	for i := range deleted {
		out.Deleted = append(out.Deleted, historyEntry(&deleted[i]))
	}
	for i := range active {
		out.Active = append(out.Active, historyEntry(&active[i]))
	}
	return out, nil
}
