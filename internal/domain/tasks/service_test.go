package tasks

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeTaskRepo struct {
	tasks  map[int64]*Task
	nextID int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]*Task), nextID: 1}
}

func (r *fakeTaskRepo) ListByAssignedKid(ctx context.Context, kidID string) ([]Task, error) {
	result := make([]Task, 0)
	for _, task := range r.tasks {
		if task.AssignedKidID == kidID {
			result = append(result, *task)
		}
	}
	return result, nil
}

func (r *fakeTaskRepo) ListByCreator(ctx context.Context, parentID string) ([]Task, error) {
	result := make([]Task, 0)
	for _, task := range r.tasks {
		if task.CreatedByParentID == parentID {
			result = append(result, *task)
		}
	}
	return result, nil
}

func (r *fakeTaskRepo) GetAssigned(ctx context.Context, taskID int64, kidID string) (*Task, error) {
	task, ok := r.tasks[taskID]
	if !ok || task.AssignedKidID != kidID {
		return nil, ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *Task) error {
	task.ID = r.nextID
	r.nextID++
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) MarkComplete(ctx context.Context, taskID int64, completedAt time.Time) error {
	task, ok := r.tasks[taskID]
	if !ok {
		return ErrTaskNotFound
	}
	if task.IsComplete {
		return nil
	}
	task.IsComplete = true
	task.CompletedAt = &completedAt
	return nil
}

func (r *fakeTaskRepo) DeleteCreated(ctx context.Context, taskID int64, parentID string) error {
	task, ok := r.tasks[taskID]
	if !ok || task.CreatedByParentID != parentID {
		return ErrTaskNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

func (r *fakeTaskRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.tasks)), nil
}

type fakeOwnership struct {
	owned map[string]string // kid id -> parent id
}

func (o *fakeOwnership) IsOwnedKid(ctx context.Context, kidID, parentID string) (bool, error) {
	return o.owned[kidID] == parentID, nil
}

type spyInvalidator struct {
	invalidated []string
}

func (s *spyInvalidator) Invalidate(kidID string) {
	s.invalidated = append(s.invalidated, kidID)
}

func newTaskService() (*Service, *fakeTaskRepo, *fakeOwnership, *spyInvalidator) {
	repo := newFakeTaskRepo()
	ownership := &fakeOwnership{owned: make(map[string]string)}
	invalidator := &spyInvalidator{}
	return NewService(repo, ownership, invalidator), repo, ownership, invalidator
}

func TestCreateTask(t *testing.T) {
	svc, _, ownership, _ := newTaskService()
	ownership.owned["kid-1"] = "parent-1"

	task, err := svc.Create(context.Background(), "parent-1", CreateInput{
		Title:         "  Brush Teeth  ",
		Points:        50,
		AssignedKidID: "kid-1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if task.Title != "Brush Teeth" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if task.IsComplete || task.CompletedAt != nil {
		t.Fatalf("new task must be incomplete, got %+v", task)
	}
}

func TestCreateTaskUnownedKid(t *testing.T) {
	svc, _, ownership, _ := newTaskService()
	ownership.owned["kid-1"] = "parent-2"

	_, err := svc.Create(context.Background(), "parent-1", CreateInput{
		Title:         "Homework",
		Points:        50,
		AssignedKidID: "kid-1",
	})
	if !errors.Is(err, ErrUnknownKid) {
		t.Fatalf("expected ErrUnknownKid, got %v", err)
	}
}

func TestCreateTaskNegativePoints(t *testing.T) {
	svc, _, ownership, _ := newTaskService()
	ownership.owned["kid-1"] = "parent-1"

	_, err := svc.Create(context.Background(), "parent-1", CreateInput{
		Title:         "Homework",
		Points:        -1,
		AssignedKidID: "kid-1",
	})
	if !errors.Is(err, ErrInvalidPoints) {
		t.Fatalf("expected ErrInvalidPoints, got %v", err)
	}
}

func TestListForParentUnownedKidFilter(t *testing.T) {
	svc, _, ownership, _ := newTaskService()
	ownership.owned["kid-1"] = "parent-2"

	_, err := svc.ListForParent(context.Background(), "parent-1", "kid-1")
	if !errors.Is(err, ErrUnknownKid) {
		t.Fatalf("expected ErrUnknownKid, got %v", err)
	}
}

func TestListForParentDefaultsToCreated(t *testing.T) {
	svc, repo, _, _ := newTaskService()
	repo.tasks[1] = &Task{ID: 1, Title: "A", AssignedKidID: "kid-1", CreatedByParentID: "parent-1"}
	repo.tasks[2] = &Task{ID: 2, Title: "B", AssignedKidID: "kid-2", CreatedByParentID: "parent-2"}
	repo.nextID = 3

	tasks, err := svc.ListForParent(context.Background(), "parent-1", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != 1 {
		t.Fatalf("expected only parent-1's task, got %+v", tasks)
	}
}

func TestListForKidScoped(t *testing.T) {
	svc, repo, _, _ := newTaskService()
	repo.tasks[1] = &Task{ID: 1, Title: "A", AssignedKidID: "kid-1", CreatedByParentID: "parent-1"}
	repo.tasks[2] = &Task{ID: 2, Title: "B", AssignedKidID: "kid-2", CreatedByParentID: "parent-1"}
	repo.nextID = 3

	tasks, err := svc.ListForKid(context.Background(), "kid-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != 1 {
		t.Fatalf("expected only kid-1's task, got %+v", tasks)
	}
}

func TestCompleteTask(t *testing.T) {
	svc, repo, _, invalidator := newTaskService()
	repo.tasks[1] = &Task{ID: 1, Title: "A", Points: 50, AssignedKidID: "kid-1", CreatedByParentID: "parent-1"}
	repo.nextID = 2

	task, err := svc.Complete(context.Background(), 1, "kid-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !task.IsComplete || task.CompletedAt == nil {
		t.Fatalf("expected completed task with timestamp, got %+v", task)
	}
	if len(invalidator.invalidated) != 1 || invalidator.invalidated[0] != "kid-1" {
		t.Fatalf("expected balance invalidated for kid-1, got %v", invalidator.invalidated)
	}
}

func TestCompleteTaskIdempotent(t *testing.T) {
	svc, repo, _, invalidator := newTaskService()
	repo.tasks[1] = &Task{ID: 1, Title: "A", Points: 50, AssignedKidID: "kid-1", CreatedByParentID: "parent-1"}
	repo.nextID = 2

	first, err := svc.Complete(context.Background(), 1, "kid-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	firstStamp := *first.CompletedAt

	second, err := svc.Complete(context.Background(), 1, "kid-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !second.IsComplete {
		t.Fatalf("expected task to stay complete")
	}
	if !second.CompletedAt.Equal(firstStamp) {
		t.Fatalf("expected completion timestamp unchanged, got %v then %v", firstStamp, second.CompletedAt)
	}
	if len(invalidator.invalidated) != 1 {
		t.Fatalf("expected exactly one invalidation, got %v", invalidator.invalidated)
	}
}

func TestCompleteTaskOtherKid(t *testing.T) {
	svc, repo, _, _ := newTaskService()
	repo.tasks[1] = &Task{ID: 1, Title: "A", Points: 50, AssignedKidID: "kid-2", CreatedByParentID: "parent-1"}
	repo.nextID = 2

	_, err := svc.Complete(context.Background(), 1, "kid-1")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if repo.tasks[1].IsComplete {
		t.Fatalf("task must not be completed by a different kid")
	}
}

func TestDeleteTaskNotCreator(t *testing.T) {
	svc, repo, _, _ := newTaskService()
	repo.tasks[1] = &Task{ID: 1, Title: "A", AssignedKidID: "kid-1", CreatedByParentID: "parent-2"}
	repo.nextID = 2

	err := svc.Delete(context.Background(), 1, "parent-1")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if _, ok := repo.tasks[1]; !ok {
		t.Fatalf("task must not be deleted by a non-creator")
	}
}
