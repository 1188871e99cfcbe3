package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/lifecycle"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeClock returns a fixed instant that tests move forward explicitly
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func strPtr(s string) *string {
	return &s
}

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	clock   *fakeClock
	service *TaskService
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = database.OpenSQLite(":memory:", logger.Silent)
	suite.Require().NoError(err)
	suite.Require().NoError(database.Migrate(suite.db))

	suite.clock = &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	suite.service = NewTaskService(repository.NewStore(suite.db), suite.clock.Now)
}

// TearDownTest runs after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskServiceTestSuite) activityCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&models.ActivityEntry{}).Count(&count).Error)
	return count
}

func (suite *TaskServiceTestSuite) assertCompletionInvariant(task *models.Task) {
	if task.Stage == models.StageDone {
		suite.NotNil(task.CompletedAt)
	} else {
		suite.Nil(task.CompletedAt)
	}
}

func (suite *TaskServiceTestSuite) TestCreateTask_Defaults() {
	task, err := suite.service.CreateTask(lifecycle.Draft{Title: "Fix login"})
	suite.Require().NoError(err)

	suite.NotZero(task.ID)
	suite.Equal(models.StageBacklog, task.Stage)
	suite.Equal("general", task.Project)
	suite.Equal(models.PriorityNormal, task.Priority)
	suite.Equal("", task.Description)
	suite.Nil(task.CompletedAt)

	entries, err := suite.service.RecentActivity(0)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(models.ActionCreated, entries[0].Action)
	suite.Equal("Created: Fix login", entries[0].Details)
	suite.Require().NotNil(entries[0].TaskID)
	suite.Equal(task.ID, *entries[0].TaskID)
}

func (suite *TaskServiceTestSuite) TestCreateTask_EmptyTitleWritesNothing() {
	_, err := suite.service.CreateTask(lifecycle.Draft{Title: ""})
	suite.ErrorIs(err, lifecycle.ErrEmptyTitle)

	_, err = suite.service.CreateTask(lifecycle.Draft{Title: "x", Stage: "archived"})
	suite.ErrorIs(err, lifecycle.ErrInvalidStage)

	tasks, err := suite.service.ListTasks()
	suite.Require().NoError(err)
	suite.Empty(tasks)
	suite.Zero(suite.activityCount())
}

func (suite *TaskServiceTestSuite) TestUpdateTask_Transitions() {
	task, err := suite.service.CreateTask(lifecycle.Draft{Title: "Fix login"})
	suite.Require().NoError(err)

	suite.clock.Advance(time.Minute)
	task, err = suite.service.UpdateTask(task.ID, lifecycle.Patch{Stage: strPtr("in_progress")})
	suite.Require().NoError(err)
	suite.assertCompletionInvariant(task)

	suite.clock.Advance(time.Minute)
	doneAt := suite.clock.Now()
	task, err = suite.service.UpdateTask(task.ID, lifecycle.Patch{Stage: strPtr("done")})
	suite.Require().NoError(err)
	suite.assertCompletionInvariant(task)
	suite.WithinDuration(doneAt, *task.CompletedAt, time.Millisecond)

	suite.clock.Advance(time.Minute)
	task, err = suite.service.UpdateTask(task.ID, lifecycle.Patch{Stage: strPtr("review")})
	suite.Require().NoError(err)
	suite.assertCompletionInvariant(task)

	stored, err := suite.service.GetTask(task.ID)
	suite.Require().NoError(err)
	suite.Equal(models.StageReview, stored.Stage)
	suite.Nil(stored.CompletedAt)

	history, err := suite.service.TaskActivity(task.ID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 4)
	suite.Equal("Moved: Fix login → review", history[0].Details)
	suite.Equal(models.ActionMoved, history[0].Action)
	suite.Equal("Completed: Fix login", history[1].Details)
	suite.Equal(models.ActionCompleted, history[1].Action)
	suite.Equal("Started: Fix login", history[2].Details)
	suite.Equal("Created: Fix login", history[3].Details)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_DescriptionOnly() {
	task, err := suite.service.CreateTask(lifecycle.Draft{Title: "Fix login"})
	suite.Require().NoError(err)
	before := suite.activityCount()

	suite.clock.Advance(time.Hour)
	updated, err := suite.service.UpdateTask(task.ID, lifecycle.Patch{Description: strPtr("repro steps")})
	suite.Require().NoError(err)

	suite.Equal("repro steps", updated.Description)
	suite.WithinDuration(suite.clock.Now(), updated.UpdatedAt, time.Millisecond)
	suite.WithinDuration(task.CreatedAt, updated.CreatedAt, time.Millisecond)
	suite.Equal(before, suite.activityCount())
}

func (suite *TaskServiceTestSuite) TestUpdateTask_NotFound() {
	_, err := suite.service.UpdateTask(404, lifecycle.Patch{Stage: strPtr("done")})
	suite.ErrorIs(err, ErrTaskNotFound)
	suite.Zero(suite.activityCount())
}

func (suite *TaskServiceTestSuite) TestUpdateTask_InvalidInputLeavesTaskUntouched() {
	task, err := suite.service.CreateTask(lifecycle.Draft{Title: "Fix login"})
	suite.Require().NoError(err)

	_, err = suite.service.UpdateTask(task.ID, lifecycle.Patch{Stage: strPtr("blocked")})
	suite.ErrorIs(err, lifecycle.ErrInvalidStage)

	_, err = suite.service.UpdateTask(task.ID, lifecycle.Patch{Priority: strPtr("meh"), Stage: strPtr("done")})
	suite.ErrorIs(err, lifecycle.ErrInvalidPriority)

	_, err = suite.service.UpdateTask(task.ID, lifecycle.Patch{Title: strPtr("  ")})
	suite.ErrorIs(err, lifecycle.ErrEmptyTitle)

	stored, err := suite.service.GetTask(task.ID)
	suite.Require().NoError(err)
	suite.Equal(models.StageBacklog, stored.Stage)
	suite.Equal("Fix login", stored.Title)
	suite.Equal(int64(1), suite.activityCount())
}

func (suite *TaskServiceTestSuite) TestUpdateTask_ConcurrentTransitionsBothLogged() {
	task, err := suite.service.CreateTask(lifecycle.Draft{Title: "Race"})
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, stage := range []string{"in_progress", "done"} {
		wg.Add(1)
		go func(i int, stage string) {
			defer wg.Done()
			_, errs[i] = suite.service.UpdateTask(task.ID, lifecycle.Patch{Stage: strPtr(stage)})
		}(i, stage)
	}
	wg.Wait()

	suite.NoError(errs[0])
	suite.NoError(errs[1])

	history, err := suite.service.TaskActivity(task.ID)
	suite.Require().NoError(err)
	suite.Len(history, 3)

	stored, err := suite.service.GetTask(task.ID)
	suite.Require().NoError(err)
	suite.assertCompletionInvariant(stored)
}

func (suite *TaskServiceTestSuite) TestListTasks_NewestFirst() {
	first, err := suite.service.CreateTask(lifecycle.Draft{Title: "first"})
	suite.Require().NoError(err)
	// Same instant: ID decides
	second, err := suite.service.CreateTask(lifecycle.Draft{Title: "second"})
	suite.Require().NoError(err)
	suite.clock.Advance(time.Second)
	third, err := suite.service.CreateTask(lifecycle.Draft{Title: "third"})
	suite.Require().NoError(err)

	tasks, err := suite.service.ListTasks()
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 3)
	suite.Equal(third.ID, tasks[0].ID)
	suite.Equal(second.ID, tasks[1].ID)
	suite.Equal(first.ID, tasks[2].ID)
}

func (suite *TaskServiceTestSuite) TestStats() {
	stats, err := suite.service.Stats()
	suite.Require().NoError(err)
	suite.Equal(0, stats.Total)
	suite.Equal(0, stats.Completion)

	var ids []uint64
	for _, title := range []string{"a", "b", "c", "d"} {
		task, err := suite.service.CreateTask(lifecycle.Draft{Title: title})
		suite.Require().NoError(err)
		ids = append(ids, task.ID)
	}
	_, err = suite.service.UpdateTask(ids[0], lifecycle.Patch{Stage: strPtr("done")})
	suite.Require().NoError(err)
	_, err = suite.service.UpdateTask(ids[1], lifecycle.Patch{Stage: strPtr("in_progress")})
	suite.Require().NoError(err)

	stats, err = suite.service.Stats()
	suite.Require().NoError(err)
	suite.Equal(4, stats.Total)
	suite.Equal(1, stats.InProgress)
	suite.Equal(25, stats.Completion)
	suite.Equal(4, stats.ThisWeek)

	suite.clock.Advance(8 * 24 * time.Hour)
	stats, err = suite.service.Stats()
	suite.Require().NoError(err)
	suite.Equal(0, stats.ThisWeek)
}

func (suite *TaskServiceTestSuite) TestRecentActivity_Limit() {
	for _, title := range []string{"a", "b", "c"} {
		_, err := suite.service.CreateTask(lifecycle.Draft{Title: title})
		suite.Require().NoError(err)
		suite.clock.Advance(time.Second)
	}

	entries, err := suite.service.RecentActivity(2)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("Created: c", entries[0].Details)
	suite.Equal("Created: b", entries[1].Details)

	entries, err = suite.service.RecentActivity(-1)
	suite.Require().NoError(err)
	suite.Len(entries, 3)
}

func (suite *TaskServiceTestSuite) TestTaskActivity_NotFound() {
	_, err := suite.service.TaskActivity(77)
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestLogExternalActivity() {
	entry, err := suite.service.LogExternalActivity("deploybot", "released v1.2")
	suite.Require().NoError(err)
	suite.Equal(models.ActionExternal, entry.Action)
	suite.Equal("[deploybot] released v1.2", entry.Details)
	suite.Nil(entry.TaskID)

	entry, err = suite.service.LogExternalActivity("", "ping")
	suite.Require().NoError(err)
	suite.Equal("[system] ping", entry.Details)

	_, err = suite.service.LogExternalActivity("x", " ")
	suite.ErrorIs(err, ErrDetailsRequired)

	tasks, err := suite.service.ListTasks()
	suite.Require().NoError(err)
	suite.Empty(tasks)
}

// TestTaskServiceTestSuite runs the test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}

func TestClassifyError(t *testing.T) {
	assert.ErrorIs(t, classifyError(gorm.ErrRecordNotFound), ErrTaskNotFound)
	assert.ErrorIs(t, classifyError(lifecycle.ErrInvalidStage), lifecycle.ErrInvalidStage)
	assert.ErrorIs(t, classifyError(gorm.ErrInvalidTransaction), ErrStoreUnavailable)
	assert.NotErrorIs(t, classifyError(gorm.ErrInvalidTransaction), ErrTaskNotFound)
}
