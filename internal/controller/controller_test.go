package controller_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/controller"
	"todo/internal/tasks"
	"todo/internal/testutil"
)

func newController(st *testutil.FakeStorage, items ...string) (*controller.Controller, *tasks.Store) {
	store := tasks.NewStore(items...)
	return controller.New(store, st, nil), store
}

func handle(t *testing.T, c *controller.Controller, ev controller.Event) controller.Reply {
	t.Helper()
	r, err := c.Handle(context.Background(), ev)
	require.NoError(t, err)
	return r
}

func TestAdd(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage())

	r := handle(t, c, controller.AddRequested{Text: "  buy milk "})

	assert.Nil(t, r.Notice)
	assert.Nil(t, r.Prompt)
	assert.True(t, r.Changed)
	assert.True(t, r.ClearInput)
	assert.Equal(t, []string{"buy milk"}, r.Tasks)
	assert.Equal(t, "Tasks: 1", r.Status)
	assert.Equal(t, 1, store.Len())
}

func TestAdd_Blank(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage(), "a")

	for _, text := range []string{"", "   ", "\t"} {
		r := handle(t, c, controller.AddRequested{Text: text})

		require.NotNil(t, r.Notice)
		assert.Equal(t, controller.SeverityWarning, r.Notice.Severity)
		assert.Equal(t, "Enter a non-empty task.", r.Notice.Text)
		assert.False(t, r.Changed)
		assert.False(t, r.ClearInput)
		assert.Equal(t, 1, store.Len())
	}
}

func TestDelete_NoSelection(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage(), "a", "b")

	r := handle(t, c, controller.DeleteRequested{})

	require.NotNil(t, r.Notice)
	assert.Equal(t, controller.SeverityInfo, r.Notice.Severity)
	assert.Equal(t, "Select at least one task to delete.", r.Notice.Text)
	assert.Nil(t, r.Prompt)
	assert.False(t, c.Waiting())
	assert.Equal(t, []string{"a", "b"}, store.All())
}

func TestDelete_Confirmed(t *testing.T) {
	c, _ := newController(testutil.NewFakeStorage(), "a", "b", "c", "d")

	r := handle(t, c, controller.DeleteRequested{Selection: []int{0, 2}})
	require.NotNil(t, r.Prompt)
	assert.Equal(t, controller.PromptConfirm, r.Prompt.Kind)
	assert.Equal(t, "Delete selected task(s)?", r.Prompt.Text)
	assert.Equal(t, []string{"a", "b", "c", "d"}, r.Tasks)

	r = handle(t, c, controller.Confirmed{Yes: true})
	assert.True(t, r.Changed)
	assert.Equal(t, []string{"b", "d"}, r.Tasks)
	assert.Equal(t, "Tasks: 2", r.Status)
}

func TestDelete_Declined(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage(), "a", "b")

	handle(t, c, controller.DeleteRequested{Selection: []int{1}})
	r := handle(t, c, controller.Confirmed{Yes: false})

	assert.False(t, r.Changed)
	assert.Equal(t, []string{"a", "b"}, store.All())
	assert.False(t, c.Waiting())
}

func TestDelete_InvalidSelection(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage(), "a")

	_, err := c.Handle(context.Background(), controller.DeleteRequested{Selection: []int{3}})
	require.ErrorIs(t, err, tasks.ErrIndexOutOfRange)
	assert.Equal(t, 1, store.Len())
}

func TestEdit_RequiresSingleSelection(t *testing.T) {
	c, _ := newController(testutil.NewFakeStorage(), "a", "b")

	for _, sel := range [][]int{nil, {0, 1}} {
		r := handle(t, c, controller.EditRequested{Selection: sel})
		require.NotNil(t, r.Notice)
		assert.Equal(t, "Select a single task to edit (double-click also works).", r.Notice.Text)
		assert.Nil(t, r.Prompt)
	}
}

func TestEdit_Replaces(t *testing.T) {
	c, _ := newController(testutil.NewFakeStorage(), "a", "b")

	r := handle(t, c, controller.EditRequested{Selection: []int{1}})
	require.NotNil(t, r.Prompt)
	assert.Equal(t, controller.PromptInput, r.Prompt.Kind)
	assert.Equal(t, "Edit task:", r.Prompt.Text)
	assert.Equal(t, "b", r.Prompt.Initial)

	r = handle(t, c, controller.InputSubmitted{Text: "  new  "})
	assert.True(t, r.Changed)
	assert.Equal(t, []string{"a", "new"}, r.Tasks)
}

func TestRowActivated_BlankKeepsValue(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage(), "a", "b")

	handle(t, c, controller.RowActivated{Index: 0})
	r := handle(t, c, controller.InputSubmitted{Text: "   "})

	require.NotNil(t, r.Notice)
	assert.Equal(t, controller.SeverityWarning, r.Notice.Severity)
	assert.Equal(t, "Task cannot be empty.", r.Notice.Text)
	assert.Equal(t, []string{"a", "b"}, store.All())
}

func TestRowActivated_Cancelled(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage(), "a")

	handle(t, c, controller.RowActivated{Index: 0})
	r := handle(t, c, controller.InputSubmitted{Text: "changed", Cancelled: true})

	assert.Nil(t, r.Notice)
	assert.False(t, r.Changed)
	assert.Equal(t, []string{"a"}, store.All())
}

func TestRowActivated_OutOfRange(t *testing.T) {
	c, _ := newController(testutil.NewFakeStorage(), "a")

	_, err := c.Handle(context.Background(), controller.RowActivated{Index: 1})
	require.ErrorIs(t, err, tasks.ErrIndexOutOfRange)
}

func TestClear(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage(), "a", "b")

	r := handle(t, c, controller.ClearRequested{})
	require.NotNil(t, r.Prompt)
	assert.Equal(t, "Clear ALL tasks?", r.Prompt.Text)

	r = handle(t, c, controller.Confirmed{Yes: true})
	assert.True(t, r.Changed)
	assert.Empty(t, r.Tasks)
	assert.Equal(t, "Tasks: 0", r.Status)
	assert.Equal(t, 0, store.Len())
}

func TestClear_EmptyIsNoop(t *testing.T) {
	c, _ := newController(testutil.NewFakeStorage())

	r := handle(t, c, controller.ClearRequested{})
	assert.Nil(t, r.Prompt)
	assert.Nil(t, r.Notice)
	assert.False(t, c.Waiting())
}

func TestAnswerWithoutPrompt_Ignored(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage(), "a")

	handle(t, c, controller.Confirmed{Yes: true})
	handle(t, c, controller.InputSubmitted{Text: "x"})
	r := handle(t, c, controller.ExitChosen{Choice: controller.ExitWithoutSaving})

	assert.False(t, r.Quit)
	assert.Equal(t, []string{"a"}, store.All())
}

func TestNewGestureDiscardsPrompt(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage(), "a", "b")

	handle(t, c, controller.DeleteRequested{Selection: []int{0}})
	handle(t, c, controller.AddRequested{Text: "c"})
	handle(t, c, controller.Confirmed{Yes: true})

	assert.Equal(t, []string{"a", "b", "c"}, store.All())
}

func TestSave(t *testing.T) {
	st := testutil.NewFakeStorage()
	c, _ := newController(st, "buy milk", "walk dog")

	r := handle(t, c, controller.SaveRequested{})

	require.NotNil(t, r.Notice)
	assert.Equal(t, controller.SeverityInfo, r.Notice.Severity)
	assert.Equal(t, "Tasks saved to tasks.txt", r.Notice.Text)
	assert.Equal(t, []string{"buy milk", "walk dog"}, st.Saved())
}

func TestSave_Error(t *testing.T) {
	st := testutil.NewFakeStorage()
	st.SaveErr = testutil.ErrDiskFull
	c, store := newController(st, "a")

	r := handle(t, c, controller.SaveRequested{})

	require.NotNil(t, r.Notice)
	assert.Equal(t, controller.SeverityError, r.Notice.Severity)
	assert.Equal(t, "Error saving tasks: no space left on device", r.Notice.Text)
	assert.Equal(t, []string{"a"}, store.All())
}

func TestLoad_Missing(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage(), "keep")

	r := handle(t, c, controller.LoadRequested{})

	require.NotNil(t, r.Notice)
	assert.Equal(t, "tasks.txt not found. Nothing loaded.", r.Notice.Text)
	assert.Equal(t, []string{"keep"}, store.All())
}

func TestLoad_ReplacesAndFiltersBlank(t *testing.T) {
	st := testutil.NewFakeStorageWith("a", "", "  ", "b")
	c, _ := newController(st, "old")

	r := handle(t, c, controller.LoadRequested{})

	require.NotNil(t, r.Notice)
	assert.Equal(t, "Tasks loaded from tasks.txt", r.Notice.Text)
	assert.True(t, r.Changed)
	assert.Equal(t, []string{"a", "b"}, r.Tasks)
	assert.Equal(t, "Tasks: 2", r.Status)
}

func TestLoad_ErrorKeepsStore(t *testing.T) {
	st := testutil.NewFakeStorageWith("a")
	st.LoadErr = testutil.ErrDiskFull
	c, store := newController(st, "old")

	r := handle(t, c, controller.LoadRequested{})

	require.NotNil(t, r.Notice)
	assert.Equal(t, controller.SeverityError, r.Notice.Severity)
	assert.Equal(t, "Error loading tasks: no space left on device", r.Notice.Text)
	assert.Equal(t, []string{"old"}, store.All())
}

func TestStartupLoad_Restart(t *testing.T) {
	st := testutil.NewFakeStorage()
	first, _ := newController(st)
	handle(t, first, controller.AddRequested{Text: "buy milk"})
	handle(t, first, controller.AddRequested{Text: "walk dog"})
	handle(t, first, controller.SaveRequested{})

	second, _ := newController(st)
	r := second.StartupLoad(context.Background())

	assert.Nil(t, r.Notice)
	assert.Equal(t, []string{"buy milk", "walk dog"}, r.Tasks)
	assert.Equal(t, "Tasks: 2", r.Status)
}

func TestStartupLoad_SilentOnFailure(t *testing.T) {
	st := testutil.NewFakeStorageWith("a")
	st.LoadErr = testutil.ErrDiskFull
	c, store := newController(st)

	r := c.StartupLoad(context.Background())

	assert.Nil(t, r.Notice)
	assert.Nil(t, r.Prompt)
	assert.Equal(t, 0, store.Len())

	st.ExistsErr = testutil.ErrDiskFull
	r = c.StartupLoad(context.Background())
	assert.Nil(t, r.Notice)
}

func TestStartupLoad_Missing(t *testing.T) {
	c, store := newController(testutil.NewFakeStorage())

	r := c.StartupLoad(context.Background())
	assert.Nil(t, r.Notice)
	assert.Equal(t, "Tasks: 0", r.Status)
	assert.Equal(t, 0, store.Len())
}

func TestExit_Prompt(t *testing.T) {
	c, _ := newController(testutil.NewFakeStorage())

	r := handle(t, c, controller.CloseRequested{})
	require.NotNil(t, r.Prompt)
	assert.Equal(t, controller.PromptExit, r.Prompt.Kind)
	assert.Equal(t, "Do you want to save tasks before exit?", r.Prompt.Text)
	assert.False(t, r.Quit)
}

func TestExit_Choices(t *testing.T) {
	tests := []struct {
		name      string
		choice    controller.ExitChoice
		saveErr   error
		wantQuit  bool
		wantSaved bool
		wantError bool
	}{
		{"save and exit", controller.SaveAndExit, nil, true, true, false},
		{"save fails, exit anyway", controller.SaveAndExit, testutil.ErrDiskFull, true, false, true},
		{"discard", controller.ExitWithoutSaving, nil, true, false, false},
		{"cancel", controller.CancelExit, nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testutil.NewFakeStorage()
			st.SaveErr = tt.saveErr
			c, _ := newController(st, "a")

			handle(t, c, controller.CloseRequested{})
			r := handle(t, c, controller.ExitChosen{Choice: tt.choice})

			assert.Equal(t, tt.wantQuit, r.Quit)
			assert.Equal(t, tt.wantSaved, st.Present())
			if tt.wantError {
				require.NotNil(t, r.Notice)
				assert.Equal(t, controller.SeverityError, r.Notice.Severity)
			} else {
				assert.Nil(t, r.Notice)
			}
			assert.False(t, c.Waiting())
		})
	}
}
