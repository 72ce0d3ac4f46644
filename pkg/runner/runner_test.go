package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cmdassist"
	"github.com/aretw0/cmdassist/pkg/adapters/memory"
	"github.com/aretw0/cmdassist/pkg/domain"
)

// MockHandler simulates an IOHandler
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Output(ctx context.Context, screen domain.Screen) error {
	args := m.Called(ctx, screen)
	return args.Error(0)
}

func (m *MockHandler) Input(ctx context.Context, screen domain.Screen) (string, error) {
	args := m.Called(ctx, screen)
	return args.String(0), args.Error(1)
}

func (m *MockHandler) SystemOutput(ctx context.Context, msg string) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func newEngine(t *testing.T) *cmdassist.Engine {
	t.Helper()
	eng, err := cmdassist.New()
	require.NoError(t, err)
	return eng
}

func stepIs(step domain.Step) any {
	return mock.MatchedBy(func(s domain.Screen) bool { return s.Step == step })
}

func TestRunner_Run_BasicFlow(t *testing.T) {
	eng := newEngine(t)
	outputBuf := &bytes.Buffer{}
	inputBuf := strings.NewReader("linux\n1\nquit\n")

	r := NewRunner(WithInputHandler(NewTextHandler(outputBuf, WithInputReader(inputBuf))))

	done := make(chan *domain.State)
	go func() {
		state, err := r.Run(t.Context(), eng, nil)
		assert.NoError(t, err)
		done <- state
	}()

	select {
	case state := <-done:
		require.NotNil(t, state)
		assert.Equal(t, domain.StepResult, state.Step)
		assert.Equal(t, "Network Commands", state.PlatformAction)
	case <-time.After(2 * time.Second):
		t.Fatal("Runner timed out")
	}

	output := outputBuf.String()
	assert.Contains(t, output, "Command Assist")
	assert.Contains(t, output, "Linux Commands")
	assert.Contains(t, output, "ip addr show")
}

func TestRunner_Run_IgnoredInput(t *testing.T) {
	eng := newEngine(t)
	handler := new(MockHandler)

	handler.On("Output", mock.Anything, stepIs(domain.StepPlatformSelection)).Return(nil).Once()
	handler.On("Input", mock.Anything, mock.Anything).Return("solaris", nil).Once()
	handler.On("SystemOutput", mock.Anything, `"solaris" is not an option here.`).Return(nil).Once()
	handler.On("Input", mock.Anything, mock.Anything).Return("", io.EOF).Once()

	r := NewRunner(WithInputHandler(handler))
	state, err := r.Run(context.Background(), eng, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StepPlatformSelection, state.Step)

	// an ignored input does not re-render
	handler.AssertExpectations(t)
	handler.AssertNumberOfCalls(t, "Output", 1)
}

func TestRunner_Run_BackAndRestart(t *testing.T) {
	eng := newEngine(t)
	handler := new(MockHandler)

	handler.On("Output", mock.Anything, mock.Anything).Return(nil)
	for _, line := range []string{"router", "cisco", "back", "restart"} {
		handler.On("Input", mock.Anything, mock.Anything).Return(line, nil).Once()
	}
	handler.On("Input", mock.Anything, mock.Anything).Return("", io.EOF).Once()

	r := NewRunner(WithInputHandler(handler))
	state, err := r.Run(context.Background(), eng, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.StepPlatformSelection, state.Step)
	assert.Empty(t, state.History)
	handler.AssertNumberOfCalls(t, "Output", 5)
	handler.AssertCalled(t, "Output", mock.Anything, stepIs(domain.StepVendorCategoryBrowse))
}

func TestRunner_Run_PersistsState(t *testing.T) {
	eng := newEngine(t)
	store := memory.NewStore()
	handler := new(MockHandler)

	handler.On("Output", mock.Anything, mock.Anything).Return(nil)
	handler.On("Input", mock.Anything, mock.Anything).Return("firewall", nil).Once()
	handler.On("Input", mock.Anything, mock.Anything).Return("", io.EOF).Once()

	r := NewRunner(WithInputHandler(handler), WithStore(store), WithSessionID("s1"))
	_, err := r.Run(context.Background(), eng, nil)
	require.NoError(t, err)

	saved, err := store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepVendorSelection, saved.Step)
	assert.Equal(t, string(domain.DeviceFirewall), saved.Platform)
}

func TestRunner_Run_ResumesInitialState(t *testing.T) {
	eng := newEngine(t)
	handler := new(MockHandler)

	initial := domain.NewState()
	initial.Step = domain.StepVendorSelection
	initial.Platform = string(domain.DeviceSwitch)
	initial.Push(domain.StepPlatformSelection)

	handler.On("Output", mock.Anything, stepIs(domain.StepVendorSelection)).Return(nil).Once()
	handler.On("Input", mock.Anything, mock.Anything).Return("", context.Canceled).Once()

	r := NewRunner(WithInputHandler(handler))
	state, err := r.Run(context.Background(), eng, initial)
	require.NoError(t, err)
	assert.Equal(t, domain.StepVendorSelection, state.Step)
	handler.AssertExpectations(t)
}

func TestRunner_Run_UnrenderableState(t *testing.T) {
	eng := newEngine(t)
	handler := new(MockHandler)

	broken := domain.NewState()
	broken.Step = domain.StepPlatformAction

	handler.On("SystemOutput", mock.Anything, mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "restart")
	})).Return(nil).Once()
	handler.On("Input", mock.Anything, mock.Anything).Return("restart", nil).Once()
	handler.On("Output", mock.Anything, stepIs(domain.StepPlatformSelection)).Return(nil).Once()
	handler.On("Input", mock.Anything, mock.Anything).Return("", io.EOF).Once()

	r := NewRunner(WithInputHandler(handler))
	state, err := r.Run(context.Background(), eng, broken)
	require.NoError(t, err)
	assert.Equal(t, domain.StepPlatformSelection, state.Step)
	handler.AssertExpectations(t)
}

func TestNavigateAndRender(t *testing.T) {
	eng := newEngine(t)
	ctx := context.Background()
	state := eng.Start(ctx, "rich")

	resp := NavigateAndRender(ctx, eng, state, domain.Select("windows"))
	assert.True(t, resp.Moved)
	require.NotNil(t, resp.Screen)
	assert.Equal(t, domain.StepPlatformAction, resp.Screen.Step)

	resp = NavigateAndRender(ctx, eng, resp.State, domain.Select("nope"))
	assert.False(t, resp.Moved)
	require.NotNil(t, resp.Screen)
	assert.Equal(t, domain.StepPlatformAction, resp.Screen.Step)

	broken := domain.NewState()
	broken.Step = domain.StepVendorAction
	assert.Nil(t, RenderState(ctx, eng, broken).Screen)
}
