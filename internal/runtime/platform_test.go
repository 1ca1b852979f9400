package runtime_test

import (
	"fmt"

	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/aretw0/micromouse/pkg/ports"
	"github.com/stretchr/testify/mock"
)

// mockPlatform is a testify mock of ports.Platform for exact call expectations.
type mockPlatform struct {
	mock.Mock
}

var _ ports.Platform = (*mockPlatform)(nil)

func newMockPlatform(width, height int) *mockPlatform {
	m := &mockPlatform{}
	m.On("MazeWidth").Return(width).Once()
	m.On("MazeHeight").Return(height).Once()
	return m
}

func (m *mockPlatform) MazeWidth() int { return m.Called().Int(0) }
func (m *mockPlatform) MazeHeight() int { return m.Called().Int(0) }
func (m *mockPlatform) WallFront() bool { return m.Called().Bool(0) }
func (m *mockPlatform) WallLeft() bool { return m.Called().Bool(0) }
func (m *mockPlatform) WallRight() bool { return m.Called().Bool(0) }
func (m *mockPlatform) MoveForward() bool { return m.Called().Bool(0) }
func (m *mockPlatform) TurnLeft() { m.Called() }
func (m *mockPlatform) TurnRight() { m.Called() }
func (m *mockPlatform) SetText(x, y int, s string) { m.Called(x, y, s) }
func (m *mockPlatform) SetColor(x, y int, c byte) { m.Called(x, y, c) }
func (m *mockPlatform) SetWall(x, y int, side byte) { m.Called(x, y, side) }
func (m *mockPlatform) AckReset() { m.Called() }

// openLeftPlatform always reports the left side open and lets every move succeed.
// It records calls as strings so traces can be compared directly.
type openLeftPlatform struct {
	width, height int
	calls         []string
}

func (p *openLeftPlatform) MazeWidth() int  { return p.width }
func (p *openLeftPlatform) MazeHeight() int { return p.height }
func (p *openLeftPlatform) WallFront() bool { return true }
func (p *openLeftPlatform) WallLeft() bool  { return false }
func (p *openLeftPlatform) WallRight() bool { return true }
func (p *openLeftPlatform) MoveForward() bool {
	p.calls = append(p.calls, "move")
	return true
}
func (p *openLeftPlatform) TurnLeft()  { p.calls = append(p.calls, "left") }
func (p *openLeftPlatform) TurnRight() { p.calls = append(p.calls, "right") }
func (p *openLeftPlatform) SetText(x, y int, s string) {
	p.calls = append(p.calls, fmt.Sprintf("text %d %d %s", x, y, s))
}
func (p *openLeftPlatform) SetColor(x, y int, c byte) {
	p.calls = append(p.calls, fmt.Sprintf("color %d %d %c", x, y, c))
}
func (p *openLeftPlatform) SetWall(x, y int, side byte) {
	p.calls = append(p.calls, fmt.Sprintf("wall %d %d %c", x, y, side))
}
func (p *openLeftPlatform) AckReset() { p.calls = append(p.calls, "ack") }

// eventRecorder collects lifecycle events.
type eventRecorder struct {
	turns    []domain.TurnEvent
	moves    []domain.MoveEvent
	deadEnds []domain.DeadEndEvent
	goals    []domain.GoalEvent
}

func (r *eventRecorder) hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurn:    func(e *domain.TurnEvent) { r.turns = append(r.turns, *e) },
		OnMove:    func(e *domain.MoveEvent) { r.moves = append(r.moves, *e) },
		OnDeadEnd: func(e *domain.DeadEndEvent) { r.deadEnds = append(r.deadEnds, *e) },
		OnGoal:    func(e *domain.GoalEvent) { r.goals = append(r.goals, *e) },
	}
}
