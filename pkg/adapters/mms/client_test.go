package mms_test

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/aretw0/micromouse/internal/runtime"
	"github.com/aretw0/micromouse/pkg/adapters/mms"
	"github.com/aretw0/micromouse/pkg/adapters/sim"
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Queries(t *testing.T) {
	out := &bytes.Buffer{}
	c := mms.New(strings.NewReader("16\n8\ntrue\nfalse\nack\ncrash\nack\n"), out)

	assert.Equal(t, 16, c.MazeWidth())
	assert.Equal(t, 8, c.MazeHeight())
	assert.True(t, c.WallFront())
	assert.False(t, c.WallLeft())
	assert.True(t, c.MoveForward())
	assert.False(t, c.MoveForward(), "crash is a blocked move, not an error")
	c.TurnLeft()
	c.SetWall(3, 4, 'n')
	c.SetColor(3, 4, 'G')
	c.SetText(3, 4, "a b")

	require.NoError(t, c.Err())
	assert.Equal(t, strings.Join([]string{
		"mazeWidth", "mazeHeight", "wallFront", "wallLeft", "moveForward", "moveForward",
		"turnLeft", "setWall 3 4 n", "setColor 3 4 G", "setText 3 4 a_b",
	}, "\n")+"\n", out.String())
}

func TestClient_ClearCommands(t *testing.T) {
	out := &bytes.Buffer{}
	c := mms.New(strings.NewReader(""), out)

	c.ClearWall(1, 2, 'e')
	c.ClearColor(1, 2)
	c.ClearAllColor()
	c.ClearText(1, 2)
	c.ClearAllText()

	require.NoError(t, c.Err(), "clear commands expect no reply")
	assert.Equal(t, strings.Join([]string{
		"clearWall 1 2 e", "clearColor 1 2", "clearAllColor", "clearText 1 2", "clearAllText",
	}, "\n")+"\n", out.String())
}

func TestClient_WasReset(t *testing.T) {
	out := &bytes.Buffer{}
	c := mms.New(strings.NewReader("false\ntrue\nack\n"), out)

	assert.False(t, c.WasReset())
	assert.True(t, c.WasReset())
	c.AckReset()

	require.NoError(t, c.Err())
	assert.Equal(t, "wasReset\nwasReset\nackReset\n", out.String())
}

func TestClient_EOFIsSticky(t *testing.T) {
	out := &bytes.Buffer{}
	c := mms.New(strings.NewReader("16\n"), out)

	assert.Equal(t, 16, c.MazeWidth())
	assert.Equal(t, 0, c.MazeHeight())
	assert.ErrorIs(t, c.Err(), domain.ErrPlatformClosed)

	written := out.Len()
	assert.False(t, c.WallFront())
	c.SetWall(0, 0, 'n')
	assert.Equal(t, written, out.Len(), "a failed client stops writing")
}

func TestClient_UnexpectedReply(t *testing.T) {
	tests := map[string]func(c *mms.Client){
		"int":   func(c *mms.Client) { c.MazeWidth() },
		"bool":  func(c *mms.Client) { c.WallRight() },
		"move":  func(c *mms.Client) { c.MoveForward() },
		"ack":   func(c *mms.Client) { c.AckReset() },
		"reset": func(c *mms.Client) { c.WasReset() },
	}
	for name, call := range tests {
		t.Run(name, func(t *testing.T) {
			c := mms.New(strings.NewReader("maybe\n"), io.Discard)
			call(c)
			require.Error(t, c.Err())
			assert.Contains(t, c.Err().Error(), `"maybe"`)
		})
	}
}

// serveSim answers mms commands from a simulated maze, like the real simulator would.
func serveSim(p *sim.Platform, commands io.Reader, replies io.Writer) error {
	scanner := bufio.NewScanner(commands)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		var reply string
		switch fields[0] {
		case "mazeWidth":
			reply = strconv.Itoa(p.MazeWidth())
		case "mazeHeight":
			reply = strconv.Itoa(p.MazeHeight())
		case "wallFront":
			reply = strconv.FormatBool(p.WallFront())
		case "wallLeft":
			reply = strconv.FormatBool(p.WallLeft())
		case "wallRight":
			reply = strconv.FormatBool(p.WallRight())
		case "moveForward":
			reply = "crash"
			if p.MoveForward() {
				reply = "ack"
			}
		case "turnLeft":
			p.TurnLeft()
			reply = "ack"
		case "turnRight":
			p.TurnRight()
			reply = "ack"
		case "ackReset":
			p.AckReset()
			reply = "ack"
		case "setWall", "setColor", "setText":
			if len(fields) != 4 {
				return fmt.Errorf("bad command %q", scanner.Text())
			}
			x, _ := strconv.Atoi(fields[1])
			y, _ := strconv.Atoi(fields[2])
			switch fields[0] {
			case "setWall":
				p.SetWall(x, y, fields[3][0])
			case "setColor":
				p.SetColor(x, y, fields[3][0])
			default:
				p.SetText(x, y, fields[3])
			}
			continue
		default:
			return fmt.Errorf("unknown command %q", fields[0])
		}
		if _, err := fmt.Fprintln(replies, reply); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func TestClient_DrivesSimulatorToCenter(t *testing.T) {
	platform := sim.NewPlatform(sim.Generate(8, 8, 21))

	cmdR, cmdW := io.Pipe()
	repR, repW := io.Pipe()
	done := make(chan error, 1)
	go func() {
		err := serveSim(platform, cmdR, repW)
		repW.Close()
		done <- err
	}()

	client := mms.New(repR, cmdW)
	nav, err := runtime.NewNavigator(client)
	require.NoError(t, err)
	assert.Equal(t, domain.Bounds{Width: 8, Height: 8}, nav.Bounds())

	nav.Start()
	status := domain.StatusRunning
	for i := 0; i < 5_000 && status == domain.StatusRunning; i++ {
		status = nav.Tick()
		require.NoError(t, client.Err())
	}
	require.Equal(t, domain.StatusDone, status)

	cmdW.Close()
	require.NoError(t, <-done)

	truth, heading := platform.Pose()
	assert.Equal(t, truth, nav.Position())
	assert.Equal(t, heading, nav.Heading())
	assert.Equal(t, "C", platform.Text(truth))
	assert.Equal(t, 1, platform.Stats().Resets)
}
