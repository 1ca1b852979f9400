// Package mms implements ports.Platform over the line protocol spoken by the mms
// micromouse simulator: the simulator runs the agent as a subprocess, writes replies to
// its stdin and reads commands from its stdout. Stderr is shown in the simulator log.
package mms

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/micromouse/internal/logging"
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/aretw0/micromouse/pkg/ports"
)

// Client is a synchronous mms protocol client. Every command is flushed before the
// reply is read. After the first transport or protocol failure the client stops
// talking to the simulator and Err reports the failure.
type Client struct {
	reader *bufio.Reader
	writer *bufio.Writer
	logger *slog.Logger
	err    error
}

var (
	_ ports.Platform = (*Client)(nil)
	_ ports.Faulter  = (*Client)(nil)
)

// Option configures a Client.
type Option func(*Client)

// WithLogger logs every exchange at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client reading replies from r and writing commands to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Client {
	c := &Client{
		reader: bufio.NewReader(r),
		writer: bufio.NewWriter(w),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Err returns the first failure, or nil.
func (c *Client) Err() error {
	return c.err
}

func (c *Client) fail(err error) {
	if c.err == nil {
		c.err = err
		c.logger.Error("mms transport failed", "error", err)
	}
}

// send writes one command line. It returns false once the client has failed.
func (c *Client) send(command string) bool {
	if c.err != nil {
		return false
	}
	c.logger.Debug("mms send", "command", command)
	if _, err := c.writer.WriteString(command + "\n"); err != nil {
		c.fail(fmt.Errorf("failed to write %q: %w", command, err))
		return false
	}
	if err := c.writer.Flush(); err != nil {
		c.fail(fmt.Errorf("failed to flush %q: %w", command, err))
		return false
	}
	return true
}

// query sends a command and reads its one-line reply.
func (c *Client) query(command string) (string, bool) {
	if !c.send(command) {
		return "", false
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = domain.ErrPlatformClosed
		}
		c.fail(fmt.Errorf("no reply to %q: %w", command, err))
		return "", false
	}
	reply := strings.TrimSpace(line)
	c.logger.Debug("mms recv", "command", command, "reply", reply)
	return reply, true
}

func (c *Client) queryInt(command string) int {
	reply, ok := c.query(command)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(reply)
	if err != nil {
		c.fail(fmt.Errorf("unexpected reply %q to %q: %w", reply, command, err))
		return 0
	}
	return v
}

func (c *Client) queryBool(command string) bool {
	reply, ok := c.query(command)
	if !ok {
		return false
	}
	switch reply {
	case "true":
		return true
	case "false":
		return false
	}
	c.fail(fmt.Errorf("unexpected reply %q to %q", reply, command))
	return false
}

func (c *Client) queryAck(command string) {
	reply, ok := c.query(command)
	if ok && reply != "ack" {
		c.fail(fmt.Errorf("unexpected reply %q to %q", reply, command))
	}
}

// MazeWidth and MazeHeight return the maze size in cells.
func (c *Client) MazeWidth() int  { return c.queryInt("mazeWidth") }
func (c *Client) MazeHeight() int { return c.queryInt("mazeHeight") }

// WallFront, WallRight and WallLeft sense the walls around the mouse,
// relative to its heading.
func (c *Client) WallFront() bool { return c.queryBool("wallFront") }
func (c *Client) WallRight() bool { return c.queryBool("wallRight") }
func (c *Client) WallLeft() bool  { return c.queryBool("wallLeft") }

// MoveForward returns false when the simulator answers "crash".
func (c *Client) MoveForward() bool {
	reply, ok := c.query("moveForward")
	if !ok {
		return false
	}
	switch reply {
	case "ack":
		return true
	case "crash":
		return false
	}
	c.fail(fmt.Errorf("unexpected reply %q to %q", reply, "moveForward"))
	return false
}

// TurnRight and TurnLeft rotate the mouse in place by 90 degrees.
func (c *Client) TurnRight() { c.queryAck("turnRight") }
func (c *Client) TurnLeft()  { c.queryAck("turnLeft") }

// SetWall draws a wall on side ('n', 'e', 's' or 'w') of the cell.
func (c *Client) SetWall(x, y int, side byte) {
	c.send(fmt.Sprintf("setWall %d %d %c", x, y, side))
}

// ClearWall removes a drawn wall.
func (c *Client) ClearWall(x, y int, side byte) {
	c.send(fmt.Sprintf("clearWall %d %d %c", x, y, side))
}

// SetColor paints a cell with one of the simulator's color codes.
func (c *Client) SetColor(x, y int, color byte) {
	c.send(fmt.Sprintf("setColor %d %d %c", x, y, color))
}

// ClearColor resets the color of a single cell.
func (c *Client) ClearColor(x, y int) {
	c.send(fmt.Sprintf("clearColor %d %d", x, y))
}

// ClearAllColor resets the color of every cell.
func (c *Client) ClearAllColor() {
	c.send("clearAllColor")
}

// SetText labels a cell. The simulator splits on spaces, so they are replaced.
func (c *Client) SetText(x, y int, text string) {
	c.send(fmt.Sprintf("setText %d %d %s", x, y, strings.ReplaceAll(text, " ", "_")))
}

// ClearText removes the label of a single cell.
func (c *Client) ClearText(x, y int) {
	c.send(fmt.Sprintf("clearText %d %d", x, y))
}

// ClearAllText removes every label.
func (c *Client) ClearAllText() {
	c.send("clearAllText")
}

// WasReset reports whether the simulator's reset button was pressed.
func (c *Client) WasReset() bool { return c.queryBool("wasReset") }

// AckReset tells the simulator the mouse is back at the start cell.
func (c *Client) AckReset() { c.queryAck("ackReset") }
